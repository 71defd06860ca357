package models

import "time"

// Entity is a persisted domain object. EntityName is the key used in
// notification alerts, TableName the storage table.
type Entity interface {
	EntityName() string
	TableName() string
	GetID() uint64
	SetID(id uint64)
}

var tablePrefix string

// SetTablePrefix prefixes every table name. gorm caches table names per
// type, so it must run before the first query.
func SetTablePrefix(prefix string) {
	tablePrefix = prefix
}

type Model struct {
	ID uint64 `gorm:"primary_key" json:"id"`
}

func (m *Model) GetID() uint64 {
	return m.ID
}

func (m *Model) SetID(id uint64) {
	m.ID = id
}

// Points is one day of healthy habits: each flag scores one point.
type Points struct {
	Model
	Date     time.Time `gorm:"type:date;not null" json:"date" validate:"required"`
	Exercise int       `json:"exercise" validate:"min=0,max=1"`
	Meals    int       `json:"meals" validate:"min=0,max=1"`
	Alcohol  int       `json:"alcohol" validate:"min=0,max=1"`
	Notes    string    `gorm:"size:140" json:"notes" validate:"max=140"`
}

func (*Points) EntityName() string {
	return "points"
}

func (*Points) TableName() string {
	return tablePrefix + "points"
}

type Weight struct {
	Model
	Timestamp time.Time `gorm:"not null" json:"timestamp" validate:"required"`
	Weight    float64   `gorm:"not null" json:"weight" validate:"required,gt=0"`
}

func (*Weight) EntityName() string {
	return "weight"
}

func (*Weight) TableName() string {
	return tablePrefix + "weight"
}

type BloodPressure struct {
	Model
	Timestamp time.Time `gorm:"not null" json:"timestamp" validate:"required"`
	Systolic  int       `gorm:"not null" json:"systolic" validate:"required,min=1,max=300"`
	Diastolic int       `gorm:"not null" json:"diastolic" validate:"required,min=1,max=300"`
}

func (*BloodPressure) EntityName() string {
	return "bloodPressure"
}

func (*BloodPressure) TableName() string {
	return tablePrefix + "blood_pressure"
}
