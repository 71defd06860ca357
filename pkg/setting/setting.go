package setting

import (
	"time"

	"github.com/go-ini/ini"
	"github.com/pkg/errors"

	"github.com/go-points/utils/header"
)

type App struct {
	Name                 string
	HeaderPrefix         string
	AlertPrefix          string
	LowercaseHeaderNames bool
	JwtSecret            string
	PageSize             uint32
	LogLevel             string
}

type Server struct {
	RunMode      string
	HttpPort     int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type Database struct {
	Type        string
	User        string
	Password    string
	Host        string
	Name        string
	TablePrefix string
}

var (
	AppSetting      = defaultApp()
	ServerSetting   = defaultServer()
	DatabaseSetting = defaultDatabase()
)

func defaultApp() *App {
	return &App{
		Name:         "points",
		HeaderPrefix: header.DefaultHeaderPrefix,
		AlertPrefix:  header.DefaultAlertPrefix,
		PageSize:     10,
		LogLevel:     "info",
	}
}

func defaultServer() *Server {
	return &Server{
		RunMode:      "release",
		HttpPort:     8080,
		ReadTimeout:  60,
		WriteTimeout: 60,
	}
}

func defaultDatabase() *Database {
	return &Database{Type: "memory"}
}

// Setup loads the ini file at path into the package settings.
func Setup(path string) error {
	cfg, err := ini.Load(path)
	if err != nil {
		return errors.Wrapf(err, "load config %s", path)
	}
	return load(cfg)
}

// SetupData is Setup for an in-memory ini document.
func SetupData(data []byte) error {
	cfg, err := ini.Load(data)
	if err != nil {
		return errors.Wrap(err, "parse config")
	}
	return load(cfg)
}

func load(cfg *ini.File) error {
	app, server, database := defaultApp(), defaultServer(), defaultDatabase()

	if err := mapTo(cfg, "app", app); err != nil {
		return err
	}
	if err := mapTo(cfg, "server", server); err != nil {
		return err
	}
	if err := mapTo(cfg, "database", database); err != nil {
		return err
	}

	server.ReadTimeout = server.ReadTimeout * time.Second
	server.WriteTimeout = server.WriteTimeout * time.Second

	AppSetting, ServerSetting, DatabaseSetting = app, server, database
	return nil
}

func mapTo(cfg *ini.File, section string, v interface{}) error {
	if err := cfg.Section(section).StrictMapTo(v); err != nil {
		return errors.Wrapf(err, "map section %s", section)
	}
	return nil
}

// Builder returns the notification header builder for the configured prefixes.
func Builder() header.Builder {
	b := header.NewBuilder(AppSetting.HeaderPrefix, AppSetting.AlertPrefix)
	b.LowercaseNames = AppSetting.LowercaseHeaderNames
	return b
}
