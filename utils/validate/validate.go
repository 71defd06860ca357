package validate

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	enTranslations "gopkg.in/go-playground/validator.v9/translations/en"
)

var (
	uni      *ut.UniversalTranslator
	trans    ut.Translator
	validate = validator.New()
)

func init() {
	ent := en.New()
	uni = ut.New(ent, ent)
	trans, _ = uni.GetTranslator("en")
	err := enTranslations.RegisterDefaultTranslations(validate, trans)
	if err != nil {
		panic(err)
	}
	// report json field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Error is the first failed constraint of a struct. Key is "<field>.<tag>",
// e.g. "weight.required", and Message the translated description.
type Error struct {
	Key     string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func StructParam(val interface{}) error {
	err := validate.Struct(val)
	if err == nil {
		return nil
	}
	if errNew, ok := err.(*validator.InvalidValidationError); ok {
		panic(errNew)
	}
	for _, e := range err.(validator.ValidationErrors) {
		return &Error{
			Key:     e.Field() + "." + e.Tag(),
			Message: e.Translate(trans),
		}
	}
	return err
}
