package Validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"TaskBoard/Tasks"
)

// ErrInvalid wraps every failed struct validation.
var ErrInvalid = errors.New("validation failed")

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	validate = validator.New()

	english := en.New()
	translator, _ = ut.New(english, english).GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(err)
	}

	// Report fields by the name the caller used for them.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"query", "env", "json"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return field.Name
	})

	if err := validate.RegisterValidation("page_size", isPageSize); err != nil {
		panic(err)
	}
	if err := validate.RegisterTranslation("page_size", translator, func(t ut.Translator) error {
		return t.Add("page_size", "{0} must be a positive number or 'all'", true)
	}, func(t ut.Translator, fe validator.FieldError) string {
		message, _ := t.T("page_size", fe.Field())
		return message
	}); err != nil {
		panic(err)
	}
}

// isPageSize accepts an empty value (the default size applies), "all" or a
// positive integer.
func isPageSize(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, ok := Tasks.ParsePageSize(value)
	return ok
}

// Struct validates s and returns an ErrInvalid error listing every failed
// field in plain English.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		messages = append(messages, fieldError.Translate(translator))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(messages, "; "))
}
