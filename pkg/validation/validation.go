package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslation "github.com/go-playground/validator/v10/translations/en"
)

const (
	englishTranslatorCode = "en"
)

type IValidator interface {
	Validate(i interface{}) map[string]string
}

type validation struct {
	validator  *validator.Validate
	translator ut.Translator
}

func InitValidator() IValidator {
	v := validator.New()
	enLocale := en.New()
	universal := ut.New(enLocale, enLocale)
	translator, _ := universal.GetTranslator(englishTranslatorCode)

	_ = enTranslation.RegisterDefaultTranslations(v, translator)

	v.RegisterTagNameFunc(tagName)

	return &validation{
		validator:  v,
		translator: translator,
	}
}

// tagName reports fields by their json name, so messages match the request
// body keys.
func tagName(field reflect.StructField) string {
	for _, tag := range []string{"json", "query"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return field.Name
}

func (v *validation) Validate(i interface{}) map[string]string {
	messages := make(map[string]string)
	err := v.validator.Struct(i)
	if err == nil {
		return messages
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		messages[""] = err.Error()
		return messages
	}

	for _, fieldErr := range errs {
		messages[fieldErr.Field()] = fieldErr.Translate(v.translator)
	}

	return messages
}
