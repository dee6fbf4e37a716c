package helper

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
	translator   ut.Translator
)

// Validator returns the shared validator with english messages and json field names.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		enLocale := en.New()
		translator, _ = ut.New(enLocale, enLocale).GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, translator)

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// ValidateStruct runs struct validation and converts failures into a
// ValidationError carrying per-field messages.
func ValidateStruct(subject string, s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationError(CodeInvalidPayload, subject, err.Error())
	}
	fields := make(map[string][]string, len(ve))
	names := make([]string, 0, len(ve))
	for _, fe := range ve {
		key := fieldPath(fe)
		if _, seen := fields[key]; !seen {
			names = append(names, key)
		}
		fields[key] = append(fields[key], fe.Translate(translator))
	}
	ae := ValidationError(CodeFieldValidation, subject, "invalid fields: "+strings.Join(names, ", "))
	ae.Fields = fields
	return ae
}

// fieldPath drops the root struct name: "CreateRoomRequest.capacity" -> "capacity".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
