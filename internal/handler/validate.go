package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/workshop-registry/internal/crud"
)

// Сообщения, заменяющие стандартные переводы validator
var messages = map[string]string{
	"required": "Field can't be empty",
	"email":    "Invalid email",
	"numeric":  "Invalid number",
	"datetime": "Invalid date, use dd/mm/yyyy",
}

// FormValidator проверяет dto форм и переводит ошибки в crud.ValidationError,
// используя значение тега form как ключ поля
type FormValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// NewFormValidator создаёт валидатор с английскими сообщениями
func NewFormValidator() (*FormValidator, error) {
	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("register translations: %w", err)
	}
	for tag, msg := range messages {
		err := v.RegisterTranslation(tag, trans,
			func(t ut.Translator) error {
				return t.Add(tag, msg, true)
			},
			func(t ut.Translator, fe validator.FieldError) string {
				s, _ := t.T(fe.Tag())
				return s
			},
		)
		if err != nil {
			return nil, fmt.Errorf("register %q translation: %w", tag, err)
		}
	}

	return &FormValidator{validate: v, trans: trans}, nil
}

// Validate возвращает *crud.ValidationError с первой ошибкой каждого поля
func (fv *FormValidator) Validate(form any) error {
	err := fv.validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	result := crud.NewValidationError("validation error")
	for _, fe := range fieldErrs {
		result.Add(fe.Field(), fe.Translate(fv.trans))
	}
	return result.Err()
}
