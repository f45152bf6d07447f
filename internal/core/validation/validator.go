package validation

import (
	"errors"
	"reflect"
	"strings"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/response"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/google/uuid"
)

var (
	Validator  *validator.Validate
	Translator ut.Translator
)

// fieldRules maps a failing field to the error reported for it.
var fieldRules = map[string]*domain.ValidationError{
	"CreateTodoRequest.Task":   domain.ErrTaskRequired,
	"CreateTodoRequest.UserID": domain.ErrInvalidUserID,
	"UpdateTodoRequest.ID":     domain.ErrInvalidTodoID,
	"LoginRequest.Email":       domain.ErrCredentialsRequired,
	"LoginRequest.Password":    domain.ErrCredentialsRequired,
}

func init() {
	Validator = validator.New(validator.WithRequiredStructEnabled())

	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		if name == "-" {
			return ""
		}

		return name
	})

	mustRegister("notblank", validators.NotBlank)
	mustRegister("identifier", isIdentifier)
	mustRegister("identifier_set", isSetIdentifier)

	english := en.New()
	uni := ut.New(english, english)

	var found bool
	Translator, found = uni.GetTranslator("en")

	if !found {
		panic("translator en not found")
	}

	if err := en_translations.RegisterDefaultTranslations(Validator, Translator); err != nil {
		panic(err)
	}

	addCustomTranslations()
}

func mustRegister(tag string, fn validator.Func) {
	if err := Validator.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func isIdentifier(fl validator.FieldLevel) bool {
	_, err := uuid.Parse(fl.Field().String())
	return err == nil
}

func isSetIdentifier(fl validator.FieldLevel) bool {
	id, err := uuid.Parse(fl.Field().String())
	return err == nil && id != uuid.Nil
}

func addCustomTranslations() {
	translations := map[string]string{
		"notblank":       "{0} must not be blank",
		"identifier":     "{0} must be a valid identifier",
		"identifier_set": "{0} must be a valid, non-empty identifier",
	}

	for tag, text := range translations {
		Validator.RegisterTranslation(tag, Translator, func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(fe.Tag(), fe.Field())
			return t
		})
	}
}

// Struct validates a request. The first failing field wins and is reported
// as a *domain.ValidationError.
func Struct(s any) error {
	err := Validator.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors

	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err
	}

	fe := fieldErrors[0]

	if mapped, ok := fieldRules[fe.StructNamespace()]; ok {
		return mapped
	}

	return domain.NewValidationError(fe.Field(), fe.Translate(Translator))
}

// ParseID parses a path identifier, reporting onInvalid when it is malformed.
func ParseID(raw string, onInvalid *domain.ValidationError) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, onInvalid
	}

	return id, nil
}

func FormatValidationErrors(err error) []response.ValidationError {
	var errs []response.ValidationError

	if validationErr, ok := domain.AsValidationError(err); ok {
		return append(errs, response.ValidationError{
			Field:   validationErr.Field,
			Message: validationErr.Message,
		})
	}

	var fieldErrors validator.ValidationErrors

	if errors.As(err, &fieldErrors) {
		for _, fieldError := range fieldErrors {
			errs = append(errs, response.ValidationError{
				Field:   fieldError.Field(),
				Message: fieldError.Translate(Translator),
			})
		}
	}

	return errs
}
