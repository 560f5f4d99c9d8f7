package validators

import (
	"context"
	"errors"
	"net/mail"
	"unicode/utf8"

	"github.com/ledgerly/go-expense-tracker/models"
)

// Field names accepted by InputValidator when scoping validation.
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldDescription = "description"
	FieldCategory    = "category"
)

const (
	minPasswordLength    = 8
	maxDescriptionLength = 200
	maxCategoryLength    = 50
)

// InputValidator validates registration credentials and expense input.
// The zero value is ready to use.
type InputValidator struct{}

// NewInputValidator returns an InputValidator.
func NewInputValidator() *InputValidator {
	return &InputValidator{}
}

// Validate dispatches on the dynamic type of data. Supported types are
// models.Credentials and models.ExpenseInput (values or pointers).
// When fields are given, only the named fields are checked.
func (v *InputValidator) Validate(_ context.Context, data any, fields ...string) error {
	switch d := data.(type) {
	case models.Credentials:
		return v.validateCredentials(d, fields...)
	case *models.Credentials:
		return v.validateCredentials(*d, fields...)
	case models.ExpenseInput:
		return v.validateExpenseInput(d, fields...)
	case *models.ExpenseInput:
		return v.validateExpenseInput(*d, fields...)
	default:
		return ErrUnsupportedInputType
	}
}

func (v *InputValidator) validateCredentials(c models.Credentials, fields ...string) error {
	var errs []error

	if fieldRequested(FieldEmail, fields) {
		errs = append(errs, validateEmail(c.Email))
	}
	if fieldRequested(FieldPassword, fields) {
		errs = append(errs, validatePassword(c.Password))
	}

	return errors.Join(errs...)
}

func (v *InputValidator) validateExpenseInput(e models.ExpenseInput, fields ...string) error {
	var errs []error

	// The amount is stored as-is, sign included: negative entries stand
	// for refunds and corrections.
	if fieldRequested(FieldDescription, fields) {
		switch {
		case e.Description == "":
			errs = append(errs, ErrDescriptionIsRequired)
		case utf8.RuneCountInString(e.Description) > maxDescriptionLength:
			errs = append(errs, ErrDescriptionIsTooLong)
		}
	}
	if fieldRequested(FieldCategory, fields) {
		switch {
		case e.Category == "":
			errs = append(errs, ErrCategoryIsRequired)
		case utf8.RuneCountInString(e.Category) > maxCategoryLength:
			errs = append(errs, ErrCategoryIsTooLong)
		}
	}

	return errors.Join(errs...)
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrEmailFormatIsInvalid
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return ErrPasswordIsTooShort
	}

	return nil
}

// fieldRequested reports whether the named field should be validated.
// An empty fields list means every field is validated.
func fieldRequested(name string, fields []string) bool {
	if len(fields) == 0 {
		return true
	}
	for _, f := range fields {
		if f == name {
			return true
		}
	}

	return false
}
