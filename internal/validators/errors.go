package validators

import "errors"

var (
	// ErrEmailIsRequired is returned when the email field is empty.
	ErrEmailIsRequired = errors.New("email is required")

	// ErrEmailFormatIsInvalid is returned when the email is not a valid address.
	ErrEmailFormatIsInvalid = errors.New("email format is invalid")

	// ErrPasswordIsRequired is returned when the password field is empty.
	ErrPasswordIsRequired = errors.New("password is required")

	// ErrPasswordIsTooShort is returned when the password is shorter than 8 characters.
	ErrPasswordIsTooShort = errors.New("password must be at least 8 characters long")

	// ErrDescriptionIsRequired is returned when the expense description is empty.
	ErrDescriptionIsRequired = errors.New("description is required")

	// ErrDescriptionIsTooLong is returned when the description exceeds 200 characters.
	ErrDescriptionIsTooLong = errors.New("description must be at most 200 characters long")

	// ErrCategoryIsRequired is returned when the expense category is empty.
	ErrCategoryIsRequired = errors.New("category is required")

	// ErrCategoryIsTooLong is returned when the category exceeds 50 characters.
	ErrCategoryIsTooLong = errors.New("category must be at most 50 characters long")

	// ErrUnsupportedInputType is returned when a validator receives a value
	// of a type it does not know how to validate.
	ErrUnsupportedInputType = errors.New("unsupported input type for validation")
)
