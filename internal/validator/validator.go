package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	ErrRequired       = "is required"
	ErrInvalidEmail   = "must be a valid email address"
	ErrMinLength      = "must be at least %s characters long"
	ErrMaxLength      = "must be at most %s characters long"
	ErrMinItems       = "must contain at least %s items"
	ErrMaxItems       = "must contain at most %s items"
	ErrGreaterThan    = "must be greater than %s"
	ErrUnique         = "must not contain duplicates"
	ErrInvalidURL     = "must be a valid URL"
	ErrSeatName       = "must be a seat name such as A1"
	ErrCollection     = "must be one of items, banners, upcoming"
	ErrDefaultInvalid = "is invalid"
	ErrPassword       = "must be at least 8 characters long and include at least one uppercase letter, one lowercase letter, " +
		"one number, and one special character (!@#$%^&*)."
)

var (
	hasSpecialRgx = regexp.MustCompile(`[!@#$%^&*]`)
	seatNameRgx   = regexp.MustCompile(`^[A-Z][1-9][0-9]?$`)
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	validator.RegisterValidation("password", validatePassword)
	validator.RegisterValidation("seatname", validateSeatName)
	validator.RegisterValidation("filmcollection", validateFilmCollection)

	return validator
}

// decimalValue lets numeric tags such as gt=0 operate on decimal amounts.
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}

	return nil
}

func validateSeatName(fl validator.FieldLevel) bool {
	return seatNameRgx.MatchString(fl.Field().String())
}

func validateFilmCollection(fl validator.FieldLevel) bool {
	return domain.FilmCollection(fl.Field().String()).Valid()
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 || len(password) > 25 {
		return false
	}

	containsUpper, containsLower, containsDigit, containsSpecial := false, false, false, false

	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			containsUpper = true
		case unicode.IsLower(ch):
			containsLower = true
		case unicode.IsDigit(ch):
			containsDigit = true
		case hasSpecialRgx.MatchString(string(ch)):
			containsSpecial = true
		}
	}

	return containsUpper && containsLower && containsDigit && containsSpecial
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	isCollection := err.Kind() == reflect.Slice || err.Kind() == reflect.Array || err.Kind() == reflect.Map

	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrInvalidEmail
	case "min":
		if isCollection {
			return fmt.Sprintf(ErrMinItems, err.Param())
		}
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "max":
		if isCollection {
			return fmt.Sprintf(ErrMaxItems, err.Param())
		}
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "gt":
		return fmt.Sprintf(ErrGreaterThan, err.Param())
	case "unique":
		return ErrUnique
	case "url":
		return ErrInvalidURL
	case "seatname":
		return ErrSeatName
	case "filmcollection":
		return ErrCollection
	case "password":
		return ErrPassword
	default:
		return ErrDefaultInvalid
	}
}
