package validator

import (
	"fmt"
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/domain"
)

var (
	hasSpecialRgx = regexp.MustCompile(`[!@#$%^&*]`)
	phoneRgx      = regexp.MustCompile(`^\+?[0-9]{8,15}$`)
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("password", validatePassword)
	validator.RegisterValidation("phone", validatePhone)
	validator.RegisterValidation("payment_method", validatePaymentMethod)
	validator.RegisterValidation("cinema_type", validateCinemaType)

	return validator
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

func validatePhone(fl validator.FieldLevel) bool {
	return phoneRgx.MatchString(fl.Field().String())
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	_, err := domain.ParsePaymentMethod(fl.Field().String())
	return err == nil
}

func validateCinemaType(fl validator.FieldLevel) bool {
	switch domain.CinemaType(fl.Field().String()) {
	case domain.CinemaReguler, domain.CinemaIMAX, domain.CinemaPremier:
		return true
	}

	return false
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", err.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "phone":
		return "must be a valid phone number"
	case "payment_method":
		return "must be one of: qris, e_wallet, bank_transfer"
	case "cinema_type":
		return "must be one of: Reguler, IMAX, Premier"
	case "password":
		return "must be at least 8 characters long and include at least one uppercase letter, one lowercase letter, " +
			"one number, and one special character (!@#$%^&*)."
	default:
		return "is invalid"
	}
}
