package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"pathfinder-backend/internal/domain"
)

// Regex patterns
var (
	// Allow letters, numbers, spaces, and common name punctuation: . ' -
	nameRegex = regexp.MustCompile(`^[\p{L} .'-]+$`)

	// Usernames: letters, digits, underscore, dash
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("valid_username", ValidUsername)
	_ = v.RegisterValidation("education_level", ValidEducationLevel)
	_ = v.RegisterValidation("gpa_band", ValidGPABand)
}

// ValidName validates that a string contains only valid name characters
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// ValidUsername validates the username character set
func ValidUsername(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return usernameRegex.MatchString(val)
}

// ValidEducationLevel accepts the closed education enum (empty = unset)
func ValidEducationLevel(fl validator.FieldLevel) bool {
	return domain.EducationLevel(fl.Field().String()).IsValid()
}

// ValidGPABand accepts the closed GPA band enum (empty = unset)
func ValidGPABand(fl validator.FieldLevel) bool {
	return domain.GPABand(fl.Field().String()).IsValid()
}
