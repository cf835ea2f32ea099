package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Mainland mobile number: 1[3-9] followed by nine digits
	mobileRegex = regexp.MustCompile(`^1[3-9]\d{9}$`)

	// Resident id card: legacy 15-digit, or 17 digits plus a digit/X check char
	idCard18Regex = regexp.MustCompile(`^\d{17}[\dXx]$`)
	idCard15Regex = regexp.MustCompile(`^\d{15}$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("cn_mobile", CNMobile)
	_ = v.RegisterValidation("id_card", IDCard)
}

// CNMobile validates a mainland China mobile number.
// Empty values pass; combine with required where the field is mandatory.
func CNMobile(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return mobileRegex.MatchString(val)
}

// IDCard validates a resident id card number (15 or 18 characters).
func IDCard(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return idCard18Regex.MatchString(val) || idCard15Regex.MatchString(val)
}

// ValidMobile reports whether s is a well-formed mobile number.
// Exposed for row-level checks outside struct validation (Excel import).
func ValidMobile(s string) bool {
	return mobileRegex.MatchString(s)
}

// ValidIDCard reports whether s is a well-formed id card number.
func ValidIDCard(s string) bool {
	return idCard18Regex.MatchString(s) || idCard15Regex.MatchString(s)
}
