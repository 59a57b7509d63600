package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// University ID pattern, e.g. 201-15-3210 or a plain digit run
	UniversityIDPattern = `^\d{2,3}(-\d{2}-\d{3,5}|\d{4,8})$`

	// Mobile number pattern, Bangladeshi format with optional country code
	MobilePattern = `^(\+?88)?01[3-9]\d{8}$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email        *regexp.Regexp
	UniversityID *regexp.Regexp
	Mobile       *regexp.Regexp
}{
	Email:        regexp.MustCompile(EmailPattern),
	UniversityID: regexp.MustCompile(UniversityIDPattern),
	Mobile:       regexp.MustCompile(MobilePattern),
}

// IsValidEmail reports whether the email matches the expected format.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidUniversityID reports whether the university ID matches the expected format.
func IsValidUniversityID(id string) bool {
	return CompiledPatterns.UniversityID.MatchString(id)
}

// IsValidMobile reports whether the mobile number matches the expected format.
func IsValidMobile(mobile string) bool {
	return CompiledPatterns.Mobile.MatchString(mobile)
}
