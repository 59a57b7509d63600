package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("student@diu.edu.bd"))
	assert.True(t, IsValidEmail("first.last+tag@example.com"))

	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidUniversityID(t *testing.T) {
	// Hyphenated form
	assert.True(t, IsValidUniversityID("201-15-3210"))
	assert.True(t, IsValidUniversityID("22-12-345"))

	// Plain digit run
	assert.True(t, IsValidUniversityID("20115321"))

	assert.False(t, IsValidUniversityID(""))
	assert.False(t, IsValidUniversityID("abc-15-3210"))
	assert.False(t, IsValidUniversityID("201-15"))
}

func TestIsValidMobile(t *testing.T) {
	assert.True(t, IsValidMobile("01712345678"))
	assert.True(t, IsValidMobile("+8801712345678"))
	assert.True(t, IsValidMobile("8801912345678"))

	assert.False(t, IsValidMobile("12345"))
	assert.False(t, IsValidMobile("01112345678")) // 011 prefix is not assigned
	assert.False(t, IsValidMobile("not a number"))
}
