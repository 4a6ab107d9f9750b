package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("rick"))
	assert.NoError(t, ValidateUsername("rick.sanchez-137"))
	assert.NoError(t, ValidateUsername("C_137"))

	assert.Error(t, ValidateUsername(""))
	assert.Error(t, ValidateUsername("ab"))
	assert.Error(t, ValidateUsername(strings.Repeat("x", 31)))
	assert.Error(t, ValidateUsername("rick sanchez"))
	assert.Error(t, ValidateUsername("rick!"))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("rick@example.com"))

	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail(strings.Repeat("x", 250)+"@e.co"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("wubbalubba"))

	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword(strings.Repeat("x", 73)))
	assert.Error(t, ValidatePassword("my-password-1"))
	assert.Error(t, ValidatePassword("qwerty12345"))
}
