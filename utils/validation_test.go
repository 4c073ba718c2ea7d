package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("ana@example.com"))
	assert.True(t, ValidateEmail("  first.last+tag@sub.example.co  "))

	assert.False(t, ValidateEmail(""))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@tld"))
}

func TestValidateTone(t *testing.T) {
	assert.True(t, ValidateTone(""))
	assert.True(t, ValidateTone("friendly"))
	assert.True(t, ValidateTone("professional"))
	assert.True(t, ValidateTone("formal"))

	assert.False(t, ValidateTone("sarcastic"))
}
