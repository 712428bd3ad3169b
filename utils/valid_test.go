package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeEmail(t *testing.T) {
	email, err := SanitizeEmail("  Alice@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)

	for _, bad := range []string{"", "plainaddress", "missing@tld", "@no-local.com"} {
		_, err := SanitizeEmail(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "hello", SanitizeInput("  hello  "))
	assert.Equal(t, "&lt;b&gt;bold&lt;/b&gt;", SanitizeInput("<b>bold</b>"))
	assert.Equal(t, "ab", SanitizeInput("a\x00b"))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "al***@x.com", MaskEmail("alice@x.com"))
	assert.Equal(t, "a***@x.com", MaskEmail("ab@x.com"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, CheckPasswordHash("hunter22", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
