package policy_test

import (
	"strings"
	"testing"

	"github.com/rcatalasan0/491-Project/internal/auth/policy"
	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	testCases := []struct {
		name  string
		email string
		valid bool
	}{
		{"simple address", "a@b.co", true},
		{"longer address", "first.last@example.com", true},
		{"subdomain", "user@mail.example.org", true},
		{"empty", "", false},
		{"missing at", "userexample.com", false},
		{"missing dot after at", "user@example", false},
		{"dot only before at", "user.name@example", false},
		{"single letter tld", "user@example.c", false},
		{"numeric tld", "user@example.12", false},
		{"whitespace in local part", "us er@example.com", false},
		{"double at", "user@@example.com", false},
		{"empty local part", "@example.com", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, policy.ValidateEmail(tc.email))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	t.Run("valid password", func(t *testing.T) {
		ok, reason := policy.ValidatePassword("Abcdef12")
		assert.True(t, ok)
		assert.Equal(t, "", reason)
	})

	t.Run("empty password", func(t *testing.T) {
		ok, reason := policy.ValidatePassword("")
		assert.False(t, ok)
		assert.Equal(t, "Password is required", reason)
	})

	t.Run("all short passwords rejected", func(t *testing.T) {
		for _, p := range []string{"A", "Ab1", "Abcde12", "aaaaaaa"} {
			ok, reason := policy.ValidatePassword(p)
			assert.False(t, ok, "password %q should be rejected", p)
			assert.Contains(t, reason, "8 characters")
		}
	})

	t.Run("72 bytes is the maximum accepted length", func(t *testing.T) {
		ok, reason := policy.ValidatePassword("Aa1" + strings.Repeat("x", 69))
		assert.True(t, ok)
		assert.Equal(t, "", reason)
	})

	t.Run("over 72 bytes rejected before hashing", func(t *testing.T) {
		for _, p := range []string{
			"Aa1" + strings.Repeat("x", 70),
			"Aa1" + strings.Repeat("x", 80),
		} {
			ok, reason := policy.ValidatePassword(p)
			assert.False(t, ok, "password %q should be rejected", p)
			assert.Contains(t, reason, "at most 72 characters")
		}
	})

	t.Run("lowercase and digits only mentions uppercase", func(t *testing.T) {
		for _, p := range []string{"abcdefg1", "password123", "1234abcd"} {
			ok, reason := policy.ValidatePassword(p)
			assert.False(t, ok, "password %q should be rejected", p)
			assert.Contains(t, strings.ToLower(reason), "uppercase")
		}
	})

	t.Run("missing lowercase", func(t *testing.T) {
		ok, reason := policy.ValidatePassword("ABCDEFG1")
		assert.False(t, ok)
		assert.Contains(t, strings.ToLower(reason), "lowercase")
	})

	t.Run("missing digit", func(t *testing.T) {
		ok, reason := policy.ValidatePassword("Abcdefgh")
		assert.False(t, ok)
		assert.Contains(t, strings.ToLower(reason), "number")
	})

	t.Run("length checked before composition", func(t *testing.T) {
		ok, reason := policy.ValidatePassword("abc")
		assert.False(t, ok)
		assert.Contains(t, reason, "8 characters")
	})
}
