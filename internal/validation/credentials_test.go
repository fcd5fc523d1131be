package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSignup(t *testing.T) {
	t.Run("accepts a well-formed payload", func(t *testing.T) {
		err := ValidateSignup("Ravi Kumar", "ravi@example.com", "supersecret", "+919876543210")
		assert.NoError(t, err)
	})

	t.Run("reports the first violated rule", func(t *testing.T) {
		cases := []struct {
			name     string
			userName string
			email    string
			password string
			phone    string
			message  string
		}{
			{"missing name", "", "ravi@example.com", "supersecret", "9876543210", `"user_name" is required`},
			{"bad email", "Ravi", "not-an-email", "supersecret", "9876543210", `"user_email" must be a valid email`},
			{"short password", "Ravi", "ravi@example.com", "short", "9876543210", `"user_password" length must be at least 8 characters long`},
			{"missing phone", "Ravi", "ravi@example.com", "supersecret", "", `"contact_phonenumber" is required`},
			{"alphabetic phone", "Ravi", "ravi@example.com", "supersecret", "call-me-maybe", `"contact_phonenumber" must be a valid phone number`},
			{"phone too short", "Ravi", "ravi@example.com", "supersecret", "12345", `"contact_phonenumber" must be a valid phone number`},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				err := ValidateSignup(tc.userName, tc.email, tc.password, tc.phone)
				require.Error(t, err)
				assert.Equal(t, tc.message, err.Error())
			})
		}
	})
}

func TestValidateLogin(t *testing.T) {
	assert.NoError(t, ValidateLogin("ravi@example.com", "supersecret"))

	err := ValidateLogin("not-an-email", "supersecret")
	require.Error(t, err)
	assert.Equal(t, `"user_email" must be a valid email`, err.Error())

	err = ValidateLogin("", "supersecret")
	require.Error(t, err)
	assert.Equal(t, `"user_email" is required`, err.Error())

	err = ValidateLogin("ravi@example.com", "")
	require.Error(t, err)
	assert.Equal(t, `"user_password" is required`, err.Error())
}
