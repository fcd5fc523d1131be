package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jobdock-dev/jobdock/internal/auth"
	"github.com/jobdock-dev/jobdock/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSignup(t *testing.T) {
	r, database := newTestServer(t)

	t.Run("creates a user with a hashed password", func(t *testing.T) {
		signupUser(t, r, "Ravi Kumar", "ravi@example.com")

		var user models.User
		require.NoError(t, database.Where("email = ?", "ravi@example.com").First(&user).Error)

		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "Ravi Kumar", user.Name)
		assert.NotEqual(t, "supersecret", user.Password)
		assert.True(t, strings.HasPrefix(user.Password, "$2"))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("supersecret")))
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/signup", "", gin.H{
			"userName":        "Another Ravi",
			"userEmail":       "ravi@example.com",
			"userPassword":    "differentpassword",
			"userPhoneNumber": "9123456780",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "User ravi@example.com already exists..!", decodeBody(t, w)["error"])
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/signup", "", gin.H{
			"userName":  "No Password",
			"userEmail": "nopassword@example.com",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "All user details are mandatory..!", decodeBody(t, w)["error"])
	})

	t.Run("reports the validator message for a weak password", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/signup", "", gin.H{
			"userName":        "Weak",
			"userEmail":       "weak@example.com",
			"userPassword":    "short",
			"userPhoneNumber": "9876543210",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, `"user_password" length must be at least 8 characters long`, decodeBody(t, w)["error"])
	})
}

func TestLogin(t *testing.T) {
	r, _ := newTestServer(t)
	signupUser(t, r, "Ravi Kumar", "ravi@example.com")

	t.Run("issues a token whose payload carries the email", func(t *testing.T) {
		token := loginUser(t, r, "ravi@example.com")

		email, err := auth.VerifyJWT(token)
		require.NoError(t, err)
		assert.Equal(t, "ravi@example.com", email)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/login", "", gin.H{
			"userEmail":    "ravi@example.com",
			"userPassword": "wrongpassword",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid user login password..!", decodeBody(t, w)["error"])
	})

	t.Run("rejects an unknown email", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/login", "", gin.H{
			"userEmail":    "ghost@example.com",
			"userPassword": "supersecret",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid user login email..!", decodeBody(t, w)["error"])
	})

	t.Run("rejects missing credentials", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/login", "", gin.H{"userEmail": "ravi@example.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Valid user email and password both are mandatory..!", decodeBody(t, w)["error"])
	})
}

func TestProfile(t *testing.T) {
	r, _ := newTestServer(t)
	signupUser(t, r, "Ravi Kumar", "ravi@example.com")
	token := loginUser(t, r, "ravi@example.com")

	t.Run("returns the user row", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/profile", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		profile, ok := decodeBody(t, w)["user_profile"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "ravi@example.com", profile["email"])
		assert.Equal(t, "Ravi Kumar", profile["name"])
		assert.NotEqual(t, "supersecret", profile["password"])
	})

	t.Run("401 when the token's user does not exist", func(t *testing.T) {
		ghostToken, err := auth.GenerateJWT("ghost@example.com")
		require.NoError(t, err)

		w := doRequest(t, r, http.MethodGet, "/profile", ghostToken, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "User not found. Kindly register or login first..!", decodeBody(t, w)["error_message"])
	})

	t.Run("401 without a header", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/profile", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
