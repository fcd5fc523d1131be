package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jobdock-dev/jobdock/db"
	"github.com/jobdock-dev/jobdock/internal/router"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer builds the full router over a fresh in-memory SQLite store.
// A single connection keeps every statement on the same in-memory database.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(database))

	return router.NewRouter(database), database
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func signupUser(t *testing.T, r *gin.Engine, name, email string) {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/signup", "", gin.H{
		"userName":        name,
		"userEmail":       email,
		"userPassword":    "supersecret",
		"userPhoneNumber": "9876543210",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func loginUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/login", "", gin.H{
		"userEmail":    email,
		"userPassword": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token, ok := decodeBody(t, w)["jwt_token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func jobPayload(position string) gin.H {
	return gin.H{
		"numberOfPosition":      3,
		"companyName":           "Initech",
		"companyLogo":           "https://cdn.example.com/initech.png",
		"jobPosition":           position,
		"monthlySalary":         "60000",
		"jobType":               "Full-Time",
		"remoteOrOffline":       "Remote",
		"location":              "Bangalore",
		"jobDescription":        "Build and maintain backend services.",
		"aboutCompany":          "Initech ships enterprise software.",
		"skills":                "Go, SQL",
		"additionalInformation": "Immediate joiners preferred.",
	}
}

func createJob(t *testing.T, r *gin.Engine, token, position string) {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/job", token, jobPayload(position))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}
