package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestIsEmailValid(t *testing.T) {
	require.True(t, isEmailValid("user@example.com"))
	require.True(t, isEmailValid("first.last+tag@sub.example.co"))

	require.False(t, isEmailValid("no-at-sign"))
	require.False(t, isEmailValid("user@"))
	require.False(t, isEmailValid("@example.com"))
	require.False(t, isEmailValid("user@example"))
}

func registerRequest(t *testing.T, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/register", Register)

	buf, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Validation failures answer before any store access, so these run
// without a database.

func TestRegister_MissingFields(t *testing.T) {
	w := registerRequest(t, map[string]string{"username": "sam"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "All fields are required")
}

func TestRegister_PasswordMismatch(t *testing.T) {
	w := registerRequest(t, map[string]string{
		"username":        "sam",
		"email":           "sam@example.com",
		"password":        "secret1",
		"confirmPassword": "secret2",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Passwords do not match")
}

func TestRegister_ShortPassword(t *testing.T) {
	w := registerRequest(t, map[string]string{
		"username":        "sam",
		"email":           "sam@example.com",
		"password":        "abc",
		"confirmPassword": "abc",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "at least 6 characters")
}

func TestRegister_InvalidEmail(t *testing.T) {
	w := registerRequest(t, map[string]string{
		"username":        "sam",
		"email":           "not-an-email",
		"password":        "secret1",
		"confirmPassword": "secret1",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid email format")
}
