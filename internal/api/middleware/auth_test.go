package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"fincalc-engine/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(os.Stdout, nil))

const testSecret = "test-secret"

func signedToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "tester",
		"exp":      expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	protected := AuthMiddleware(config.AuthConfig{Enabled: true, JWTSecret: testSecret}, testLogger)(okHandler)

	t.Run("passes a valid bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/loans/payment", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, time.Now().Add(time.Hour)))
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/loans/payment", nil)
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("rejects a malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/loans/payment", nil)
		req.Header.Set("Authorization", "Token abc")
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/loans/payment", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, "other-secret", time.Now().Add(time.Hour)))
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/loans/payment", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, time.Now().Add(-time.Hour)))
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("disabled auth passes everything through", func(t *testing.T) {
		open := AuthMiddleware(config.AuthConfig{Enabled: false}, testLogger)(okHandler)
		req := httptest.NewRequest(http.MethodGet, "/loans/payment", nil)
		rr := httptest.NewRecorder()
		open.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
