package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"fincalc-engine/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Auth: config.AuthConfig{
				Enabled:   true,
				JWTSecret: "test-jwt-secret-key",
			},
		},
	}
}

func TestGenerateBearerToken(t *testing.T) {
	h := NewAuthHandler(newTestConfig(), testLogger)

	t.Run("successfully generates token", func(t *testing.T) {
		rr := postJSON(t, h.GenerateBearerToken, "/auth/token", `{"username": "testuser"}`)

		assert.Equal(t, http.StatusOK, rr.Code)

		var respBody map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &respBody))
		require.Contains(t, respBody, "token")
		require.True(t, strings.HasPrefix(respBody["token"], "Bearer "))

		tokenString := strings.TrimPrefix(respBody["token"], "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-jwt-secret-key"), nil
		})
		require.NoError(t, err)
		assert.True(t, token.Valid)

		claims, ok := token.Claims.(jwt.MapClaims)
		require.True(t, ok)
		assert.Equal(t, "testuser", claims["username"])
	})

	t.Run("rejects a missing username", func(t *testing.T) {
		rr := postJSON(t, h.GenerateBearerToken, "/auth/token", `{}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		rr := postJSON(t, h.GenerateBearerToken, "/auth/token", `{"username": `)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
