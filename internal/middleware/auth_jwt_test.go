package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"app/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func runAuthJWT(cfg config.Config, authz string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := AuthJWT(cfg)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	_ = handler(c)
	return rec, c
}

func TestAuthJWT(t *testing.T) {
	cfg := config.Config{JWTSecret: "secret-de-test"}
	now := time.Now()

	t.Run("valid token populates client id and role", func(t *testing.T) {
		token := signToken(t, cfg.JWTSecret, jwt.MapClaims{
			"sub":  float64(5),
			"role": "CLIENT",
			"iat":  now.Unix(),
			"exp":  now.Add(time.Minute).Unix(),
		})

		rec, c := runAuthJWT(cfg, "Bearer "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(5), c.Get(CtxClientIDKey))
		assert.Equal(t, "CLIENT", c.Get(CtxClientRoleKey))
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		rec, _ := runAuthJWT(cfg, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token := signToken(t, cfg.JWTSecret, jwt.MapClaims{
			"sub":  float64(5),
			"role": "CLIENT",
			"iat":  now.Add(-time.Hour).Unix(),
			"exp":  now.Add(-time.Minute).Unix(),
		})

		rec, _ := runAuthJWT(cfg, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token := signToken(t, "autre-secret", jwt.MapClaims{
			"sub":  float64(5),
			"role": "CLIENT",
			"exp":  now.Add(time.Minute).Unix(),
		})

		rec, _ := runAuthJWT(cfg, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non bearer scheme is rejected", func(t *testing.T) {
		rec, _ := runAuthJWT(cfg, "Basic abc")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAdminRoleGuard(t *testing.T) {
	e := echo.New()

	run := func(role interface{}) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != nil {
			c.Set(CtxClientRoleKey, role)
		}

		handler := AdminRoleGuard()(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		_ = handler(c)
		return rec
	}

	t.Run("admin passes", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, run("ADMIN").Code)
	})

	t.Run("client is forbidden", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, run("CLIENT").Code)
	})

	t.Run("missing role is unauthorized", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, run(nil).Code)
	})
}
