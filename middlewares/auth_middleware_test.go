package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, role string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  uint(7),
		"role": role,
		"name": "Teacher One",
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func runChain(token string, mws ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	h := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return rec, h(ctx)
}

func TestRequireAuthAttachesClaims(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "teacher", time.Hour))
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	h := RequireAuth(testSecret)(func(c echo.Context) error {
		assert.Equal(t, uint(7), c.Get("user_id"))
		assert.Equal(t, "teacher", c.Get("role"))
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, h(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	_, err := runChain("", RequireAuth(testSecret))
	he, ok := err.(*echo.HTTPError)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	}
}

func TestRequireAuthRejectsExpiredToken(t *testing.T) {
	_, err := runChain(signTestToken(t, "teacher", -time.Minute), RequireAuth(testSecret))
	he, ok := err.(*echo.HTTPError)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	}
}

func TestRequireRole(t *testing.T) {
	// teacher เข้า group ที่อนุญาต teacher+admin ได้
	_, err := runChain(signTestToken(t, "teacher", time.Hour),
		RequireAuth(testSecret), RequireRole("teacher", "admin"))
	assert.NoError(t, err)

	// แต่เข้า group admin อย่างเดียวไม่ได้
	_, err = runChain(signTestToken(t, "teacher", time.Hour),
		RequireAuth(testSecret), RequireRole("admin"))
	he, ok := err.(*echo.HTTPError)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusForbidden, he.Code)
	}
}
