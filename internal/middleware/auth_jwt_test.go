package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shoppyglobe/internal/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func testConfig() config.Config {
	return config.Config{JWTSecret: "test_secret"}
}

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return s
}

// ミドルウェアを通った先でuser_idを確認するハンドラ
func echoUserID(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{"user_id": c.Get(CtxUserIDKey)})
}

func doRequest(authz string, mw echo.MiddlewareFunc) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = mw(echoUserID)(c)
	return rec
}

func TestAuthJWT_ValidToken(t *testing.T) {
	cfg := testConfig()
	now := time.Now()
	token := signedToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub": "42",
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	})

	rec := doRequest("Bearer "+token, AuthJWT(cfg))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(42), body["user_id"])
}

func TestAuthJWT_MissingToken(t *testing.T) {
	for _, authz := range []string{"", "Bearer ", "Token abc"} {
		rec := doRequest(authz, AuthJWT(testConfig()))

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "authz=%q", authz)
		assert.JSONEq(t, `{"message":"Not authorized, token missing"}`, rec.Body.String())
	}
}

func TestAuthJWT_InvalidSignature(t *testing.T) {
	token := signedToken(t, "other_secret", jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	rec := doRequest("Bearer "+token, AuthJWT(testConfig()))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Not authorized, invalid token"}`, rec.Body.String())
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	token := signedToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	rec := doRequest("Bearer "+token, AuthJWT(cfg))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Not authorized, invalid token"}`, rec.Body.String())
}

func TestAuthJWT_GarbageToken(t *testing.T) {
	rec := doRequest("Bearer not.a.jwt", AuthJWT(testConfig()))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Not authorized, invalid token"}`, rec.Body.String())
}
