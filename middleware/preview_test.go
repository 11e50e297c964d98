package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("chave-de-teste")

func signToken(t *testing.T, key []byte, scope string, expiry time.Time) string {
	t.Helper()
	claims := &Claims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func runPreview(t *testing.T, authorization string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/preview/api/home", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var flagged bool
	handler := Preview(testKey)(func(c echo.Context) error {
		flagged, _ = c.Get(PreviewFlag).(bool)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, flagged
}

func TestPreviewAcceptsValidToken(t *testing.T) {
	token := signToken(t, testKey, "preview", time.Now().Add(time.Hour))
	rec, flagged := runPreview(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, flagged)
}

func TestPreviewRejectsMissingHeader(t *testing.T) {
	rec, flagged := runPreview(t, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, flagged)
}

func TestPreviewRejectsWrongKey(t *testing.T) {
	token := signToken(t, []byte("outra-chave"), "preview", time.Now().Add(time.Hour))
	rec, flagged := runPreview(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, flagged)
	assert.Contains(t, rec.Body.String(), "invalid token signature")
}

func TestPreviewRejectsExpiredToken(t *testing.T) {
	token := signToken(t, testKey, "preview", time.Now().Add(-time.Minute))
	rec, _ := runPreview(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPreviewRejectsWrongScope(t *testing.T) {
	token := signToken(t, testKey, "admin", time.Now().Add(time.Hour))
	rec, _ := runPreview(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
