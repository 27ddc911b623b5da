package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"securenotes/internal/utils"
)

const testSecret = "test-secret"

func runGuard(t *testing.T, cookie *http.Cookie) (*httptest.ResponseRecorder, uint64, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotID uint64
	var reached bool
	next := func(c echo.Context) error {
		gotID, reached = UserID(c)
		return c.NoContent(http.StatusOK)
	}
	require.NoError(t, SessionAuth(testSecret)(next)(c))
	return rec, gotID, reached
}

func TestSessionAuth_MissingCookie(t *testing.T) {
	rec, _, reached := runGuard(t, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"access denied"}`, rec.Body.String())
	assert.False(t, reached)
}

func TestSessionAuth_InvalidToken(t *testing.T) {
	rec, _, reached := runGuard(t, &http.Cookie{Name: "token", Value: "garbage"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"token invalid or expired, log in again"}`, rec.Body.String())
	assert.False(t, reached)
}

func TestSessionAuth_ExpiredToken(t *testing.T) {
	tok, err := utils.NewSessionToken(testSecret, 7, -1)
	require.NoError(t, err)

	rec, _, reached := runGuard(t, &http.Cookie{Name: "token", Value: tok.Token})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
}

func TestSessionAuth_WrongSecret(t *testing.T) {
	tok, err := utils.NewSessionToken("other-secret", 7, 15)
	require.NoError(t, err)

	rec, _, reached := runGuard(t, &http.Cookie{Name: "token", Value: tok.Token})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
}

func TestSessionAuth_ValidToken(t *testing.T) {
	tok, err := utils.NewSessionToken(testSecret, 7, 15)
	require.NoError(t, err)

	rec, gotID, reached := runGuard(t, &http.Cookie{Name: "token", Value: tok.Token})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
	assert.Equal(t, uint64(7), gotID)
}

func TestUserID_WithoutGuard(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	_, ok := UserID(c)
	assert.False(t, ok)
}
