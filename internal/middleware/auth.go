package middleware // middleware contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware

	"securenotes/internal/utils" // session token verification
)

// userIDKey is the context key under which the authenticated user id is
// stored. Handlers read it back through UserID.
const userIDKey = "user_id"

// SessionAuth returns an Echo middleware that gates every protected route
// behind the `token` cookie. The guard is stateless across requests and has
// no side effect beyond attaching the authenticated user id to the request
// context.
//
// A request without the cookie is rejected with 401: the caller never
// authenticated. A request whose token fails verification (bad signature,
// tampered payload or expired) is rejected with 403 and told to log in
// again. Verification and decoding happen in one step; the user id is only
// trusted after the signature and expiry checks pass.
func SessionAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie("token")
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "access denied"})
			}
			userID, err := utils.ParseSessionToken(secret, cookie.Value)
			if err != nil {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "token invalid or expired, log in again"})
			}
			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// UserID extracts the authenticated user id that SessionAuth stored in the
// context. The boolean is false when the guard did not run, which on a
// correctly registered route cannot happen.
func UserID(c echo.Context) (uint64, bool) {
	id, ok := c.Get(userIDKey).(uint64)
	return id, ok
}
