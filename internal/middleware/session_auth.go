package middleware

import (
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// SessionName is the cookie under which the login session is stored.
const SessionName = "microblog_session"

// Context keys set by SessionAuthMiddleware for downstream handlers.
const (
	ContextUserIDKey   = "userID"
	ContextUsernameKey = "username"
)

// SessionAuthMiddleware resolves the logged-in user from the session
// cookie and stores the identity in the request context. Anonymous
// requests are redirected to the login page.
func SessionAuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := session.Get(SessionName, c)
			if err != nil {
				return c.Redirect(http.StatusFound, "/login/")
			}

			userID, ok := sess.Values["user_id"].(uint)
			if !ok || userID == 0 {
				return c.Redirect(http.StatusFound, "/login/")
			}

			c.Set(ContextUserIDKey, userID)
			if username, ok := sess.Values["username"].(string); ok {
				c.Set(ContextUsernameKey, username)
			}

			return next(c)
		}
	}
}
