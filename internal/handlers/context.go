package handlers

import (
	"github.com/anonto42/microblog/internal/middleware"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// getUserIDFromContext returns the logged-in user's ID, or 0 when the
// request is anonymous.
func getUserIDFromContext(c echo.Context) uint {
	if id, ok := c.Get(middleware.ContextUserIDKey).(uint); ok {
		return id
	}
	return 0
}

func getUsernameFromContext(c echo.Context) string {
	if username, ok := c.Get(middleware.ContextUsernameKey).(string); ok {
		return username
	}
	return ""
}

// addFlash queues a one-shot message shown on the next rendered page.
func addFlash(c echo.Context, message string) {
	sess, err := session.Get(middleware.SessionName, c)
	if err != nil {
		return
	}
	sess.AddFlash(message)
	_ = sess.Save(c.Request(), c.Response())
}

// popFlashes drains the queued flash messages, clearing them from the
// session cookie.
func popFlashes(c echo.Context) []interface{} {
	sess, err := session.Get(middleware.SessionName, c)
	if err != nil {
		return nil
	}
	flashes := sess.Flashes()
	if len(flashes) > 0 {
		_ = sess.Save(c.Request(), c.Response())
	}
	return flashes
}
