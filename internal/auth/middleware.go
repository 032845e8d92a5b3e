package auth

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/studyblog/studyblog-web/internal/session"
)

// LoadSession restores the session before any handler runs. Every role-gated
// handler therefore observes a fully resolved session: either a validated
// user or anonymous, never an in-between state.
func LoadSession(mgr *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			setCurrentUser(c, mgr.Restore(c))
			return next(c)
		}
	}
}

// RequireAuth redirects anonymous requests to the login page, carrying the
// original path so login can return the user where they were headed.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !IsAuthenticated(c) {
				return redirectToLogin(c)
			}
			return next(c)
		}
	}
}

// RequireRoles blocks the route unless the session user holds one of roles.
// Anonymous requests go to login; an authenticated user with an insufficient
// role gets the access-denied page. Must run after LoadSession.
func RequireRoles(roles ...Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return redirectToLogin(c)
			}
			if !HasRole(user, roles...) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}

func redirectToLogin(c echo.Context) error {
	next := c.Request().URL.Path
	if next == "" || next == "/login" {
		return c.Redirect(http.StatusFound, "/login")
	}
	return c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(next))
}
