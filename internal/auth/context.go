package auth

import (
	"github.com/labstack/echo/v4"

	"github.com/studyblog/studyblog-web/internal/api"
)

const (
	userContextKey            = "user"
	isAuthenticatedContextKey = "is_authenticated"
)

// Context holds the authentication data views need for conditional rendering.
type Context struct {
	IsAuthenticated bool
	User            *api.User
}

// GetAuthContext returns the auth context for templates. This provides all
// auth data needed by a view in a single call.
func GetAuthContext(c echo.Context) *Context {
	isAuth, _ := c.Get(isAuthenticatedContextKey).(bool)
	if !isAuth {
		return &Context{IsAuthenticated: false}
	}

	user, ok := c.Get(userContextKey).(*api.User)
	if !ok || user == nil {
		return &Context{IsAuthenticated: false}
	}

	return &Context{IsAuthenticated: true, User: user}
}

// CurrentUser returns the restored user for this request, if any.
func CurrentUser(c echo.Context) (*api.User, bool) {
	user, ok := c.Get(userContextKey).(*api.User)
	return user, ok && user != nil
}

// IsAuthenticated checks if the current request carries a valid session.
func IsAuthenticated(c echo.Context) bool {
	isAuth, _ := c.Get(isAuthenticatedContextKey).(bool)
	return isAuth
}

func setCurrentUser(c echo.Context, user *api.User) {
	if user == nil {
		c.Set(userContextKey, (*api.User)(nil))
		c.Set(isAuthenticatedContextKey, false)
		return
	}
	c.Set(userContextKey, user)
	c.Set(isAuthenticatedContextKey, true)
}
