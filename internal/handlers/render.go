package handlers

import (
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/studyblog/studyblog-web/internal/auth"
	"github.com/studyblog/studyblog-web/views/layout"
)

// Render renders a templ component and writes it to the response.
func Render(c echo.Context, component templ.Component) error {
	return component.Render(c.Request().Context(), c.Response().Writer)
}

// RenderPage wraps content in the site layout with the request's auth context.
func RenderPage(c echo.Context, title string, content templ.Component) error {
	meta := layout.NewPageMeta(title)
	return Render(c, layout.Base(meta, auth.GetAuthContext(c), content))
}
