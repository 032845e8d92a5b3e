package handlers

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/studyblog/studyblog-web/internal/api"
	homeview "github.com/studyblog/studyblog-web/views/home"
)

const homePostCount = 6

// HandleHome renders the landing page. A backend failure degrades to an empty
// post list rather than an error page; the home page must always load.
func (h *PostHandler) HandleHome(c echo.Context) error {
	page, err := h.api.ListPostsPaginated(c.Request().Context(), api.PostFilter{Page: 1, Limit: homePostCount})
	if err != nil {
		slog.Warn("failed to load recent posts for home", "error", err)
		return RenderPage(c, "", homeview.Index(nil))
	}
	return RenderPage(c, "", homeview.Index(page.Posts))
}
