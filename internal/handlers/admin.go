package handlers

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/studyblog/studyblog-web/internal/api"
	"github.com/studyblog/studyblog-web/internal/auth"
	"github.com/studyblog/studyblog-web/internal/session"
	adminview "github.com/studyblog/studyblog-web/views/admin"
)

// AdminHandler serves the user-management area. Role enforcement is layered:
// the route guard requires an admin session, and the backend rejects any
// operation the token's role does not permit.
type AdminHandler struct {
	api      *api.Client
	sessions *session.Manager
}

func NewAdminHandler(client *api.Client, sessions *session.Manager) *AdminHandler {
	return &AdminHandler{api: client, sessions: sessions}
}

func (h *AdminHandler) HandleUsersPage(c echo.Context) error {
	viewer, _ := auth.CurrentUser(c)
	token, _ := h.sessions.Token(c)

	searchEmail := c.QueryParam("email")
	searchName := c.QueryParam("name")

	data := adminview.UsersData{
		Viewer:      viewer,
		SearchEmail: searchEmail,
		SearchName:  searchName,
		Notice:      c.QueryParam("ok"),
		Error:       c.QueryParam("error"),
	}

	// The full listing and the search run against independent endpoints, so
	// fetch them concurrently.
	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() error {
		users, err := h.api.ListUsers(ctx, token)
		if err != nil {
			return err
		}
		data.Users = users
		return nil
	})
	if searchEmail != "" || searchName != "" {
		g.Go(func() error {
			result, err := h.api.SearchUser(ctx, token, searchEmail, searchName)
			if err != nil {
				if api.StatusOf(err) == http.StatusNotFound {
					return nil
				}
				return err
			}
			data.SearchResult = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.Error("failed to load users", "error", err)
		data.Error = api.Normalize(err, "failed to load users").Message
	}
	if data.SearchResult == nil && (searchEmail != "" || searchName != "") && data.Error == "" {
		data.Error = "no user matches that search"
	}

	return RenderPage(c, "User management", adminview.Users(data))
}

func (h *AdminHandler) HandlePromote(c echo.Context) error {
	return h.mutate(c, "user promoted to admin", func(token, userID string) error {
		return h.api.PromoteToAdmin(c.Request().Context(), token, userID)
	})
}

func (h *AdminHandler) HandleDemote(c echo.Context) error {
	return h.mutate(c, "admin role revoked", func(token, userID string) error {
		return h.api.DemoteFromAdmin(c.Request().Context(), token, userID)
	})
}

func (h *AdminHandler) HandleDeleteUser(c echo.Context) error {
	return h.mutate(c, "user deleted", func(token, userID string) error {
		return h.api.DeleteUser(c.Request().Context(), token, userID)
	})
}

func (h *AdminHandler) HandleRename(c echo.Context) error {
	name := c.FormValue("name")
	return h.mutate(c, "user renamed", func(token, userID string) error {
		return h.api.UpdateUserName(c.Request().Context(), token, userID, name)
	})
}

// mutate runs one user-management operation and redirects back to the listing
// with the outcome in the query string.
func (h *AdminHandler) mutate(c echo.Context, okMessage string, op func(token, userID string) error) error {
	token, _ := h.sessions.Token(c)
	userID := c.Param("id")

	if err := op(token, userID); err != nil {
		msg := api.Normalize(err, "operation failed").Message
		return c.Redirect(http.StatusFound, "/admin/users?error="+url.QueryEscape(msg))
	}
	return c.Redirect(http.StatusFound, "/admin/users?ok="+url.QueryEscape(okMessage))
}
