package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/studyblog/studyblog-web/internal/api"
	"github.com/studyblog/studyblog-web/internal/auth"
	"github.com/studyblog/studyblog-web/internal/export"
	"github.com/studyblog/studyblog-web/internal/session"
	"github.com/studyblog/studyblog-web/storage"
	postview "github.com/studyblog/studyblog-web/views/posts"
)

const postsPerPage = 10

// PostHandler serves the post index, detail, editor and export endpoints.
// Post data always comes from the backend; only drafts and comments are local.
type PostHandler struct {
	api      *api.Client
	sessions *session.Manager
	store    *storage.Storage
	baseURL  string
}

func NewPostHandler(client *api.Client, sessions *session.Manager, store *storage.Storage, baseURL string) *PostHandler {
	return &PostHandler{api: client, sessions: sessions, store: store, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (h *PostHandler) HandleList(c echo.Context) error {
	filter := api.PostFilter{
		Limit:     postsPerPage,
		Search:    c.QueryParam("search"),
		StartDate: c.QueryParam("startDate"),
		EndDate:   c.QueryParam("endDate"),
		AuthorID:  c.QueryParam("authorId"),
	}
	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil && page > 0 {
		filter.Page = page
	} else {
		filter.Page = 1
	}

	page, err := h.api.ListPostsPaginated(c.Request().Context(), filter)
	if err != nil {
		slog.Error("failed to list posts", "error", err)
		return echo.NewHTTPError(http.StatusBadGateway, "posts are unavailable right now")
	}
	return RenderPage(c, "Posts", postview.List(page, filter))
}

func (h *PostHandler) HandleDetail(c echo.Context) error {
	post, err := h.fetchPost(c)
	if err != nil {
		return err
	}

	comments, err := h.store.ListComments(c.Request().Context(), post.ID)
	if err != nil {
		// Comments are frontend-local garnish; the post still renders.
		slog.Warn("failed to load comments", "post", post.ID, "error", err)
	}

	viewer, _ := auth.CurrentUser(c)
	data := postview.DetailData{
		Post:     post,
		Comments: comments,
		Viewer:   viewer,
		CanEdit:  auth.CanEditPost(viewer, post),
	}
	if c.QueryParam("published") != "" {
		data.Notice = "Post published."
	}
	return RenderPage(c, post.Title, postview.Detail(data))
}

func (h *PostHandler) HandleCreatePage(c echo.Context) error {
	user, _ := auth.CurrentUser(c)

	data := postview.FormData{Action: "/posts/create"}
	draft, err := h.store.GetDraft(c.Request().Context(), user.ID)
	if err != nil {
		slog.Warn("failed to load draft", "user", user.ID, "error", err)
	}
	if draft != nil {
		data.Title = draft.Title
		data.Slug = draft.Slug
		data.Text = draft.Text
		data.Draft = draft
		data.DraftAge = draft.UpdatedAt.Format(time.DateTime)
	}
	return RenderPage(c, "New post", postview.Form(data))
}

func (h *PostHandler) HandleCreateSubmit(c echo.Context) error {
	user, _ := auth.CurrentUser(c)
	token, _ := h.sessions.Token(c)

	req := api.CreatePostRequest{
		Title: c.FormValue("title"),
		Slug:  c.FormValue("slug"),
		Text:  c.FormValue("text"),
		Image: c.FormValue("image"),
	}
	if req.Slug == "" {
		req.Slug = Slugify(req.Title)
	}

	post, err := h.api.CreatePost(c.Request().Context(), token, req)
	if err != nil {
		data := postview.FormData{
			Title:  req.Title,
			Slug:   req.Slug,
			Text:   req.Text,
			Image:  req.Image,
			Action: "/posts/create",
			Error:  api.Normalize(err, "failed to publish post").Message,
		}
		return RenderPage(c, "New post", postview.Form(data))
	}

	if err := h.store.DeleteDraft(c.Request().Context(), user.ID); err != nil {
		slog.Warn("failed to clear draft after publish", "user", user.ID, "error", err)
	}
	return c.Redirect(http.StatusFound, "/posts/"+post.Slug+"?published=1")
}

// HandleSaveDraft persists the editor's state locally without publishing.
func (h *PostHandler) HandleSaveDraft(c echo.Context) error {
	user, _ := auth.CurrentUser(c)

	_, err := h.store.SaveDraft(c.Request().Context(), user.ID,
		c.FormValue("title"), c.FormValue("slug"), c.FormValue("text"))
	if err != nil {
		slog.Error("failed to save draft", "user", user.ID, "error", err)
		data := postview.FormData{
			Title:  c.FormValue("title"),
			Slug:   c.FormValue("slug"),
			Text:   c.FormValue("text"),
			Action: "/posts/create",
			Error:  "failed to save draft",
		}
		return RenderPage(c, "New post", postview.Form(data))
	}
	return c.Redirect(http.StatusFound, "/posts/create")
}

func (h *PostHandler) HandleEditPage(c echo.Context) error {
	post, err := h.fetchPost(c)
	if err != nil {
		return err
	}
	if user, _ := auth.CurrentUser(c); !auth.CanEditPost(user, post) {
		return echo.NewHTTPError(http.StatusForbidden, "not your post")
	}

	data := postview.FormData{
		Title:   post.Title,
		Slug:    post.Slug,
		Text:    post.Text,
		Image:   post.Image,
		Action:  "/posts/" + post.Slug + "/edit",
		Editing: true,
	}
	return RenderPage(c, "Edit post", postview.Form(data))
}

func (h *PostHandler) HandleEditSubmit(c echo.Context) error {
	post, err := h.fetchPost(c)
	if err != nil {
		return err
	}
	if user, _ := auth.CurrentUser(c); !auth.CanEditPost(user, post) {
		return echo.NewHTTPError(http.StatusForbidden, "not your post")
	}

	token, _ := h.sessions.Token(c)
	req := api.UpdatePostRequest{
		Title: c.FormValue("title"),
		Slug:  c.FormValue("slug"),
		Text:  c.FormValue("text"),
		Image: c.FormValue("image"),
	}

	updated, err := h.api.UpdatePost(c.Request().Context(), token, post.ID, req)
	if err != nil {
		data := postview.FormData{
			Title:   req.Title,
			Slug:    req.Slug,
			Text:    req.Text,
			Image:   req.Image,
			Action:  "/posts/" + post.Slug + "/edit",
			Editing: true,
			Error:   api.Normalize(err, "failed to update post").Message,
		}
		return RenderPage(c, "Edit post", postview.Form(data))
	}
	return c.Redirect(http.StatusFound, "/posts/"+updated.Slug)
}

func (h *PostHandler) HandleDelete(c echo.Context) error {
	post, err := h.fetchPost(c)
	if err != nil {
		return err
	}
	if user, _ := auth.CurrentUser(c); !auth.CanEditPost(user, post) {
		return echo.NewHTTPError(http.StatusForbidden, "not your post")
	}

	token, _ := h.sessions.Token(c)
	if err := h.api.DeletePost(c.Request().Context(), token, post.ID); err != nil {
		slog.Error("failed to delete post", "post", post.ID, "error", err)
		return echo.NewHTTPError(http.StatusBadGateway, "failed to delete post")
	}
	return c.Redirect(http.StatusFound, "/posts")
}

func (h *PostHandler) HandleComment(c echo.Context) error {
	post, err := h.fetchPost(c)
	if err != nil {
		return err
	}
	user, _ := auth.CurrentUser(c)

	text := strings.TrimSpace(c.FormValue("comment"))
	if len(text) < 3 {
		return c.Redirect(http.StatusFound, "/posts/"+post.Slug)
	}

	if _, err := h.store.AddComment(c.Request().Context(), post.ID, user.ID, user.Name, user.Avatar, text); err != nil {
		slog.Error("failed to add comment", "post", post.ID, "error", err)
	}
	return c.Redirect(http.StatusFound, "/posts/"+post.Slug)
}

// HandleShareQR serves a QR code pointing at the post's canonical URL. No
// backend round trip is needed; the slug is taken from the path as-is.
func (h *PostHandler) HandleShareQR(c echo.Context) error {
	slug := strings.TrimSuffix(c.Param("slug"), ".png")
	png, err := export.ShareQR(h.baseURL+"/posts/"+slug, 256)
	if err != nil {
		return fmt.Errorf("share qr: %w", err)
	}
	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *PostHandler) HandlePDF(c echo.Context) error {
	post, err := h.fetchPost(c)
	if err != nil {
		return err
	}

	pdf, err := export.PostPDF(post)
	if err != nil {
		return fmt.Errorf("post pdf: %w", err)
	}
	c.Response().Header().Set("Content-Disposition", `attachment; filename="`+post.Slug+`.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

func (h *PostHandler) fetchPost(c echo.Context) (*api.Post, error) {
	slug := c.Param("slug")
	post, err := h.api.GetPostBySlug(c.Request().Context(), slug)
	if err != nil {
		if api.StatusOf(err) == http.StatusNotFound {
			return nil, echo.NewHTTPError(http.StatusNotFound, "post not found")
		}
		slog.Error("failed to fetch post", "slug", slug, "error", err)
		return nil, echo.NewHTTPError(http.StatusBadGateway, "post is unavailable right now")
	}
	return post, nil
}

// Slugify turns a title into a URL-safe slug.
func Slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
