package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studyblog/studyblog-web/internal/api"
	"github.com/studyblog/studyblog-web/internal/auth"
	"github.com/studyblog/studyblog-web/internal/session"
	profileview "github.com/studyblog/studyblog-web/views/profile"
)

// ProfileHandler serves the profile editor. Mutations go to the backend; the
// session manager only absorbs their result via UpdateUser.
type ProfileHandler struct {
	api           *api.Client
	sessions      *session.Manager
	uploadMaxSize int64
}

func NewProfileHandler(client *api.Client, sessions *session.Manager, uploadMaxSize int64) *ProfileHandler {
	return &ProfileHandler{api: client, sessions: sessions, uploadMaxSize: uploadMaxSize}
}

func (h *ProfileHandler) HandleProfilePage(c echo.Context) error {
	user, _ := auth.CurrentUser(c)

	data := profileview.Data{User: user}
	if c.QueryParam("saved") != "" {
		data.Notice = "Profile saved."
	}
	return RenderPage(c, "Profile", profileview.Show(data))
}

func (h *ProfileHandler) HandleProfileUpdate(c echo.Context) error {
	user, _ := auth.CurrentUser(c)
	token, _ := h.sessions.Token(c)

	req := api.UpdateProfileRequest{
		Bio:       c.FormValue("bio"),
		Github:    c.FormValue("github"),
		Linkedin:  c.FormValue("linkedin"),
		Twitter:   c.FormValue("twitter"),
		Instagram: c.FormValue("instagram"),
	}

	updated, err := h.api.UpdateProfile(c.Request().Context(), token, req)
	if err != nil {
		data := profileview.Data{User: user, Error: api.Normalize(err, "failed to update profile").Message}
		return RenderPage(c, "Profile", profileview.Show(data))
	}

	if err := h.sessions.UpdateUser(c, updated); err != nil {
		slog.Warn("failed to refresh session after profile update", "error", err)
	}
	return c.Redirect(http.StatusFound, "/profile?saved=1")
}

// HandleAvatarUpload proxies the image to the backend's upload endpoint, then
// patches the profile with the stored file's URL.
func (h *ProfileHandler) HandleAvatarUpload(c echo.Context) error {
	user, _ := auth.CurrentUser(c)
	token, _ := h.sessions.Token(c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		data := profileview.Data{User: user, Error: "choose an image to upload"}
		return RenderPage(c, "Profile", profileview.Show(data))
	}
	if h.uploadMaxSize > 0 && fileHeader.Size > h.uploadMaxSize {
		data := profileview.Data{User: user, Error: "image is too large"}
		return RenderPage(c, "Profile", profileview.Show(data))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	upload, err := h.api.UploadImage(c.Request().Context(), token, fileHeader.Filename, file)
	if err != nil {
		data := profileview.Data{User: user, Error: api.Normalize(err, "failed to upload image").Message}
		return RenderPage(c, "Profile", profileview.Show(data))
	}

	updated, err := h.api.UpdateProfile(c.Request().Context(), token, api.UpdateProfileRequest{Avatar: upload.URL})
	if err != nil {
		data := profileview.Data{User: user, Error: api.Normalize(err, "failed to update profile").Message}
		return RenderPage(c, "Profile", profileview.Show(data))
	}

	if err := h.sessions.UpdateUser(c, updated); err != nil {
		slog.Warn("failed to refresh session after avatar upload", "error", err)
	}
	return c.Redirect(http.StatusFound, "/profile?saved=1")
}
