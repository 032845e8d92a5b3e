package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/studyblog/studyblog-web/internal/avatar"
)

// MediaHandler serves locally generated images.
type MediaHandler struct{}

func NewMediaHandler() *MediaHandler {
	return &MediaHandler{}
}

// HandleAvatar renders an initials avatar for users without an uploaded
// image. The path is /avatar/{name}.png; size is an optional query param.
func (h *MediaHandler) HandleAvatar(c echo.Context) error {
	name := strings.TrimSuffix(c.Param("name"), ".png")

	size := 128
	if s, err := strconv.Atoi(c.QueryParam("size")); err == nil && s > 0 && s <= 512 {
		size = s
	}

	png, err := avatar.Generate(name, size)
	if err != nil {
		return fmt.Errorf("generate avatar: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	return c.Blob(http.StatusOK, "image/png", png)
}
