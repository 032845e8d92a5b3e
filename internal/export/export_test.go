package export

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyblog/studyblog-web/internal/api"
)

func TestPostPDF(t *testing.T) {
	post := &api.Post{
		Slug:      "go-slices",
		Title:     "Understanding Go slices",
		Text:      "Slices are views over arrays.\n\nThey have a length and a capacity.",
		CreatedAt: "2026-08-01T10:00:00Z",
		Author:    api.User{Name: "Ada Lovelace"},
	}

	data, err := PostPDF(post)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output must be a PDF document")
}

func TestShareQR(t *testing.T) {
	data, err := ShareQR("http://localhost:8080/posts/go-slices", 256)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}
