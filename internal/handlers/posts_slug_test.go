package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Understanding Go slices", "understanding-go-slices"},
		{"  Trim Me  ", "trim-me"},
		{"Already-slugged", "already-slugged"},
		{"What's new in Go 1.25?", "what-s-new-in-go-1-25"},
		{"ÉPICO", "pico"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.title), "slug of %q", tt.title)
	}
}
