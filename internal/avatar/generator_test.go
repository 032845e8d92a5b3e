package avatar

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Ada Lovelace", "AL"},
		{"ada", "A"},
		{"Jean-Luc Picard", "JP"},
		{"  spaced   out  ", "SO"},
		{"", "?"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Initials(tt.name), "initials of %q", tt.name)
	}
}

func TestGenerateProducesPNG(t *testing.T) {
	data, err := Generate("Ada Lovelace", 96)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 96, img.Bounds().Dx())
	assert.Equal(t, 96, img.Bounds().Dy())
}

func TestGenerateIsDeterministicPerName(t *testing.T) {
	first, err := Generate("Ada Lovelace", 64)
	require.NoError(t, err)
	second, err := Generate("Ada Lovelace", 64)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same name must produce the same avatar")
}
