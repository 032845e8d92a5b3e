package avatar

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image/png"
	"strings"
	"unicode"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// palette holds the background colors cycled by name hash, matching the
// placeholder avatars the site shows for users without an uploaded image.
var palette = [][3]float64{
	{0.23, 0.51, 0.96}, // blue
	{0.06, 0.72, 0.51}, // green
	{0.96, 0.62, 0.04}, // amber
	{0.94, 0.27, 0.27}, // red
	{0.55, 0.36, 0.96}, // violet
	{0.02, 0.71, 0.83}, // cyan
}

// Generate renders a square PNG showing the user's initials on a colored
// background. The color is a stable function of the name.
func Generate(name string, size int) ([]byte, error) {
	if size <= 0 {
		size = 128
	}

	dc := gg.NewContext(size, size)

	color := palette[hashName(name)%len(palette)]
	dc.SetRGB(color[0], color[1], color[2])
	dc.DrawRectangle(0, 0, float64(size), float64(size))
	dc.Fill()

	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face := truetype.NewFace(font, &truetype.Options{Size: float64(size) * 0.42})
	dc.SetFontFace(face)

	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(Initials(name), float64(size)/2, float64(size)/2, 0.5, 0.5)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// Initials returns up to two uppercase initials for a display name, falling
// back to "?" for empty input.
func Initials(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "?"
	}

	first := []rune(fields[0])
	initials := string(unicode.ToUpper(first[0]))
	if len(fields) > 1 {
		last := []rune(fields[len(fields)-1])
		initials += string(unicode.ToUpper(last[0]))
	}
	return initials
}

func hashName(name string) int {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(name))))
	return int(h.Sum32())
}
