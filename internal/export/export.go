// Package export renders posts into shareable artifacts: a print-friendly PDF
// and a QR code pointing at the post's canonical URL.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/studyblog/studyblog-web/internal/api"
)

// PostPDF renders a post as a single-column A4 PDF.
func PostPDF(post *api.Post) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(post.Title, true)
	pdf.SetAuthor(post.Author.Name, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.MultiCell(0, 10, post.Title, "", "L", false)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(110, 110, 110)
	byline := fmt.Sprintf("by %s", post.Author.Name)
	if post.CreatedAt != "" {
		byline += " - " + post.CreatedAt
	}
	pdf.MultiCell(0, 6, byline, "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(0, 0, 0)
	for _, paragraph := range strings.Split(post.Text, "\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			pdf.Ln(4)
			continue
		}
		pdf.MultiCell(0, 6, paragraph, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// ShareQR encodes url as a PNG QR code of the given pixel size.
func ShareQR(url string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(url, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
