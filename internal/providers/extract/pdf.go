package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/sandevgo/findoc/internal/core"
)

// PDF dumps document text page by page under numbered page headers.
type PDF struct{}

func NewPDF() *PDF {
	return &PDF{}
}

func (p *PDF) Type() core.DocType {
	return core.DocTypePDF
}

func (p *PDF) Extract(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "PDF Document (%d pages)\n", reader.NumPage())
	b.WriteString(strings.Repeat("=", 30) + "\n\n")

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil || strings.TrimSpace(text) == "" {
			// Pages without extractable text (scans, drawings) are skipped,
			// not fatal.
			continue
		}

		fmt.Fprintf(&b, "--- Page %d ---\n", i)
		b.WriteString(text)
		b.WriteString("\n\n")
	}

	return b.String(), nil
}
