// Package pdftext extracts plain text from uploaded PDF documents.
package pdftext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extract concatenates the extractable text of every page. A page that
// yields no text contributes an empty string instead of failing the whole
// document; only an unreadable file is an error.
func Extract(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("error reading PDF: %w", err)
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Scanned or malformed pages simply contribute nothing.
			continue
		}
		builder.WriteString(text)
	}

	return builder.String(), nil
}
