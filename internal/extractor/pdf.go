// Package extractor turns machine-readable statement PDFs into
// newline-delimited text for the parser. Scanned/image-based PDFs are
// out of scope: extraction either yields readable text or fails.
package extractor

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"

	"github.com/AbhishekSharmale/newexpense-sub001/internal/models"
)

// ExtractText reads a PDF and returns its text as one newline-delimited
// string, pages in order. Adjacent table cells within a row come out
// concatenated or whitespace-separated depending on column emptiness,
// which is exactly the shape the parser's amount resolver expects.
func ExtractText(path string) (text string, err error) {
	defer func() {
		// The pdf library panics on some malformed documents.
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf extraction crashed: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	numPages := reader.NumPage()
	if numPages == 0 {
		return "", models.ErrUnreadablePDF
	}

	var b strings.Builder
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			var line strings.Builder
			for _, word := range row.Content {
				line.WriteString(word.S)
			}
			trimmed := strings.TrimSpace(line.String())
			if trimmed != "" {
				b.WriteString(trimmed)
				b.WriteByte('\n')
			}
		}
	}

	text = b.String()
	if !isReadableText(text) {
		return "", models.ErrUnreadablePDF
	}
	return text, nil
}

// commonWords appear in virtually all bank statements; text containing
// none of them is likely font-encoding garbage.
var commonWords = []string{
	"bank", "account", "balance", "date", "statement",
	"total", "deposit", "withdrawal", "transaction", "page",
}

// isReadableText guards against decoding garbage: enough characters,
// mostly readable ASCII, and at least one word a statement would
// contain.
func isReadableText(text string) bool {
	if len(text) <= 50 {
		return false
	}
	total, readable := 0, 0
	for _, r := range text {
		total++
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
			strings.ContainsRune(".,-/:;()'\"%&@#!?+=*", r) {
			readable++
		}
	}
	if total == 0 || float64(readable)/float64(total) <= 0.6 {
		return false
	}

	lower := strings.ToLower(text)
	for _, word := range commonWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
