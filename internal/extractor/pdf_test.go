package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsReadableText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			"statement text",
			"HDFC BANK Account Statement\nDate Particulars Balance\n01-04-2024 UPI/ZOMATO 1,234.00",
			true,
		},
		{"too short", "Bank statement", false},
		{"empty", "", false},
		{
			"encoding garbage",
			strings.Repeat("Ã¿þ¤Ø", 30),
			false,
		},
		{
			"readable but not a statement",
			strings.Repeat("lorem ipsum dolor sit amet ", 10),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isReadableText(tt.text))
		})
	}
}

func TestExtractText_MissingFile(t *testing.T) {
	_, err := ExtractText("/does/not/exist.pdf")
	assert.Error(t, err)
}
