package parser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/AbhishekSharmale/newexpense-sub001/internal/models"
)

func TestReformatDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"normal", "01-04-2024", "2024-04-01"},
		{"end of year", "31-12-2023", "2023-12-31"},
		{"no calendar validation", "01-13-2024", "2024-13-01"},
		{"wrong shape passes through", "1-4-2024", "1-4-2024"},
		{"not a date", "garbage", "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reformatDate(tt.in))
		})
	}
}

func TestCleanDescription(t *testing.T) {
	layout := DefaultLayout()

	tests := []struct {
		name      string
		fragments []string
		want      string
	}{
		{"joins with single spaces", []string{"NEFT", "MERCHANT", "REF"}, "NEFT MERCHANT REF"},
		{"collapses whitespace runs", []string{"A   B", "C\t D"}, "A B C D"},
		{"strips boilerplate case-insensitively", []string{"cms transaction PAYROLL"}, "PAYROLL"},
		{"strips multiple boilerplate phrases", []string{"NET BANKING X CMS TRANSACTION Y"}, "X Y"},
		// Runes whose byte length changes under case folding must not
		// shift the removal offsets.
		{"fold-expanding runes before phrase", []string{"ȺȺȺȺȺȺȺȺCMS TRANSACTION"}, "ȺȺȺȺȺȺȺȺ"},
		{"multibyte rune adjacent to phrase", []string{"İCMS TRANSACTION"}, "İ"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, layout.cleanDescription(tt.fragments))
		})
	}
}

func TestTransactionType(t *testing.T) {
	assert.Equal(t, models.TypeCredit, transactionType(decimal.NewFromInt(1)))
	assert.Equal(t, models.TypeDebit, transactionType(decimal.NewFromInt(-1)))
	// Zero classifies as debit by convention.
	assert.Equal(t, models.TypeDebit, transactionType(decimal.Zero))
}
