package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAmounts_ConcatenatedPair(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		desc    string
		amount  string
		balance string
	}{
		{"plain", "COFFEE SHOP120.501,000.00", "COFFEE SHOP", "-120.50", "1000.00"},
		{"thousands separators", "RENT PAYMENT15,000.0045,250.75", "RENT PAYMENT", "-15000.00", "45250.75"},
		{"no description", "120.501,000.00", "", "-120.50", "1000.00"},
		{"slash reference", "UPI/ZOMATO/ref1,234.005,000.00", "UPI/ZOMATO/ref", "-1234.00", "5000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := resolveAmounts(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.desc, r.description)
			assert.Equal(t, tt.amount, r.amount.StringFixed(2))
			assert.Equal(t, tt.balance, r.balance.StringFixed(2))
		})
	}
}

func TestResolveAmounts_SpacedPair(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		desc    string
		amount  string
		balance string
	}{
		{"single space", "SALARY CREDIT 75,000.00 80,000.00", "SALARY CREDIT", "75000.00", "80000.00"},
		{"multiple spaces", "REFUND  120.50   1,120.50", "REFUND", "120.50", "1120.50"},
		{"no description", "500.00 1,500.00", "", "500.00", "1500.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := resolveAmounts(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.desc, r.description)
			assert.Equal(t, tt.amount, r.amount.StringFixed(2))
			assert.Equal(t, tt.balance, r.balance.StringFixed(2))
		})
	}
}

func TestResolveAmounts_Miss(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"no numbers", "SOME MERCHANT NAME"},
		{"single amount only", "CARD PAYMENT 120.50"},
		{"wrong fraction width", "CARD 120.5 1,000.0"},
		{"empty", ""},
		{"amount not at end", "120.50 1,000.00 TRAILING TEXT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := resolveAmounts(tt.line)
			assert.False(t, ok)
		})
	}
}

// A concatenated pair must never be consumed by the spaced pattern:
// the concatenated check runs first and its outcome is a debit.
func TestResolveAmounts_OrderPreserved(t *testing.T) {
	r, ok := resolveAmounts("AMBIGUOUS 1,234.005,000.00")
	require.True(t, ok)
	assert.Equal(t, "-1234.00", r.amount.StringFixed(2))
	assert.Equal(t, "5000.00", r.balance.StringFixed(2))
}
