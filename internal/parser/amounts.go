package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountToken is the shape of one monetary cell: optional thousands
// separators, exactly two fractional digits.
const amountToken = `\d{1,3}(?:,\d{3})*\.\d{2}`

var (
	// concatenatedTail matches a line ending in two adjacent amount
	// tokens with no separating whitespace. The extractor flattens
	// adjacent table cells with no separator when the deposits cell is
	// empty, so this shape is withdrawal followed by balance.
	concatenatedTail = regexp.MustCompile(`^(.*?)(` + amountToken + `)(` + amountToken + `)$`)

	// spacedTail matches a line ending in two amount tokens separated
	// by whitespace. The empty withdrawals cell becomes a separator,
	// so this shape is deposit followed by balance.
	spacedTail = regexp.MustCompile(`^(.*?)\s*(` + amountToken + `)\s+(` + amountToken + `)$`)
)

// resolved is the outcome of a successful amount resolution.
type resolved struct {
	description string
	amount      decimal.Decimal
	balance     decimal.Decimal
}

// resolveAmounts extracts (description, signed amount, balance) from a
// line's numeric tail. The concatenated pattern is checked before the
// spaced one: an unseparated pair is the stricter shape and checking
// the spaced pattern first could mis-consume it. The order must be
// preserved. A numeric parse failure is a miss, never an error.
func resolveAmounts(line string) (resolved, bool) {
	line = strings.TrimSpace(line)

	if m := concatenatedTail.FindStringSubmatch(line); m != nil {
		if amount, balance, err := parseAmountPair(m[2], m[3]); err == nil {
			return resolved{
				description: strings.TrimSpace(m[1]),
				amount:      amount.Neg(),
				balance:     balance,
			}, true
		}
	}

	if m := spacedTail.FindStringSubmatch(line); m != nil {
		if amount, balance, err := parseAmountPair(m[2], m[3]); err == nil {
			return resolved{
				description: strings.TrimSpace(m[1]),
				amount:      amount,
				balance:     balance,
			}, true
		}
	}

	return resolved{}, false
}

// parseAmountPair parses two amount cells, stripping thousands
// separators first.
func parseAmountPair(a, b string) (decimal.Decimal, decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.ReplaceAll(a, ",", ""))
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	balance, err := decimal.NewFromString(strings.ReplaceAll(b, ",", ""))
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return amount, balance, nil
}
