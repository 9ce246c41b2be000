package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/AbhishekSharmale/newexpense-sub001/internal/models"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// reformatDate reorders DD-MM-YYYY into YYYY-MM-DD by direct field
// reordering. No calendar validation: month 13 reorders like any other
// value, and a string that does not have the expected shape passes
// through unchanged rather than being rejected.
func reformatDate(raw string) string {
	parts := strings.Split(raw, "-")
	if len(parts) != 3 || len(parts[0]) != 2 || len(parts[1]) != 2 || len(parts[2]) != 4 {
		return raw
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// compileBoilerplate builds one case-insensitive matcher per phrase.
// Matching on the original string keeps removal offsets rune-safe:
// case folding can change a rune's byte length, so offsets computed
// on a lowercased copy must never be applied to the original.
func compileBoilerplate(phrases []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(phrases))
	for _, phrase := range phrases {
		if phrase == "" {
			continue
		}
		patterns = append(patterns, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(phrase)))
	}
	return patterns
}

// cleanDescription joins the draft's fragments with single spaces,
// strips the layout's boilerplate phrases case-insensitively, and
// collapses whitespace runs.
func (l Layout) cleanDescription(fragments []string) string {
	description := strings.Join(fragments, " ")
	patterns := l.boilerplateRe
	if patterns == nil {
		patterns = compileBoilerplate(l.Boilerplate)
	}
	for _, re := range patterns {
		description = re.ReplaceAllString(description, "")
	}
	description = whitespaceRun.ReplaceAllString(description, " ")
	return strings.TrimSpace(description)
}

// transactionType derives CREDIT/DEBIT from the amount sign. Zero
// classifies as DEBIT by convention.
func transactionType(amount decimal.Decimal) string {
	if amount.IsPositive() {
		return models.TypeCredit
	}
	return models.TypeDebit
}
