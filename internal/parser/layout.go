package parser

import (
	"regexp"
	"strings"
)

// Layout describes the fixed columnar convention the upstream text
// extractor produces for one statement format. All section markers and
// cleanup phrases are injected here so that tests (and future formats)
// can substitute alternates without touching engine logic.
type Layout struct {
	// HeaderMarker is the column-header token sequence that opens the
	// transaction table. The extractor flattens adjacent header cells
	// with no separator, hence the concatenated form.
	HeaderMarker string

	// FooterMarkers close the transaction table: the totals row and
	// the per-page footer.
	FooterMarkers []string

	// SkipMarkers identify in-table lines that are never transactions,
	// such as the carried-forward balance row.
	SkipMarkers []string

	// Boilerplate phrases are removed from descriptions,
	// case-insensitively.
	Boilerplate []string

	// SinglePage stops scanning at the first footer marker instead of
	// resuming at the next page's header. Off by default: multi-page
	// statements repeat the header on every page and their later pages
	// carry real transactions.
	SinglePage bool

	// Compiled form of Boilerplate, built once at engine construction.
	boilerplateRe []*regexp.Regexp
}

// DefaultLayout returns the statement convention this engine was built
// for: DATE / MODE / PARTICULARS / DEPOSITS / WITHDRAWALS / BALANCE
// columns, DD-MM-YYYY dates, "Total:" footer.
func DefaultLayout() Layout {
	return Layout{
		HeaderMarker:  "DATEMODEPARTICULARSDEPOSITSWITHDRAWALSBALANCE",
		FooterMarkers: []string{"Total:", "Page "},
		SkipMarkers:   []string{"B/F"},
		Boilerplate:   []string{"CMS TRANSACTION", "NET BANKING"},
	}
}

func (l Layout) isHeader(line string) bool {
	return strings.Contains(line, l.HeaderMarker)
}

func (l Layout) isFooter(line string) bool {
	for _, marker := range l.FooterMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

func (l Layout) isSkipped(line string) bool {
	for _, marker := range l.SkipMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}
