package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/AbhishekSharmale/newexpense-sub001/internal/models"
)

// datePrefix recognizes the start of a new transaction: DD-MM-YYYY at
// position 0. Text extraction wraps long descriptions across physical
// lines, so a transaction is delimited by the next date line rather
// than a line terminator.
var datePrefix = regexp.MustCompile(`^(\d{2}-\d{2}-\d{4})`)

// draft is the mutable accumulator for one in-progress transaction.
// At most one draft is live at a time; the assembler owns it
// exclusively for the duration of its accumulation window.
type draft struct {
	date      string
	fragments []string
	amount    decimal.Decimal
	balance   decimal.Decimal
	resolved  bool
}

// absorb folds one line into the draft. While the draft's amount is
// unresolved, the line is first offered to the amount resolver; once
// resolved, every later line is description text only.
func (d *draft) absorb(line string) {
	if line == "" {
		return
	}
	if !d.resolved {
		if r, ok := resolveAmounts(line); ok {
			d.resolved = true
			d.amount = r.amount
			d.balance = r.balance
			if r.description != "" {
				d.fragments = append(d.fragments, r.description)
			}
			return
		}
	}
	d.fragments = append(d.fragments, line)
}

// assemble walks the bounded lines with an explicit draft threaded
// through the fold: a date-prefixed line flushes any live draft and
// starts a new one, other lines accumulate into the live draft, and
// stray lines with no draft live are discarded. Any live draft is
// flushed when input is exhausted.
func (e *Engine) assemble(lines []string) []models.Transaction {
	var txns []models.Transaction
	var current *draft

	flush := func() {
		if current == nil {
			return
		}
		txns = append(txns, e.finalize(current))
		current = nil
	}

	for _, line := range lines {
		if m := datePrefix.FindStringSubmatch(line); m != nil {
			flush()
			current = &draft{date: m[1], amount: decimal.Zero, balance: decimal.Zero}
			// Many transactions fit on one line: resolve immediately
			// against the remainder after the date.
			current.absorb(strings.TrimSpace(line[len(m[1]):]))
			continue
		}
		if current == nil {
			continue
		}
		current.absorb(line)
	}
	flush()

	return txns
}

// finalize converts a draft into an immutable Transaction: date
// reordered to ISO, description cleaned, type derived from the amount
// sign. Called exactly once per draft.
func (e *Engine) finalize(d *draft) models.Transaction {
	return models.Transaction{
		Date:        reformatDate(d.date),
		Description: e.layout.cleanDescription(d.fragments),
		Type:        transactionType(d.amount),
		Amount:      d.amount,
		Balance:     d.balance,
	}
}
