package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Transaction types. Type is derived purely from the sign of Amount;
// a zero amount classifies as DEBIT.
const (
	TypeCredit = "CREDIT"
	TypeDebit  = "DEBIT"
)

var (
	// ErrEmptyInput is returned when the statement text is blank.
	ErrEmptyInput = errors.New("statement text is empty")
	// ErrUnreadablePDF is returned when no machine-readable text could
	// be extracted from a PDF (scanned or custom-encoded documents).
	ErrUnreadablePDF = errors.New("no readable text could be extracted from PDF")
)

// Transaction is a single finalized bank statement transaction.
// Amount is signed: negative is money out, positive is money in.
// Balance is the running balance after the transaction.
type Transaction struct {
	Date        string          `json:"date"` // ISO YYYY-MM-DD
	Description string          `json:"description"`
	Type        string          `json:"type"` // CREDIT or DEBIT
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
	Category    string          `json:"category"`
}

// Summary holds totals derived from a transaction sequence. It is
// recomputed fully on every parse and carries no identity of its own.
type Summary struct {
	TotalTransactions int                        `json:"totalTransactions"`
	TotalSpent        decimal.Decimal            `json:"totalSpent"`
	TotalIncome       decimal.Decimal            `json:"totalIncome"`
	Savings           decimal.Decimal            `json:"savings"`
	Categories        map[string]decimal.Decimal `json:"categories"`
}

// Diagnostics describes the input when no transactions were
// recognized, so the caller can report the condition usefully.
type Diagnostics struct {
	TextLength int    `json:"textLength"`
	TextSample string `json:"textSample,omitempty"`
}

// ParseResult is the full output of one statement analysis.
type ParseResult struct {
	Transactions []Transaction `json:"transactions"`
	Summary      Summary       `json:"summary"`
	BankName     string        `json:"bankName,omitempty"`
	Diagnostics  *Diagnostics  `json:"diagnostics,omitempty"`
}
