// Package parser reconstructs well-typed financial transactions from
// the unstructured, line-fragmented text of a tabular bank statement.
// It is a pure, single-pass transformation: one statement's text in,
// one categorized transaction sequence plus summary out. No state is
// shared between calls, so independent parses may run concurrently.
package parser

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/AbhishekSharmale/newexpense-sub001/internal/analyzer"
	"github.com/AbhishekSharmale/newexpense-sub001/internal/categorizer"
	"github.com/AbhishekSharmale/newexpense-sub001/internal/models"
)

// textSampleLimit bounds the diagnostic sample returned when no
// transactions were recognized.
const textSampleLimit = 500

// Engine is the transaction reconstruction engine for one statement
// layout. Construct with New and reuse freely across goroutines.
type Engine struct {
	layout     Layout
	classifier categorizer.Classifier
	log        zerolog.Logger
}

// New creates an Engine. A zero-value layout falls back to
// DefaultLayout; a nil classifier falls back to the default rule
// table.
func New(layout Layout, classifier categorizer.Classifier, log zerolog.Logger) *Engine {
	if layout.HeaderMarker == "" {
		layout = DefaultLayout()
	}
	if classifier == nil {
		classifier = categorizer.NewRuleBased(nil)
	}
	layout.boilerplateRe = compileBoilerplate(layout.Boilerplate)
	return &Engine{layout: layout, classifier: classifier, log: log}
}

// Parse converts raw newline-delimited statement text into the full
// analysis result. Unrecognized input shapes degrade (fewer fields,
// zero amounts, fallback category) rather than erroring; only
// completely empty input returns models.ErrEmptyInput. Zero recognized
// transactions is not an error: the result carries diagnostics so the
// caller can report the condition.
func (e *Engine) Parse(ctx context.Context, rawText string) (*models.ParseResult, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, models.ErrEmptyInput
	}

	lines := splitLines(rawText)
	bounded := e.layout.sectionLines(lines)
	txns := e.assemble(bounded)

	e.log.Debug().
		Int("lines", len(lines)).
		Int("bounded", len(bounded)).
		Int("transactions", len(txns)).
		Msg("statement assembled")

	result := &models.ParseResult{
		BankName: detectBank(rawText),
	}

	if len(txns) == 0 {
		result.Transactions = []models.Transaction{}
		result.Summary = analyzer.Summarize(nil)
		result.Diagnostics = &models.Diagnostics{
			TextLength: len(rawText),
			TextSample: sampleText(rawText),
		}
		return result, nil
	}

	descriptions := make([]string, len(txns))
	for i := range txns {
		descriptions[i] = txns[i].Description
	}
	labels := e.classifier.Categorize(ctx, descriptions)
	for i := range txns {
		txns[i].Category = labels[i]
	}

	result.Transactions = txns
	result.Summary = analyzer.Summarize(txns)
	return result, nil
}

// sampleText truncates to textSampleLimit bytes, backing off to the
// previous rune boundary so the sample stays valid UTF-8.
func sampleText(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) <= textSampleLimit {
		return raw
	}
	cut := textSampleLimit
	for cut > 0 && !utf8.RuneStart(raw[cut]) {
		cut--
	}
	return raw[:cut]
}
