// Package categorizer assigns spending categories to transaction
// descriptions. Two interchangeable strategies exist: a deterministic
// rule-based keyword table, and a remote text-classification service
// that always carries the rule-based table as its fallback.
package categorizer

import "context"

// FallbackCategory is assigned when no rule matches a description.
const FallbackCategory = "Other"

// Classifier labels a batch of transaction descriptions. The returned
// slice is always the same length as the input, one label per
// description, in order.
type Classifier interface {
	Categorize(ctx context.Context, descriptions []string) []string
}
