package categorizer

import (
	"context"
	"strings"
)

// Rule pairs a keyword set with the category it maps to.
type Rule struct {
	Keywords []string
	Category string
}

// DefaultRules returns the built-in classification table. Order is
// significant and must be preserved: the first rule whose keyword set
// matches wins. UPI sits first because UPI references dominate the
// statements this engine sees and frequently embed merchant names that
// would otherwise match later rules.
func DefaultRules() []Rule {
	return []Rule{
		{Keywords: []string{"UPI"}, Category: "UPI Payment"},
		{Keywords: []string{"SALARY", "INTEREST", "DIVIDEND", "REFUND", "CASHBACK"}, Category: "Income"},
		{Keywords: []string{"ATM", "CASH WDL"}, Category: "Cash Withdrawal"},
		{Keywords: []string{"ZOMATO", "SWIGGY", "DOMINOS", "RESTAURANT", "FOOD"}, Category: "Food & Dining"},
		{Keywords: []string{"AMAZON", "FLIPKART", "MYNTRA", "BIGBASKET"}, Category: "Shopping"},
		{Keywords: []string{"ELECTRICITY", "RECHARGE", "BROADBAND", "DTH", "POSTPAID"}, Category: "Utilities"},
		{Keywords: []string{"IRCTC", "UBER", "OLA", "PETROL", "FUEL"}, Category: "Travel"},
		{Keywords: []string{"RENT", "EMI", "LOAN"}, Category: "Rent & EMI"},
		{Keywords: []string{"SIP", "MUTUAL FUND", "INSURANCE", "LIC "}, Category: "Investments"},
	}
}

// RuleBased is the deterministic keyword classifier. It is a pure
// function of the description text and is always available.
type RuleBased struct {
	rules []Rule
}

// NewRuleBased creates a rule-based classifier. A nil or empty rule
// table falls back to DefaultRules.
func NewRuleBased(rules []Rule) *RuleBased {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &RuleBased{rules: rules}
}

// Classify returns the category for a single description:
// case-insensitive substring match against the ordered rule table,
// first match wins, FallbackCategory otherwise.
func (c *RuleBased) Classify(description string) string {
	upper := strings.ToUpper(description)
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(upper, keyword) {
				return rule.Category
			}
		}
	}
	return FallbackCategory
}

// Categorize implements Classifier.
func (c *RuleBased) Categorize(_ context.Context, descriptions []string) []string {
	labels := make([]string, len(descriptions))
	for i, d := range descriptions {
		labels[i] = c.Classify(d)
	}
	return labels
}

// Categories returns the distinct category names of the rule table,
// in rule order, with the fallback appended.
func (c *RuleBased) Categories() []string {
	seen := make(map[string]bool, len(c.rules))
	var names []string
	for _, rule := range c.rules {
		if !seen[rule.Category] {
			seen[rule.Category] = true
			names = append(names, rule.Category)
		}
	}
	return append(names, FallbackCategory)
}
