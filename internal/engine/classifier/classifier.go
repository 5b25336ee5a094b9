// Package classifier maps crash-event message text to a diagnostic category
// via an ordered rule table. Rules are evaluated top-down and the first
// pattern contained in the message wins, so specific exception codes must
// sit above generic substring families.
package classifier

import "strings"

// Rule is one classification pattern. Pattern is matched as a
// case-insensitive substring of the message.
type Rule struct {
	Pattern     string
	Category    string
	Explanation string
}

// Result is the outcome of classifying one message. Matched is false when no
// rule fired; the entry is then reported as an unclassified crash, never
// dropped.
type Result struct {
	Category    string
	Explanation string
	Matched     bool
}

// Classifier walks an ordered rule list, first match wins.
type Classifier struct {
	rules []Rule
}

// New creates a Classifier with the default rule table.
func New() *Classifier {
	return &Classifier{rules: defaultRules}
}

// NewWithRules creates a Classifier with a custom ordered rule list.
func NewWithRules(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// Classify returns the category and explanation of the first rule whose
// pattern occurs in message. Pure function of its input: the same message
// always yields the same result.
func (c *Classifier) Classify(message string) Result {
	text := strings.ToLower(message)
	for _, r := range c.rules {
		if strings.Contains(text, r.Pattern) {
			return Result{Category: r.Category, Explanation: r.Explanation, Matched: true}
		}
	}
	return Result{}
}

// Rules returns the classifier's rule table in evaluation order.
func (c *Classifier) Rules() []Rule {
	return c.rules
}
