package rules

import (
	"strings"

	"hardware-advisor/internal/shared/util"
)

// Rule maps a keyword pattern to a component with a fixed confidence.
// Keywords form a conjunction: every keyword must appear in the normalized
// text as a substring. Rules are plain configuration records, not code.
type Rule struct {
	Keywords   []string
	Component  string
	Confidence float64
	Rationale  string
	Related    []string
}

// Match is the outcome of a rule hit.
type Match struct {
	Component  string
	Confidence float64
	Rationale  string
	Related    []string
}

// Engine evaluates an ordered rule list. Declaration order is part of the
// contract: the first matching rule wins, with no scoring across rules.
type Engine struct {
	rules []Rule
}

// NewEngine builds an engine over the given ordered rules.
func NewEngine(rules []Rule) *Engine {
	return &Engine{rules: rules}
}

// Default returns an engine over the built-in rule table.
func Default() *Engine {
	return NewEngine(defaultRules)
}

// Match evaluates the rules in declaration order against the normalized text.
// It reports false when no rule matches.
func (e *Engine) Match(text string) (Match, bool) {
	normalized := util.NormalizeText(text)
	if normalized == "" {
		return Match{}, false
	}
	for _, rule := range e.rules {
		if matches(rule, normalized) {
			return Match{
				Component:  rule.Component,
				Confidence: rule.Confidence,
				Rationale:  rule.Rationale,
				Related:    append([]string(nil), rule.Related...),
			}, true
		}
	}
	return Match{}, false
}

// Len returns the number of configured rules.
func (e *Engine) Len() int {
	return len(e.rules)
}

func matches(rule Rule, normalized string) bool {
	if len(rule.Keywords) == 0 {
		return false
	}
	for _, kw := range rule.Keywords {
		if !strings.Contains(normalized, strings.ToLower(kw)) {
			return false
		}
	}
	return true
}
