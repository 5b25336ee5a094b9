// Package matcher decides whether an event-log record concerns a target
// executable. Three strategies apply in order, short-circuiting on the first
// success: exact name containment, fuzzy token similarity, and game-root
// folder containment. Fuzzy and folder run only in deep-scan mode.
package matcher

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/crimson-sun/crashlens/internal/model"
)

// FuzzyThreshold is the minimum similarity ratio for a fuzzy match.
// Empirically separates renamed or truncated process names from unrelated
// tokens without excessive false positives.
const FuzzyThreshold = 0.6

// folderConfidence is the fixed confidence assigned to folder matches.
const folderConfidence = 0.4

// tokenDelims are the non-space characters that split log text into tokens.
const tokenDelims = `\/:;,"'()[]{}<>|=`

// Matcher applies the relevance strategies for one target executable.
// Safe for concurrent use once constructed.
type Matcher struct {
	exeName  string // folded filename with extension
	exeStem  string // folded filename without extension
	rootName string // folded game-root folder name, "" when not derivable
	deepScan bool
}

// New creates a Matcher for the executable at exePath. The game-root folder
// is derived eagerly so Match stays a pure string operation.
func New(exePath string, deepScan bool) *Matcher {
	base := filepath.Base(exePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	m := &Matcher{
		exeName:  fold(base),
		exeStem:  fold(stem),
		deepScan: deepScan,
	}
	if deepScan {
		m.rootName = fold(gameRoot(exePath))
	}
	return m
}

// Match applies the strategies in order and returns the result for a single
// record. Unmatched records come back with Reason=ReasonNone and must be
// dropped (or kept for the terminal fallback) by the caller.
func (m *Matcher) Match(rec model.LogRecord) model.MatchResult {
	res := model.MatchResult{Record: rec, Reason: model.ReasonNone}
	text := fold(rec.Provider + " " + rec.Message)

	if m.exeName != "" && strings.Contains(text, m.exeName) ||
		m.exeStem != "" && strings.Contains(text, m.exeStem) {
		res.Matched = true
		res.Reason = model.ReasonExact
		res.Confidence = 1.0
		return res
	}
	if !m.deepScan {
		return res
	}

	if ratio := m.bestTokenRatio(text); ratio >= FuzzyThreshold {
		res.Matched = true
		res.Reason = model.ReasonFuzzy
		res.Confidence = ratio
		return res
	}

	if m.rootName != "" && strings.Contains(text, m.rootName) {
		res.Matched = true
		res.Reason = model.ReasonFolder
		res.Confidence = folderConfidence
	}
	return res
}

// MatchAll matches every record, preserving order. It does not drop
// non-matches; the search layer decides what unmatched records mean.
func (m *Matcher) MatchAll(records []model.LogRecord) []model.MatchResult {
	results := make([]model.MatchResult, len(records))
	for i, rec := range records {
		results[i] = m.Match(rec)
	}
	return results
}

// bestTokenRatio returns the highest similarity ratio between any token of
// the folded text and the executable's name or stem.
func (m *Matcher) bestTokenRatio(text string) float64 {
	best := 0.0
	for _, tok := range tokenize(text) {
		if r := Ratio(tok, m.exeName); r > best {
			best = r
		}
		if r := Ratio(tok, m.exeStem); r > best {
			best = r
		}
	}
	return best
}

// tokenize splits text on whitespace and path delimiters.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(tokenDelims, r)
	})
}

// fold lowercases s with full Unicode case folding, so containment checks
// are case-insensitive.
func fold(s string) string {
	return cases.Fold().String(s)
}
