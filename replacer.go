// Package replacer provides a multi-pattern substring replacement engine.
//
// Given a text and a map from patterns to replacement strings, it produces a
// new text with every recognized occurrence replaced, resolving ambiguity
// when several patterns could match at the same position:
//   - Patterns are grouped into prefix clusters at compile time
//   - A single left-to-right pass enumerates the candidates at each position
//   - A selection strategy (longest-match by default, shortest-match, or a
//     caller-supplied Selector) picks the winner
//
// Patterns are literal substrings, not expressions. Output is never
// rescanned: replacement text that happens to contain a registered pattern
// stays as-is. Positions and lengths are counted in runes, so multi-byte
// scripts work naturally.
//
// Basic usage:
//
//	r := replacer.New(map[string]string{
//	    "color":  "colour",
//	    "colors": "colours",
//	})
//	out := r.Replace("colors of the color wheel")
//	// out == "colours of the colour wheel"
//
// One-shot usage (no compiled state kept):
//
//	out := replacer.Replace("AA AB AC", map[string]string{"A": "B", "AB": "X"})
//	// out == "BB X BC"
//
// Custom selection:
//
//	sel := replacer.FirstN(2, replacer.Longest())
//	out := r.ReplaceWith(text, sel) // only the first two occurrences
//
// Large rule sets are accelerated with an Aho-Corasick prefilter over the
// cluster anchors; the prefilter never changes observable output and can be
// disabled through NewWithConfig.
package replacer

import (
	"github.com/coregx/replacer/engine"
)

// Selector resolves ambiguity among the candidates found at one position.
// See engine.Selector for the full contract.
type Selector = engine.Selector

// Candidate is a pattern literally present at the current position.
type Candidate = engine.Candidate

// Selection is a Selector's decision for one candidate list.
type Selection = engine.Selection

// Config controls engine behavior; see engine.Config.
type Config = engine.Config

// Longest returns the default strategy: select the longest candidate.
func Longest() Selector { return engine.Longest() }

// Shortest returns the strategy that selects the shortest candidate.
func Shortest() Selector { return engine.Shortest() }

// FirstN wraps inner so that only its first n accepted selections are
// applied. The returned Selector is stateful: build a fresh one per call.
func FirstN(n int, inner Selector) Selector { return engine.FirstN(n, inner) }

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config { return engine.DefaultConfig() }

// Replacer is a compiled replacement rule set.
//
// A Replacer is read-only after construction and safe for concurrent use,
// except that a stateful Selector shared across concurrent calls is the
// caller's responsibility.
//
// Example:
//
//	r := replacer.New(map[string]string{"cat": "dog"})
//	println(r.Replace("cat and cat")) // "dog and dog"
type Replacer struct {
	engine *engine.Engine
}

// New compiles rules into a Replacer with the default configuration.
//
// The rules map is copied. Empty-string patterns are ignored; they can never
// match. New has no failure conditions: an empty map compiles to a Replacer
// whose Replace returns its input unchanged.
func New(rules map[string]string) *Replacer {
	return &Replacer{engine: engine.New(rules, engine.DefaultConfig())}
}

// NewWithConfig compiles rules with a custom configuration.
// Returns an error only if the configuration is invalid.
//
// Example:
//
//	config := replacer.DefaultConfig()
//	config.EnablePrefilter = false
//	r, err := replacer.NewWithConfig(rules, config)
func NewWithConfig(rules map[string]string, config Config) (*Replacer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Replacer{engine: engine.New(rules, config)}, nil
}

// Replace returns text with every recognized occurrence replaced, using the
// longest-match strategy.
//
// Example:
//
//	r := replacer.New(map[string]string{"A": "B", "AB": "X"})
//	println(r.Replace("AA AB AC")) // "BB X BC"
func (r *Replacer) Replace(text string) string {
	return r.engine.Replace(text, engine.Longest())
}

// ReplaceShortest is like Replace but uses the shortest-match strategy.
//
// Example:
//
//	r := replacer.New(map[string]string{"A": "B", "AB": "X"})
//	println(r.ReplaceShortest("AA AB AC")) // "BB BB BC"
func (r *Replacer) ReplaceShortest(text string) string {
	return r.engine.Replace(text, engine.Shortest())
}

// ReplaceWith is like Replace but resolves ambiguity with sel.
//
// sel may hold mutable state (e.g. a counter bounding the number of
// replacements); the engine invokes it strictly sequentially within the
// call.
func (r *Replacer) ReplaceWith(text string, sel Selector) string {
	return r.engine.Replace(text, sel)
}

// ReplaceBytes is like Replace for byte slices. The result is always a
// fresh slice.
func (r *Replacer) ReplaceBytes(b []byte) []byte {
	return []byte(r.engine.Replace(string(b), engine.Longest()))
}

// Count returns the number of replacements the longest-match strategy
// applies to text, without building the output.
//
// Example:
//
//	r := replacer.New(map[string]string{"a": "b"})
//	println(r.Count("banana")) // 3
func (r *Replacer) Count(text string) int {
	return r.engine.Count(text, engine.Longest())
}

// NumPatterns returns the number of non-empty patterns in the rule set.
func (r *Replacer) NumPatterns() int {
	return r.engine.NumPatterns()
}

// Stats returns execution statistics accumulated across calls.
func (r *Replacer) Stats() engine.Stats {
	return r.engine.Stats()
}

// ResetStats resets execution statistics to zero.
func (r *Replacer) ResetStats() {
	r.engine.ResetStats()
}

// Replace transforms text with rules using the longest-match strategy,
// building the lookup structure fresh for this one call.
//
// For repeated use of one rule set, compile once with New instead.
func Replace(text string, rules map[string]string) string {
	return New(rules).Replace(text)
}

// ReplaceWith transforms text with rules, resolving ambiguity with sel,
// building the lookup structure fresh for this one call.
func ReplaceWith(text string, rules map[string]string, sel Selector) string {
	return New(rules).ReplaceWith(text, sel)
}
