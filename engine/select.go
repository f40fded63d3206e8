package engine

// Candidate is a pattern literally present at the current position.
//
// Candidate lists handed to a Selector are always non-empty and sorted
// ascending by Len; all candidates in one list belong to the same cluster
// and were found by the same probe.
type Candidate struct {
	// Pattern is the registered pattern text.
	Pattern string

	// Len is the pattern length in runes, which is also the number of
	// input units a full-length replacement consumes.
	Len int
}

// Selection is a Selector's decision for one candidate list.
//
// Advance controls how many input units the driver consumes:
//   - Advance > 0 is used as given (clamped to the end of the text)
//   - Advance == 0 means the chosen candidate's full length
//   - Advance < 0 is coerced to 1, preserving forward progress
type Selection struct {
	// Pattern names the chosen pattern. It is honored only if it is a key
	// of the replacement map; anything else counts as "no selection" for
	// this probe and scanning moves on to the next probe length.
	Pattern string

	// Advance optionally overrides the number of units consumed.
	Advance int
}

// Selector resolves ambiguity among the candidates found at one position.
//
// The driver calls a Selector at most once per successful probe, in strictly
// ascending probe-length order, and never concurrently within one call.
// Returning ok == false declines the whole candidate list; remaining probe
// lengths at the same position are still tried before the driver falls back
// to copying one input unit verbatim.
//
// A Selector may close over mutable state (e.g. a replacement counter);
// the sequential invocation guarantee makes that safe without locking,
// as long as the caller does not share one stateful Selector across
// concurrent calls.
type Selector func(candidates []Candidate) (Selection, bool)

// Longest returns the default strategy: always select the longest candidate
// and consume its full length.
//
// Example:
//
//	r := engine.New(map[string]string{"A": "B", "AB": "X"}, engine.DefaultConfig())
//	out := r.Replace("AA AB AC", engine.Longest())
//	// out == "BB X BC"
func Longest() Selector {
	return func(candidates []Candidate) (Selection, bool) {
		return Selection{Pattern: candidates[len(candidates)-1].Pattern}, true
	}
}

// Shortest returns the strategy that always selects the shortest candidate
// and consumes its full length.
//
// Example:
//
//	r := engine.New(map[string]string{"A": "B", "AB": "X"}, engine.DefaultConfig())
//	out := r.Replace("AA AB AC", engine.Shortest())
//	// out == "BB BB BC"
func Shortest() Selector {
	return func(candidates []Candidate) (Selection, bool) {
		return Selection{Pattern: candidates[0].Pattern}, true
	}
}

// FirstN wraps inner so that only its first n accepted selections are
// applied; every later candidate list is declined.
//
// The returned Selector is stateful and therefore single-use: build a fresh
// one per replacement call.
//
// Example:
//
//	sel := engine.FirstN(2, engine.Longest())
//	out := r.Replace("x x x x x", sel)
//	// with {"x": "a"}: out == "a a x x x"
func FirstN(n int, inner Selector) Selector {
	remaining := n
	return func(candidates []Candidate) (Selection, bool) {
		if remaining <= 0 {
			return Selection{}, false
		}
		sel, ok := inner(candidates)
		if ok {
			remaining--
		}
		return sel, ok
	}
}
