package engine

import (
	"strings"
	"sync/atomic"

	"github.com/coregx/replacer/internal/runes"
)

// Engine is a compiled replacement rule set.
//
// An Engine is read-only after construction and safe for concurrent use;
// the cursor and output buffer of each call are call-local. The one caveat
// is a stateful Selector: the engine invokes it strictly sequentially within
// a call, but sharing one stateful Selector across concurrent calls is the
// caller's responsibility.
type Engine struct {
	// stats MUST be first field for proper 8-byte alignment on 32-bit platforms.
	// This ensures atomic operations on uint64 fields work correctly.
	stats Stats

	rules  map[string]string
	table  *clusterTable
	pre    *anchorPrefilter
	config Config
}

// Stats tracks execution statistics for performance analysis.
type Stats struct {
	// Probes counts cluster probes (one per probe length per position
	// actually scanned).
	Probes uint64

	// SelectorCalls counts selector invocations (successful probes only).
	SelectorCalls uint64

	// Replacements counts applied replacements.
	Replacements uint64

	// VerbatimUnits counts input units copied verbatim one at a time.
	VerbatimUnits uint64

	// PrefilterSkips counts bulk copies made from prefilter gaps.
	PrefilterSkips uint64
}

// New compiles rules into an Engine.
//
// The rules map is copied, so later caller mutation does not affect the
// engine. Empty-string patterns are dropped: they can never match, and
// skipping them is what guarantees the driver's forward progress.
// Construction never fails; an invalid Config should be rejected with
// Validate before calling New.
func New(rules map[string]string, config Config) *Engine {
	owned := make(map[string]string, len(rules))
	for k, v := range rules {
		owned[k] = v
	}

	table := buildClusters(owned)
	e := &Engine{rules: owned, table: table, config: config}

	if config.EnablePrefilter && len(table.clusters) >= config.MinPrefilterAnchors {
		e.pre = newAnchorPrefilter(table)
	}
	return e
}

// NumPatterns returns the number of non-empty patterns in the rule set.
func (e *Engine) NumPatterns() int {
	n := 0
	for _, cl := range e.table.clusters {
		n += len(cl.members)
	}
	return n
}

// HasPrefilter reports whether the anchor prefilter was built.
func (e *Engine) HasPrefilter() bool {
	return e.pre != nil
}

// Stats returns execution statistics.
//
// Example:
//
//	stats := e.Stats()
//	println("replacements:", stats.Replacements)
func (e *Engine) Stats() Stats {
	return Stats{
		Probes:         atomic.LoadUint64(&e.stats.Probes),
		SelectorCalls:  atomic.LoadUint64(&e.stats.SelectorCalls),
		Replacements:   atomic.LoadUint64(&e.stats.Replacements),
		VerbatimUnits:  atomic.LoadUint64(&e.stats.VerbatimUnits),
		PrefilterSkips: atomic.LoadUint64(&e.stats.PrefilterSkips),
	}
}

// ResetStats resets execution statistics to zero.
// Safe to call while Replace calls are in flight; counts from such calls
// may land before or after the reset.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.Probes, 0)
	atomic.StoreUint64(&e.stats.SelectorCalls, 0)
	atomic.StoreUint64(&e.stats.Replacements, 0)
	atomic.StoreUint64(&e.stats.VerbatimUnits, 0)
	atomic.StoreUint64(&e.stats.PrefilterSkips, 0)
}

// Replace runs one left-to-right pass over text, resolving ambiguity with
// sel, and returns the transformed text.
//
// Per position, probe lengths are tried in ascending order; the first usable
// selection (a chosen pattern that is a key of the rule set) emits its
// replacement and advances the cursor. A declined or unusable selection
// moves on to the next probe length at the same position. If no probe
// produces a usable selection, one input unit is copied verbatim.
//
// Emitted output is never rescanned, the cursor advances by at least one
// unit per iteration, and the pass always terminates.
func (e *Engine) Replace(text string, sel Selector) string {
	out, _ := e.run(text, sel, true)
	return out
}

// Count reports how many replacements sel applies to text, without building
// the output.
func (e *Engine) Count(text string, sel Selector) int {
	_, n := e.run(text, sel, false)
	return n
}

// run is the replacement driver shared by Replace and Count.
func (e *Engine) run(text string, sel Selector, build bool) (string, int) {
	if len(e.table.anchorLens) == 0 || len(text) == 0 {
		return text, 0
	}

	txt := runes.New(text)
	n := txt.Len()

	var out strings.Builder
	if build {
		out.Grow(len(text))
	}

	var haystack []byte
	if e.pre != nil {
		haystack = []byte(text)
	}

	var local Stats
	var cands []Candidate
	replaced := 0
	pos := 0

	for pos < n {
		// Bulk-copy input that provably cannot start any candidate.
		if e.pre != nil {
			bound := e.pre.next(haystack, txt.ByteOffset(pos))
			if j := txt.CeilUnit(bound); j > pos {
				if build {
					out.WriteString(txt.Slice(pos, j))
				}
				pos = j
				local.PrefilterSkips++
				if pos >= n {
					break
				}
			}
		}

		applied := false
		for _, probe := range e.table.anchorLens {
			local.Probes++
			cands = e.table.candidatesAt(txt, pos, probe, cands)
			if len(cands) == 0 {
				continue
			}

			local.SelectorCalls++
			choice, ok := sel(cands)
			if !ok {
				// Declined: remaining probe lengths at this position
				// are still tried before falling back to a verbatim
				// copy.
				continue
			}

			repl, ok := e.rules[choice.Pattern]
			if !ok {
				// Selection names an unregistered pattern; treated
				// identically to a decline.
				continue
			}

			if build {
				out.WriteString(repl)
			}
			replaced++
			local.Replacements++

			pos += e.advance(choice, cands, n-pos)
			applied = true
			break
		}
		if applied {
			continue
		}

		if build {
			out.WriteString(txt.Slice(pos, pos+1))
		}
		pos++
		local.VerbatimUnits++
	}

	e.addStats(&local)
	if !build {
		return text, replaced
	}
	return out.String(), replaced
}

// advance resolves the number of units a selection consumes.
//
// An explicit positive override is used as given; a negative override is
// coerced to 1. Without an override, the chosen candidate's full length is
// consumed. If the chosen pattern was not among the candidates (a usable
// selection can still name any registered pattern), no matched text exists
// at the cursor and the minimum advance of 1 applies. The result is always
// at least 1 and never moves past the end of the text.
func (e *Engine) advance(choice Selection, cands []Candidate, remaining int) int {
	adv := choice.Advance
	if adv == 0 {
		adv = 1
		for _, c := range cands {
			if c.Pattern == choice.Pattern {
				adv = c.Len
				break
			}
		}
	}
	if adv < 1 {
		adv = 1
	}
	if adv > remaining {
		adv = remaining
	}
	return adv
}

// addStats folds one call's counters into the shared stats.
func (e *Engine) addStats(local *Stats) {
	atomic.AddUint64(&e.stats.Probes, local.Probes)
	atomic.AddUint64(&e.stats.SelectorCalls, local.SelectorCalls)
	atomic.AddUint64(&e.stats.Replacements, local.Replacements)
	atomic.AddUint64(&e.stats.VerbatimUnits, local.VerbatimUnits)
	atomic.AddUint64(&e.stats.PrefilterSkips, local.PrefilterSkips)
}
