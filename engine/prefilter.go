package engine

import (
	"github.com/coregx/ahocorasick"
)

// anchorPrefilter finds stretches of input that cannot start any candidate.
//
// The automaton is built over the cluster anchors only. Every pattern has
// its cluster's anchor as a literal prefix, so a position where no anchor
// occurs has no candidates at all and the driver may copy it verbatim
// without probing.
type anchorPrefilter struct {
	auto           *ahocorasick.Automaton
	maxAnchorBytes int
}

// newAnchorPrefilter builds an automaton over the table's anchors.
// Returns nil if the automaton cannot be built; the driver then probes
// every position, which is always correct.
func newAnchorPrefilter(t *clusterTable) *anchorPrefilter {
	builder := ahocorasick.NewBuilder()
	for _, cl := range t.clusters {
		builder.AddPattern([]byte(cl.anchor))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &anchorPrefilter{auto: auto, maxAnchorBytes: t.maxAnchorBytes}
}

// next returns a byte offset bound such that no anchor occurrence starts in
// haystack[from:bound). Returns len(haystack) when no anchor occurs at or
// after from.
//
// The bound is conservative so that it holds under any leftmost-match
// semantics of the automaton: an occurrence the automaton skipped in favor
// of the reported match m must end at or after m.End, hence it starts at or
// after m.End minus the longest anchor length. Positions below that bound
// are provably anchor-free.
func (p *anchorPrefilter) next(haystack []byte, from int) int {
	m := p.auto.Find(haystack, from)
	if m == nil {
		return len(haystack)
	}
	bound := m.End - p.maxAnchorBytes
	if bound < from {
		bound = from
	}
	return bound
}
