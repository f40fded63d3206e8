package engine

import (
	"github.com/coregx/replacer/internal/runes"
)

// candidatesAt enumerates the patterns literally present at position pos for
// a single probe length, reusing dst's backing array.
//
// The probe takes the probeLen-rune substring at pos and looks it up as an
// anchor. A hit retrieves the cluster, but only the anchor itself is proven
// to match: longer members share the anchor as prefix and must be
// re-verified against the text. The returned slice preserves the cluster's
// ascending-length order.
//
// Distinct clusters never collide on one probe: lookup is by exact substring
// content, so two anchors of equal length with different content resolve to
// different (or no) clusters.
func (t *clusterTable) candidatesAt(txt *runes.Text, pos, probeLen int, dst []Candidate) []Candidate {
	dst = dst[:0]

	remaining := txt.Len() - pos
	if probeLen > remaining {
		return dst
	}

	cl, ok := t.clusters[txt.Slice(pos, pos+probeLen)]
	if !ok {
		return dst
	}

	for _, m := range cl.members {
		if m.runes > remaining {
			// Members are sorted ascending; nothing longer can fit.
			break
		}
		if m.runes == probeLen || txt.HasPrefix(pos, m.text) {
			dst = append(dst, Candidate{Pattern: m.text, Len: m.runes})
		}
	}
	return dst
}
