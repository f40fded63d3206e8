package engine

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// pattern is a registered pattern together with its precomputed rune length.
// Lengths are computed once at build time; the scanner and driver only ever
// compare and advance in rune units.
type pattern struct {
	text  string
	runes int
}

// cluster groups every pattern that shares one anchor.
//
// The anchor is the shortest pattern of the group and is a literal prefix of
// every member. Members are kept sorted ascending by rune length (the anchor
// first); ties are broken lexicographically so candidate order is
// deterministic regardless of map iteration order.
type cluster struct {
	anchor  string
	members []pattern
}

// clusterTable is the static lookup structure built once from a replacement
// map and read-only afterwards.
//
// Invariants:
//   - clusters partition all non-empty patterns
//   - no anchor is a prefix of another anchor
//   - anchorLens is the ascending, deduplicated list of anchor rune lengths
type clusterTable struct {
	clusters       map[string]*cluster
	anchorLens     []int
	maxAnchorBytes int
}

// buildClusters groups the keys of rules into prefix clusters.
//
// For each non-empty pattern k:
//   - if an existing anchor is a prefix of k, k joins that cluster;
//   - if k is a prefix of one or more existing anchors, k becomes the anchor
//     of a new cluster absorbing all of their members;
//   - otherwise k starts a singleton cluster.
//
// At most one existing anchor can be a prefix of k, and the two promotion
// cases are mutually exclusive, both by the prefix-disjointness invariant.
// Empty-string patterns are skipped entirely; they can never match and would
// break the engine's forward-progress guarantee.
//
// Construction never fails: an empty map produces an empty table.
func buildClusters(rules map[string]string) *clusterTable {
	t := &clusterTable{clusters: make(map[string]*cluster, len(rules))}

	for k := range rules {
		if k == "" {
			continue
		}
		t.insert(k)
	}

	t.finish()
	return t
}

// insert places one pattern into the table, merging clusters as needed.
func (t *clusterTable) insert(k string) {
	p := pattern{text: k, runes: utf8.RuneCountInString(k)}

	// Existing anchor that prefixes k: join its cluster.
	for anchor, cl := range t.clusters {
		if strings.HasPrefix(k, anchor) {
			cl.members = append(cl.members, p)
			return
		}
	}

	// k prefixes one or more existing anchors: promote k to anchor and
	// absorb every such cluster. A single shorter pattern can prefix
	// several pairwise-disjoint anchors (e.g. "ab" under "abc" and "abd"),
	// so all of them must move or the partition invariant breaks.
	var absorbed []pattern
	for anchor, cl := range t.clusters {
		if strings.HasPrefix(anchor, k) {
			absorbed = append(absorbed, cl.members...)
			delete(t.clusters, anchor)
		}
	}

	members := append([]pattern{p}, absorbed...)
	t.clusters[k] = &cluster{anchor: k, members: members}
}

// finish sorts cluster members and derives anchorLens and maxAnchorBytes.
func (t *clusterTable) finish() {
	lens := make(map[int]struct{}, len(t.clusters))

	for _, cl := range t.clusters {
		sort.Slice(cl.members, func(i, j int) bool {
			a, b := cl.members[i], cl.members[j]
			if a.runes != b.runes {
				return a.runes < b.runes
			}
			return a.text < b.text
		})

		anchorRunes := cl.members[0].runes
		lens[anchorRunes] = struct{}{}
		if len(cl.anchor) > t.maxAnchorBytes {
			t.maxAnchorBytes = len(cl.anchor)
		}
	}

	t.anchorLens = make([]int, 0, len(lens))
	for l := range lens {
		t.anchorLens = append(t.anchorLens, l)
	}
	sort.Ints(t.anchorLens)
}
