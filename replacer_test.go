package replacer

import (
	"testing"
)

var ambiguousRules = map[string]string{"A": "B", "AB": "X"}

func TestReplaceLongest(t *testing.T) {
	tests := []struct {
		rules map[string]string
		input string
		want  string
	}{
		{ambiguousRules, "AA AB AC", "BB X BC"},
		{map[string]string{"cat": "dog"}, "cat and cat", "dog and dog"},
		{map[string]string{"color": "colour", "colors": "colours"},
			"colors of the color wheel", "colours of the colour wheel"},
		{
			map[string]string{
				"as ":       "with ",
				"assisting": "working",
				"assertive": "peers",
				"asked":     "blue shirts",
				"assesses":  "poses",
			},
			"As stated above, assisting as assertive as asked astonishingly assesses no real danger",
			"As stated above, working with peers with blue shirts astonishingly poses no real danger",
		},
	}

	for _, tt := range tests {
		r := New(tt.rules)
		if got := r.Replace(tt.input); got != tt.want {
			t.Errorf("Replace(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestReplaceShortest(t *testing.T) {
	r := New(ambiguousRules)
	if got, want := r.ReplaceShortest("AA AB AC"), "BB BB BC"; got != want {
		t.Errorf("ReplaceShortest = %q, want %q", got, want)
	}
}

func TestReplaceWithUnusableSelection(t *testing.T) {
	r := New(ambiguousRules)
	sel := Selector(func(c []Candidate) (Selection, bool) {
		return Selection{Pattern: "XYZ"}, true
	})
	if got, want := r.ReplaceWith("AA AB AC", sel), "AA AB AC"; got != want {
		t.Errorf("ReplaceWith = %q, want %q", got, want)
	}
}

func TestReplaceWithForcedPattern(t *testing.T) {
	r := New(ambiguousRules)
	sel := Selector(func(c []Candidate) (Selection, bool) {
		return Selection{Pattern: "AB"}, true
	})
	if got, want := r.ReplaceWith("AA AB AC", sel), "XX X XC"; got != want {
		t.Errorf("ReplaceWith = %q, want %q", got, want)
	}
}

// A selector that allows exactly the first two matches and declines all
// further ones.
func TestReplaceWithBoundedSelector(t *testing.T) {
	r := New(map[string]string{"x": "a"})

	n := 0
	sel := Selector(func(c []Candidate) (Selection, bool) {
		if n >= 2 {
			return Selection{}, false
		}
		n++
		return Selection{Pattern: c[len(c)-1].Pattern}, true
	})

	if got, want := r.ReplaceWith("x x x x x", sel), "a a x x x"; got != want {
		t.Errorf("ReplaceWith = %q, want %q", got, want)
	}
}

func TestFirstNCombinator(t *testing.T) {
	r := New(map[string]string{"x": "a"})
	if got, want := r.ReplaceWith("x x x x x", FirstN(2, Longest())), "a a x x x"; got != want {
		t.Errorf("ReplaceWith(FirstN) = %q, want %q", got, want)
	}
}

func TestEmptyRules(t *testing.T) {
	inputs := []string{"", "abc", "some longer text with spaces"}
	r := New(nil)
	for _, input := range inputs {
		if got := r.Replace(input); got != input {
			t.Errorf("Replace(%q) with empty rules = %q, want input unchanged", input, got)
		}
	}
}

func TestNoOccurrences(t *testing.T) {
	r := New(map[string]string{"qq": "x", "zzz": "y"})
	input := "nothing in here matches at all"
	if got := r.Replace(input); got != input {
		t.Errorf("Replace(%q) = %q, want unchanged", input, got)
	}
}

func TestEmptyPatternIgnored(t *testing.T) {
	r := New(map[string]string{"": "boom", "a": "b"})
	if got, want := r.Replace("aaa"), "bbb"; got != want {
		t.Errorf("Replace = %q, want %q", got, want)
	}
	if got := r.NumPatterns(); got != 1 {
		t.Errorf("NumPatterns = %d, want 1", got)
	}
}

// With non-overlapping, non-nested patterns every candidate list has one
// entry, so the strategy cannot matter.
func TestStrategyIndependentWhenDisjoint(t *testing.T) {
	rules := map[string]string{"foo": "1", "bar": "2", "quux": "3"}
	inputs := []string{"foo bar quux", "barbar", "xfooxbarx", ""}

	r := New(rules)
	for _, input := range inputs {
		longest := r.Replace(input)
		shortest := r.ReplaceShortest(input)
		if longest != shortest {
			t.Errorf("strategies diverged on %q: longest %q, shortest %q",
				input, longest, shortest)
		}
	}
}

func TestOneShotMatchesCompiled(t *testing.T) {
	rules := map[string]string{"A": "B", "AB": "X", "world": "planet"}
	inputs := []string{"AA AB AC", "hello world", ""}

	r := New(rules)
	for _, input := range inputs {
		if got, want := Replace(input, rules), r.Replace(input); got != want {
			t.Errorf("one-shot Replace(%q) = %q, compiled = %q", input, got, want)
		}
		got := ReplaceWith(input, rules, Shortest())
		if want := r.ReplaceShortest(input); got != want {
			t.Errorf("one-shot ReplaceWith(%q) = %q, compiled = %q", input, got, want)
		}
	}
}

func TestReplaceBytes(t *testing.T) {
	r := New(map[string]string{"a": "b"})
	src := []byte("aaa")
	got := r.ReplaceBytes(src)
	if string(got) != "bbb" {
		t.Errorf("ReplaceBytes = %q, want %q", got, "bbb")
	}
	if string(src) != "aaa" {
		t.Errorf("source slice mutated to %q", src)
	}
}

func TestCount(t *testing.T) {
	r := New(map[string]string{"a": "b"})
	if got := r.Count("banana"); got != 3 {
		t.Errorf("Count = %d, want 3", got)
	}
}

func TestNewWithConfig(t *testing.T) {
	config := DefaultConfig()
	config.EnablePrefilter = false
	r, err := NewWithConfig(ambiguousRules, config)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	if got, want := r.Replace("AA AB AC"), "BB X BC"; got != want {
		t.Errorf("Replace = %q, want %q", got, want)
	}

	config.EnablePrefilter = true
	config.MinPrefilterAnchors = 0
	if _, err := NewWithConfig(ambiguousRules, config); err == nil {
		t.Error("NewWithConfig accepted an invalid config")
	}
}

func TestStats(t *testing.T) {
	r := New(map[string]string{"a": "b"})
	r.Replace("aaa")
	stats := r.Stats()
	if stats.Replacements != 3 {
		t.Errorf("Replacements = %d, want 3", stats.Replacements)
	}
	r.ResetStats()
	if r.Stats().Replacements != 0 {
		t.Error("ResetStats did not zero Replacements")
	}
}
