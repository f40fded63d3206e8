package runes

import "testing"

func TestLen(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 3},
		{"héllo", 5},
		{"世界", 2},
		{"a世b界c", 5},
		{"👍👎", 2},
		{"\xff\xfe", 2}, // invalid bytes decode as one unit each
	}

	for _, tt := range tests {
		txt := New(tt.input)
		if got := txt.Len(); got != tt.want {
			t.Errorf("New(%q).Len() = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestSlice(t *testing.T) {
	tests := []struct {
		input string
		i, j  int
		want  string
	}{
		{"abc", 0, 3, "abc"},
		{"abc", 1, 2, "b"},
		{"abc", 2, 2, ""},
		{"世界abc", 0, 2, "世界"},
		{"世界abc", 1, 3, "界a"},
		{"a👍b", 1, 2, "👍"},
		{"\xffab", 0, 1, "\xff"},
	}

	for _, tt := range tests {
		txt := New(tt.input)
		if got := txt.Slice(tt.i, tt.j); got != tt.want {
			t.Errorf("New(%q).Slice(%d, %d) = %q, want %q",
				tt.input, tt.i, tt.j, got, tt.want)
		}
	}
}

func TestSliceRoundTrip(t *testing.T) {
	// Copying every unit individually must reproduce the original bytes,
	// including invalid UTF-8.
	inputs := []string{"", "abc", "世界", "a\xffb\xfec", "\x80\x80"}
	for _, input := range inputs {
		txt := New(input)
		var out string
		for i := 0; i < txt.Len(); i++ {
			out += txt.Slice(i, i+1)
		}
		if out != input {
			t.Errorf("unit-by-unit copy of %q = %q", input, out)
		}
	}
}

func TestByteOffset(t *testing.T) {
	txt := New("a世b")
	wantOffsets := []int{0, 1, 4, 5}
	for i, want := range wantOffsets {
		if got := txt.ByteOffset(i); got != want {
			t.Errorf("ByteOffset(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestHasPrefix(t *testing.T) {
	tests := []struct {
		input string
		i     int
		pat   string
		want  bool
	}{
		{"hello", 0, "hell", true},
		{"hello", 1, "ell", true},
		{"hello", 1, "hello", false},
		{"hello", 4, "o", true},
		{"hello", 5, "o", false},
		{"世界", 0, "世", true},
		{"世界", 1, "界", true},
		{"世界", 1, "世", false},
	}

	for _, tt := range tests {
		txt := New(tt.input)
		if got := txt.HasPrefix(tt.i, tt.pat); got != tt.want {
			t.Errorf("New(%q).HasPrefix(%d, %q) = %v, want %v",
				tt.input, tt.i, tt.pat, got, tt.want)
		}
	}
}

func TestCeilUnit(t *testing.T) {
	// "a世b": unit offsets 0, 1, 4, 5.
	txt := New("a世b")
	tests := []struct {
		b    int
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 2}, // mid-rune: rounds up past the unit that starts below b
		{3, 2},
		{4, 2},
		{5, 3},
	}

	for _, tt := range tests {
		if got := txt.CeilUnit(tt.b); got != tt.want {
			t.Errorf("CeilUnit(%d) = %d, want %d", tt.b, got, tt.want)
		}
	}
}
