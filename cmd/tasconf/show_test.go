package main

import (
	"sort"
	"testing"
)

func TestNumericLess(t *testing.T) {
	lines := []string{
		"Rule10 1",
		"Rule2 1",
		"SetOption11 0",
		"SetOption3 1",
		"Sleep 50",
		"Rule1 1",
	}
	sort.SliceStable(lines, func(i, j int) bool { return numericLess(lines[i], lines[j]) })

	want := []string{
		"Rule1 1",
		"Rule2 1",
		"Rule10 1",
		"SetOption3 1",
		"SetOption11 0",
		"Sleep 50",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("sorted[%d] = %q, want %q (full: %v)", i, lines[i], want[i], lines)
		}
	}
}

func TestNumericLessEdgeCases(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"a2", "a10", true},
		{"a10", "a2", false},
		{"a1", "a1", false},
		{"a01", "a1", false},
		{"a1", "a01", true},
		{"a", "a1", true},
		{"", "a", true},
	}
	for _, c := range cases {
		if got := numericLess(c.a, c.b); got != c.want {
			t.Fatalf("numericLess(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
