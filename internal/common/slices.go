package common

import (
	"cmp"
	"slices"
)

// SortedCopy returns a sorted copy of s; the input is left untouched.
// Duplicates are kept.
func SortedCopy[S ~[]E, E cmp.Ordered](s S) S {
	out := slices.Clone(s)
	if out == nil {
		out = S{}
	}
	slices.Sort(out)

	return out
}

// UniqueInOrder drops repeated elements, keeping the first occurrence.
func UniqueInOrder[S ~[]E, E comparable](s S) S {
	seen := make(map[E]struct{}, len(s))
	out := make(S, 0, len(s))
	for _, e := range s {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}

	return out
}

// Difference returns the elements of a missing from b, in a's order.
func Difference[S ~[]E, E comparable](a, b S) S {
	in := make(map[E]struct{}, len(b))
	for _, e := range b {
		in[e] = struct{}{}
	}

	var out S
	for _, e := range a {
		if _, ok := in[e]; !ok {
			out = append(out, e)
		}
	}

	return out
}
