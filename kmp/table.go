package kmp

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// BuildTable — KMP failure table
//
// Description:
//
//	For every pattern position i the table stores the length of the
//	longest proper border of pattern[0:i]. After a mismatch at position i
//	the matcher resumes comparing at pattern[t[i]]; t[i] == -1 means no
//	border can be salvaged and the source element is dropped.
//
// Algorithm Outline:
//  1. t[0] = -1, k = -1.
//  2. For i = 0..m-1:
//     while k >= 0 and pattern[i] != pattern[k]: k = t[k]
//     k++
//     t[i+1] = k   (when i+1 < m)
//
// Examples:
//
//	"abcabx"    → [-1 0 0 0 1 2]
//	"ababaaaba" → [-1 0 0 1 2 3 1 1 2]
//	"aaaaaaaab" → [-1 0 1 2 3 4 5 6 7]
//
// Complexity:
//
//	Time   = O(m) comparisons (amortised over the fallback chain)
//	Memory = O(m)
//
// Errors:
//   - ErrNilPattern — pattern is nil.
func BuildTable[T comparable](pattern Sequence[T]) (Table, error) {
	return BuildTableFunc(pattern, equal[T])
}

// BuildTableFunc is BuildTable with a caller-supplied equivalence relation.
// eq must be an equivalence relation; a tolerance such as |a-b| <= eps is
// not transitive and may hide matches. A nil eq falls back to value
// equality (cmp.Equal), which honours an Equal method on T and compares
// unexported struct fields like exported ones.
func BuildTableFunc[T any](pattern Sequence[T], eq func(a, b T) bool) (Table, error) {
	if pattern == nil {
		return nil, ErrNilPattern
	}
	if eq == nil {
		eq = defaultEqual[T]
	}
	m := pattern.Len()
	if m == 0 {
		return Table{}, nil
	}

	return buildTable(pattern, eq)[:m], nil
}

// buildTable returns the failure table extended by one entry: t[m] is the
// border of the whole pattern, which the matcher resumes from after a full
// match so overlapping occurrences are not lost.
func buildTable[T any](pattern Sequence[T], eq func(a, b T) bool) Table {
	m := pattern.Len()
	t := make(Table, m+1)
	t[0] = -1
	k := -1
	for i := 0; i < m; i++ {
		for k >= 0 && !eq(pattern.At(i), pattern.At(k)) {
			k = t[k]
		}
		k++
		t[i+1] = k
	}

	return t
}

// equal is the == relation for comparable element types.
func equal[T comparable](a, b T) bool { return a == b }

// valueEquality lets cmp.Equal descend into unexported fields instead of
// panicking on them.
var valueEquality = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// defaultEqual is the value equality used when no relation is supplied.
func defaultEqual[T any](a, b T) bool { return cmp.Equal(a, b, valueEquality...) }
