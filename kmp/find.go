package kmp

import (
	"io"
	"iter"
	"slices"
)

// FindFirst returns the start index of the first occurrence of pattern in
// src at or after the start offset, or NotFound. Elements are compared
// with ==.
//
// An empty pattern matches at the start offset without reading src.
// src is closed before FindFirst returns.
//
// Errors:
//   - ErrNilSource, ErrNilPattern — absent arguments.
//   - ErrOptionViolation / ErrNegativeStart — invalid options.
func FindFirst[T comparable](src Cursor[T], pattern Sequence[T], opts ...Option) (int, error) {
	return FindFirstFunc(src, pattern, equal[T], opts...)
}

// FindFirstFunc is FindFirst with a caller-supplied equivalence relation,
// called as eq(sourceElement, patternElement). A nil eq falls back to
// value equality (cmp.Equal).
func FindFirstFunc[T any](src Cursor[T], pattern Sequence[T], eq func(a, b T) bool, opts ...Option) (int, error) {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithLimit(1))

	s, err := NewScanner(src, pattern, eq, all...)
	if err != nil {
		return NotFound, err
	}
	defer s.Close()

	if s.m == 0 {
		return s.start, nil
	}
	idx, ok := s.Next()
	if !ok {
		return NotFound, nil
	}

	return idx, nil
}

// FindAll returns every occurrence of pattern in src at or after the start
// offset as a lazy, strictly increasing sequence of start indices.
// Occurrences may overlap. Elements are compared with ==.
//
// Arguments are validated before the sequence is returned; on error src
// is already closed. The sequence is single-use: src is consumed while it
// is ranged over and closed when ranging stops for any reason. A sequence
// that is never ranged leaves src open; the caller must then close src
// itself so a FromSeq producer is stopped. An empty pattern yields nothing.
func FindAll[T comparable](src Cursor[T], pattern Sequence[T], opts ...Option) (iter.Seq[int], error) {
	return FindAllFunc(src, pattern, equal[T], opts...)
}

// FindAllFunc is FindAll with a caller-supplied equivalence relation,
// called as eq(sourceElement, patternElement). A nil eq falls back to
// value equality (cmp.Equal).
func FindAllFunc[T any](src Cursor[T], pattern Sequence[T], eq func(a, b T) bool, opts ...Option) (iter.Seq[int], error) {
	s, err := NewScanner(src, pattern, eq, opts...)
	if err != nil {
		return nil, err
	}

	return s.All(), nil
}

// Index returns the index of the first occurrence of pattern in s, or
// NotFound. An empty pattern matches at 0.
func Index[T comparable](s, pattern []T) int {
	idx, _ := FindFirst[T](FromSlice(s), Slice[T](pattern))

	return idx
}

// IndexAll returns the start indices of all, possibly overlapping,
// occurrences of pattern in s. An empty pattern yields nil.
func IndexAll[T comparable](s, pattern []T) []int {
	seq, _ := FindAll[T](FromSlice(s), Slice[T](pattern))

	return slices.Collect(seq)
}

// Count returns the number of, possibly overlapping, occurrences of
// pattern in s. Unlike strings.Count, "aa" occurs twice in "aaa".
func Count[T comparable](s, pattern []T) int {
	seq, _ := FindAll[T](FromSlice(s), Slice[T](pattern))
	n := 0
	for range seq {
		n++
	}

	return n
}

// Contains reports whether pattern occurs in s.
func Contains[T comparable](s, pattern []T) bool {
	return Index(s, pattern) != NotFound
}

// IndexReader returns the byte offset of the first occurrence of pattern
// in r at or after the start offset, or NotFound. r is read front to back
// once; read errors other than io.EOF are returned.
func IndexReader(r io.Reader, pattern []byte, opts ...Option) (int, error) {
	c := FromReader(r)
	idx, err := FindFirst[byte](c, Slice[byte](pattern), opts...)
	if err != nil {
		return NotFound, err
	}
	if err = c.Err(); err != nil {
		return NotFound, err
	}

	return idx, nil
}
