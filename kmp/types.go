// Package kmp defines patterns, options and the failure table type.
package kmp

import "fmt"

// NotFound is the index reported when the pattern does not occur.
const NotFound = -1

// Sequence is a finite, random-access pattern. The matcher only asks for
// its length and for the element at a position; it never copies or
// mutates it, so the pattern must stay unchanged during a search.
type Sequence[T any] interface {
	Len() int
	At(i int) T
}

// Slice adapts a slice to Sequence.
type Slice[T any] []T

// Len returns the number of elements.
func (s Slice[T]) Len() int { return len(s) }

// At returns the i-th element.
func (s Slice[T]) At(i int) T { return s[i] }

// String adapts a Go string to a Sequence of bytes.
type String string

// Len returns the number of bytes.
func (s String) Len() int { return len(s) }

// At returns the i-th byte.
func (s String) At(i int) byte { return s[i] }

// Table is the KMP failure table of a pattern.
//
// Invariants:
//   - len(t) == pattern length
//   - t[0] == -1 (for a non-empty pattern)
//   - -1 <= t[i] < i
//
// t[i] is the length of the longest proper border of pattern[0:i], i.e. the
// pattern position to resume comparing from after a mismatch at position i.
type Table []int

// Valid reports whether t satisfies the structural table invariants.
func (t Table) Valid() bool {
	for i, k := range t {
		if i == 0 && k != -1 {
			return false
		}
		if k < -1 || k >= i {
			return false
		}
	}

	return true
}

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when the search is started.
type Option func(*Options)

// Options holds the tunables of a search.
type Options struct {
	// Start is the logical source offset to begin matching at.
	// Elements before it are skipped, never compared.
	Start int

	// Limit, if > 0, stops the search after this many matches.
	// A value of 0 explicitly disables the limit.
	Limit int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - start at offset 0
//   - no match limit
func DefaultOptions() Options {
	return Options{
		Start: 0,
		Limit: 0,
		err:   nil,
	}
}

// WithStart begins matching at logical offset n of the source.
// Reported indices stay relative to the source start, not to n.
//
//	n >= 0: skip the first n elements
//	n < 0:  invalid option → ErrNegativeStart (wrapping ErrOptionViolation)
func WithStart(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: %w (%d)", ErrOptionViolation, ErrNegativeStart, n)
			return
		}
		o.Start = n
	}
}

// WithLimit stops the search after n matches.
//
//	n > 0:  at most n matches
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithLimit(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Limit cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "no limit"
			o.Limit = 0
		default:
			o.Limit = n
		}
	}
}

// buildOptions applies opts over the defaults and returns the first violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
		if o.err != nil {
			return o, o.err
		}
	}

	return o, nil
}
