package kmp

import "iter"

// Scanner is the streaming KMP automaton: it pulls elements from a Cursor
// and reports match start indices one at a time.
//
// State:
//   - state  — number of pattern elements currently matched, in [0, m]
//   - offset — logical index of the next source element to be read
//   - skip   — elements still to discard before the start offset
//
// A Scanner is single-use and not safe for concurrent use.
type Scanner[T any] struct {
	src     Cursor[T]
	pattern Sequence[T]
	eq      func(a, b T) bool
	table   Table // extended: len m+1, nil for m <= 1
	m       int
	start   int

	state   int
	offset  int
	skip    int
	limit   int
	matched int
	done    bool
}

// NewScanner validates its arguments and prepares a Scanner over src.
// The Scanner owns src from here on: it is closed on validation failure,
// on exhaustion, when the limit is reached, or by Close.
// A nil eq falls back to value equality (cmp.Equal).
//
// Errors:
//   - ErrNilSource       — src is nil.
//   - ErrNilPattern      — pattern is nil.
//   - ErrOptionViolation — an Option was invalid (ErrNegativeStart for WithStart(-n)).
func NewScanner[T any](src Cursor[T], pattern Sequence[T], eq func(a, b T) bool, opts ...Option) (*Scanner[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if pattern == nil {
		src.Close()
		return nil, ErrNilPattern
	}
	o, err := buildOptions(opts)
	if err != nil {
		src.Close()
		return nil, err
	}
	if eq == nil {
		eq = defaultEqual[T]
	}

	s := &Scanner[T]{
		src:     src,
		pattern: pattern,
		eq:      eq,
		m:       pattern.Len(),
		start:   o.Start,
		offset:  0,
		skip:    o.Start,
		limit:   o.Limit,
	}
	switch {
	case s.m == 0:
		// an empty pattern enumerates nothing
		s.Close()
	case s.m > 1:
		s.table = buildTable(pattern, eq)
	}

	return s, nil
}

// Next advances to the next match and returns its start index.
// It returns (NotFound, false) once the source is exhausted, the limit is
// reached, or the Scanner was closed.
func (s *Scanner[T]) Next() (int, bool) {
	if s.done {
		return NotFound, false
	}
	// realise the start offset
	for s.skip > 0 {
		if _, ok := s.src.Next(); !ok {
			s.Close()
			return NotFound, false
		}
		s.skip--
		s.offset++
	}

	for {
		x, ok := s.src.Next()
		if !ok {
			s.Close()
			return NotFound, false
		}
		s.offset++
		if s.m == 1 {
			if !s.eq(x, s.pattern.At(0)) {
				continue
			}
		} else {
			s.state = s.step(x)
			if s.state < s.m {
				continue
			}
			// resume from the border of the whole pattern to keep overlaps
			s.state = s.table[s.m]
		}

		s.matched++
		if s.limit > 0 && s.matched >= s.limit {
			s.Close()
		}
		return s.offset - s.m, true
	}
}

// step returns the automaton state after consuming x.
func (s *Scanner[T]) step(x T) int {
	i := s.state
	for {
		if s.eq(x, s.pattern.At(i)) {
			return i + 1
		}
		if s.table[i] < 0 {
			return 0
		}
		i = s.table[i]
	}
}

// All returns the remaining matches as a lazy sequence. The Scanner is
// closed when the sequence ends, including an early break by the caller.
// Ranging over it a second time yields nothing.
func (s *Scanner[T]) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		defer s.Close()
		for {
			idx, ok := s.Next()
			if !ok || !yield(idx) {
				return
			}
		}
	}
}

// Matched returns the number of matches reported so far.
func (s *Scanner[T]) Matched() int { return s.matched }

// Offset returns the number of source elements consumed so far.
func (s *Scanner[T]) Offset() int { return s.offset }

// Close ends the scan and releases the source. It is idempotent.
func (s *Scanner[T]) Close() error {
	if s.src == nil {
		return nil
	}
	s.done = true
	src := s.src
	s.src = nil

	return src.Close()
}
