package kmp_test

import (
	"math/rand"
	"testing"
)

// strictCursor is an instrumented Cursor over a slice. It fails the test on
// re-entrant Next calls or on any use after Close, and counts reads so
// tests can assert the source was traversed at most once.
type strictCursor[T any] struct {
	t      *testing.T
	s      []T
	i      int
	inNext bool
	closed bool
	closes int
	reads  int
}

func newStrictCursor[T any](t *testing.T, s []T) *strictCursor[T] {
	t.Helper()
	return &strictCursor[T]{t: t, s: s}
}

func (c *strictCursor[T]) Next() (T, bool) {
	var zero T
	if c.closed {
		c.t.Errorf("Next called after Close (read %d of %d)", c.i, len(c.s))
		return zero, false
	}
	if c.inNext {
		c.t.Errorf("re-entrant Next call")
		return zero, false
	}
	c.inNext = true
	defer func() { c.inNext = false }()

	if c.i >= len(c.s) {
		return zero, false
	}
	v := c.s[c.i]
	c.i++
	c.reads++

	return v, true
}

func (c *strictCursor[T]) Close() error {
	c.closed = true
	c.closes++
	return nil
}

// point has only unexported fields; sample adds a non-comparable one.
type point struct{ x, y int }

type sample struct {
	at   point
	tags []string
}

// bruteForce returns every start index >= start where p occurs in s.
func bruteForce[T comparable](s, p []T, start int) []int {
	var out []int
	if len(p) == 0 {
		return out
	}
	for i := start; i+len(p) <= len(s); i++ {
		ok := true
		for j := range p {
			if s[i+j] != p[j] {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// bruteBorder returns the length of the longest proper border of p.
func bruteBorder[T comparable](p []T) int {
	for k := len(p) - 1; k > 0; k-- {
		ok := true
		for j := 0; j < k; j++ {
			if p[j] != p[len(p)-k+j] {
				ok = false
				break
			}
		}
		if ok {
			return k
		}
	}
	return 0
}

// randomBytes draws n bytes from alphabet.
func randomBytes(r *rand.Rand, n int, alphabet string) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return b
}
