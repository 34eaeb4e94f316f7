package kmp

import (
	"bufio"
	"errors"
	"io"
	"iter"
)

// Cursor is a forward-only, single-use traversal of a source sequence.
//
// Next returns the next element and true, or the zero value and false once
// the source is exhausted or closed. There is no rewind: each element is
// delivered at most once. Close releases the underlying resource; it is
// safe to call more than once, and Next after Close reports exhaustion.
type Cursor[T any] interface {
	Next() (T, bool)
	Close() error
}

// SliceCursor walks a slice front to back.
type SliceCursor[T any] struct {
	s []T
	i int
}

// FromSlice wraps a random-access slice as a Cursor.
func FromSlice[T any](s []T) *SliceCursor[T] {
	return &SliceCursor[T]{s: s}
}

// Next returns the next slice element.
func (c *SliceCursor[T]) Next() (T, bool) {
	if c.i >= len(c.s) {
		var zero T
		return zero, false
	}
	v := c.s[c.i]
	c.i++

	return v, true
}

// Close drops the reference to the slice.
func (c *SliceCursor[T]) Close() error {
	c.s = nil
	c.i = 0

	return nil
}

// SeqCursor pulls elements from an iter.Seq one at a time.
type SeqCursor[T any] struct {
	next func() (T, bool)
	stop func()
}

// FromSeq wraps a lazy producer as a Cursor. The producer runs on demand
// through iter.Pull; Close stops it, running any cleanup it deferred.
// A nil seq yields an already exhausted cursor.
func FromSeq[T any](seq iter.Seq[T]) *SeqCursor[T] {
	if seq == nil {
		seq = func(func(T) bool) {}
	}
	next, stop := iter.Pull(seq)

	return &SeqCursor[T]{next: next, stop: stop}
}

// Next pulls the next element from the producer.
func (c *SeqCursor[T]) Next() (T, bool) {
	return c.next()
}

// Close stops the producer.
func (c *SeqCursor[T]) Close() error {
	c.stop()

	return nil
}

// ReaderCursor delivers the bytes of an io.Reader.
// The reader itself is not closed; its owner remains responsible for it.
type ReaderCursor struct {
	r    *bufio.Reader
	err  error
	done bool
}

// FromReader wraps r as a byte Cursor.
func FromReader(r io.Reader) *ReaderCursor {
	return &ReaderCursor{r: bufio.NewReader(r)}
}

// Next returns the next byte. A read error ends the traversal and is kept
// for Err.
func (c *ReaderCursor) Next() (byte, bool) {
	if c.done {
		return 0, false
	}
	b, err := c.r.ReadByte()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			c.err = err
		}
		c.done = true
		return 0, false
	}

	return b, true
}

// Err returns the first non-EOF error encountered while reading.
func (c *ReaderCursor) Err() error { return c.err }

// Close releases the read buffer.
func (c *ReaderCursor) Close() error {
	c.done = true
	c.r = nil

	return nil
}

// maxLineSize bounds a single line read by LineCursor.
const maxLineSize = 1 << 20

// LineCursor delivers the lines of an io.Reader without their terminators.
// The reader itself is not closed.
type LineCursor struct {
	sc   *bufio.Scanner
	done bool
}

// FromLines wraps r as a Cursor over its lines.
func FromLines(r io.Reader) *LineCursor {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	return &LineCursor{sc: sc}
}

// Next returns the next line.
func (c *LineCursor) Next() (string, bool) {
	if c.done {
		return "", false
	}
	if !c.sc.Scan() {
		c.done = true
		return "", false
	}

	return c.sc.Text(), true
}

// Err returns the first non-EOF error encountered while scanning.
func (c *LineCursor) Err() error { return c.sc.Err() }

// Close stops further scanning.
func (c *LineCursor) Close() error {
	c.done = true

	return nil
}
