// Package kmp finds occurrences of a pattern inside a sequence of arbitrary
// elements using the Knuth–Morris–Pratt algorithm.
//
// 🚀 What is KMP?
//
//	KMP preprocesses the pattern into a failure table: for every prefix it
//	records the longest proper border (a prefix that is also a suffix).
//	On a mismatch the matcher falls back along that table instead of
//	re-reading the source, so every source element is read exactly once.
//	That makes it a natural fit for:
//	  • streams that cannot be rewound (io.Reader, iter.Seq producers)
//	  • small alphabets with tight repetition (DNA bases, protocol bytes)
//	  • element types with custom equality (case folding, tolerances)
//
// ✨ Key features:
//   - generic over any element type T
//   - comparable T uses ==, the …Func variants take any equivalence relation
//   - forward-only Cursor sources: slices, iter.Seq, io.Reader bytes or lines
//   - lazy results via iter.Seq[int] or an explicit pull Scanner
//   - overlapping matches ("aa" in "aaa" → 0, 1)
//   - eager validation: bad arguments fail before anything is read
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqmatch/kmp"
//
//	matches, err := kmp.FindAll(kmp.FromSlice(text), kmp.Slice[byte](needle),
//	  kmp.WithStart(10), // ignore matches starting before offset 10
//	  kmp.WithLimit(3),  // stop after three matches
//	)
//	if err != nil {
//	  // ErrNilSource, ErrNilPattern, ErrNegativeStart, ErrOptionViolation
//	}
//	for idx := range matches {
//	  fmt.Println(idx)
//	}
//
// Ownership:
//
//	Every search takes ownership of its Cursor and closes it on every exit
//	path: validation failure, exhaustion, first match, limit reached, or an
//	early break out of the range loop.
//
// Performance:
//
//   - Table:  O(m) time & memory
//   - Search: O(n) time, O(m) memory, each source element read once
//
// See example_test.go for runnable examples.
package kmp
