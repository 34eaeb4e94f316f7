// Package seqmatch is your in-memory toolkit for finding fixed patterns in
// sequences of any element type — bytes, runes, lines, tokens, structs —
// including streams that can only be read once.
//
// 🚀 What is seqmatch?
//
//	A small, dependency-light library built around one algorithm done well:
//		• Knuth–Morris–Pratt failure tables for any element type
//		• Streaming matcher over forward-only cursors (slices, iter.Seq, io.Reader)
//		• Lazy results via iter.Seq[int] or an explicit pull Scanner
//		• Caller-supplied equivalence relations (case folding, quantising, Equal methods)
//
// ✨ Why choose seqmatch?
//
//   - Single pass – every source element is read once, never rewound
//   - Overlap aware – "aa" in "aaa" reports 0 and 1
//   - Fail fast – invalid arguments are rejected before anything is read
//   - Deterministic cleanup – cursors are closed on every exit path
//
// Layout:
//
//	kmp/          — failure table, streaming matcher, cursors, options
//	cmd/kmpgrep/  — grep-like CLI over files and stdin (bytes or whole lines)
//	examples/     — runnable scenarios (DNA motifs, frame sync, sensor shapes)
//
// Quick example:
//
//	hits, _ := kmp.FindAll(kmp.FromSlice([]byte("aaa")), kmp.String("aa"))
//	for i := range hits {
//		fmt.Println(i) // 0, 1
//	}
//
//	go get github.com/katalvlaran/seqmatch/kmp
package seqmatch
