package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/seqmatch/kmp"
	"github.com/spf13/cobra"
)

// runSearch searches every input for args[0] and reports grep-style status.
// An input that fails is logged and skipped; the run then ends with exit
// status 2 after the remaining inputs were searched.
func runSearch(cmd *cobra.Command, f *searchFlags, args []string) error {
	log := newLogger(cmd, f.verbose)

	inputs := args[1:]
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	opts := []kmp.Option{kmp.WithStart(f.start), kmp.WithLimit(f.limit)}
	if f.first {
		opts = append(opts, kmp.WithLimit(1))
	}
	logPattern(log, f, args[0])

	total := 0
	var failed []error
	for _, name := range inputs {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		n, err := searchInput(cmd, f, log, name, args[0], opts, len(inputs) > 1)
		if err != nil {
			log.Error("search failed", "input", name, "err", err)
			failed = append(failed, fmt.Errorf("%s: %w", name, err))
			continue
		}
		total += n
	}
	if len(failed) > 0 {
		return failedInputs(failed)
	}
	if total == 0 {
		return errNoMatch
	}
	return nil
}

// searchInput scans one input and prints its offsets or count.
func searchInput(cmd *cobra.Command, f *searchFlags, log *slog.Logger, name, pattern string, opts []kmp.Option, multi bool) (int, error) {
	rc, err := openInput(cmd, name)
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	w := cmd.OutOrStdout()
	prefix := ""
	if multi {
		prefix = name + ":"
	}
	emit := func(idx int) {
		if !f.count {
			fmt.Fprintf(w, "%s%d\n", prefix, idx)
		}
	}

	var n int
	if f.lines {
		c := kmp.FromLines(rc)
		n, err = scan[string](c, linePattern(pattern), lineEqual(f.ignoreCase), opts, emit)
		if err == nil {
			err = c.Err()
		}
	} else {
		c := kmp.FromReader(rc)
		n, err = scan[byte](c, kmp.String(pattern), byteEqual(f.ignoreCase), opts, emit)
		if err == nil {
			err = c.Err()
		}
	}
	if err != nil {
		return 0, err
	}

	if f.count {
		fmt.Fprintf(w, "%s%d\n", prefix, n)
	}
	log.Debug("input searched", "input", name, "matches", n)

	return n, nil
}

// scan drains a Scanner over c, calling emit for every match.
func scan[T any](c kmp.Cursor[T], pattern kmp.Sequence[T], eq func(a, b T) bool, opts []kmp.Option, emit func(int)) (int, error) {
	s, err := kmp.NewScanner(c, pattern, eq, opts...)
	if err != nil {
		return 0, err
	}
	n := 0
	for idx := range s.All() {
		emit(idx)
		n++
	}
	return n, nil
}

// openInput opens a named file, or stdin for "-".
func openInput(cmd *cobra.Command, name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(name)
}

// linePattern splits a --lines pattern; one trailing newline is ignored.
func linePattern(pattern string) kmp.Slice[string] {
	pattern = strings.TrimSuffix(pattern, "\n")
	if pattern == "" {
		return kmp.Slice[string]{}
	}
	return kmp.Slice[string](strings.Split(pattern, "\n"))
}

// lineEqual returns the line relation for the case mode.
func lineEqual(fold bool) func(a, b string) bool {
	if fold {
		return strings.EqualFold
	}
	return func(a, b string) bool { return a == b }
}

// byteEqual returns the byte relation for the case mode; folding is ASCII only.
func byteEqual(fold bool) func(a, b byte) bool {
	if fold {
		return func(a, b byte) bool { return lowerASCII(a) == lowerASCII(b) }
	}
	return func(a, b byte) bool { return a == b }
}

func lowerASCII(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

// logPattern logs the pattern and its failure table at debug level.
func logPattern(log *slog.Logger, f *searchFlags, pattern string) {
	if !f.verbose {
		return
	}
	var (
		table kmp.Table
		err   error
	)
	if f.lines {
		table, err = kmp.BuildTableFunc[string](linePattern(pattern), lineEqual(f.ignoreCase))
	} else {
		table, err = kmp.BuildTableFunc[byte](kmp.String(pattern), byteEqual(f.ignoreCase))
	}
	if err != nil {
		log.Warn("building failure table", "err", err)
		return
	}
	log.Debug("pattern compiled", "len", len(table), "table", fmt.Sprint(table), "lines", f.lines, "ignore_case", f.ignoreCase)
}
