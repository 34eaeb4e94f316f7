package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
)

// searchFlags holds the command-line configuration of a run.
type searchFlags struct {
	start      int
	limit      int
	first      bool
	count      bool
	ignoreCase bool
	lines      bool
	verbose    bool
}

// NewRootCmd builds the kmpgrep command with fresh flag state.
func NewRootCmd() *cobra.Command {
	f := &searchFlags{}
	root := &cobra.Command{
		Use:   "kmpgrep [flags] <pattern> [file ...]",
		Short: "Streaming fixed-pattern search (Knuth–Morris–Pratt)",
		Long: "Reports the offset of every, possibly overlapping, occurrence of a fixed pattern.\n" +
			"Inputs are read once, front to back; stdin is used when no file (or \"-\") is given.\n" +
			"With --lines the pattern is a newline-separated run of whole lines and offsets are line numbers.",
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, f, args)
		},
	}

	fl := root.Flags()
	fl.IntVarP(&f.start, "start", "s", 0, "Ignore matches starting before this offset")
	fl.IntVarP(&f.limit, "max-count", "m", 0, "Stop after N matches per input (0 = unlimited)")
	fl.BoolVar(&f.first, "first", false, "Report only the first match per input")
	fl.BoolVarP(&f.count, "count", "c", false, "Print match counts instead of offsets")
	fl.BoolVarP(&f.ignoreCase, "ignore-case", "i", false, "Case-insensitive comparison")
	fl.BoolVarP(&f.lines, "lines", "x", false, "Match whole lines instead of bytes")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "Debug logging on stderr")

	return root
}

// Execute runs the root command under ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// newLogger returns the structured stderr logger of a run.
func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
