// kmpgrep searches files or stdin for a fixed byte or line pattern using
// the streaming Knuth–Morris–Pratt matcher. Every input is read once.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/seqmatch/cmd/kmpgrep/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cmd.Execute(ctx)
	if err == nil {
		return
	}
	if code := cmd.ExitCode(err); code >= 0 {
		stop()
		os.Exit(code)
	}
	fmt.Fprintf(os.Stderr, "kmpgrep: %v\n", err)
	stop()
	os.Exit(2)
}
