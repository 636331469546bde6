// Command navgraph loads graph definitions and answers path queries with
// BFS, DFS or Dijkstra.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ExitError carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Exit codes.
const (
	exitError  = 1
	exitNoPath = 2
)

func main() {
	// Minimal logger until the root command configures the real one.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitError)
	}
}

// run builds the command tree and executes it with args.
func run(outW, errW io.Writer, args []string) error {
	a := &app{out: outW, errOut: errW}
	root := newRootCmd(a)
	root.SetArgs(args)

	// Flushed here rather than in a post-run hook: cobra skips those when RunE fails.
	return errors.Join(root.Execute(), a.flushMetrics())
}
