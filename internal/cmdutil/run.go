package cmdutil

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"fqgen/internal/writers"
)

// Exit codes shared by every tool in the suite.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitIO       = 3
	ExitCanceled = 130
)

// Finish flushes the buffered stdout writer and folds flush errors into the
// exit code. A broken pipe (downstream `head` closing early) is success.
func Finish(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitIO
	}
	return code
}

// ErrExit maps a runtime error to an exit code. Cancellation means the user
// interrupted us; that is not an I/O failure.
func ErrExit(err error, stderr io.Writer) int {
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	_, _ = fmt.Fprintln(stderr, err)
	return ExitIO
}

// WarnfTo binds Warnf to a destination and quiet setting.
func WarnfTo(stderr io.Writer, quiet bool) func(string, ...any) {
	return func(format string, a ...any) {
		Warnf(stderr, quiet, format, a...)
	}
}
