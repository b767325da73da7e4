// internal/overlapapp/app.go
package overlapapp

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"fqgen/internal/cmdutil"
	"fqgen/internal/overlap"
	"fqgen/internal/overlapcli"
	"fqgen/internal/version"
	"fqgen/internal/writers"
)

// RunContext drives one fqoverlap invocation end to end.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := overlapcli.NewFlagSet("fqoverlap")
	fs.SetOutput(io.Discard)

	opts, err := overlapcli.ParseArgs(fs, argv)
	if err != nil {
		return cmdutil.UsageExit(fs, outw, stderr, err)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "fqoverlap version %s\n", version.Version)
		return cmdutil.Finish(outw, stderr, cmdutil.ExitOK)
	}

	logf := func(format string, a ...any) {
		if !opts.Quiet {
			_, _ = fmt.Fprintf(stderr, format+"\n", a...)
		}
	}

	samples, err := overlap.LoadList(opts.Files)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return cmdutil.ExitUsage
	}

	run := overlap.NewRun("", opts.Ref1, opts.Ref2, opts.Limit)
	logf("loading reference %s / %s", opts.Ref1, opts.Ref2)
	if err := run.LoadRef(parent, cmdutil.WarnfTo(stderr, opts.Quiet)); err != nil {
		return cmdutil.ErrExit(err, stderr)
	}
	logf("scanning %d sample(s)", len(samples))
	if err := run.Scan(parent, samples, 1, nil); err != nil {
		return cmdutil.ErrExit(err, stderr)
	}

	if err := run.WriteTo(outw, uuid.New().String()); err != nil {
		if writers.IsBrokenPipe(err) {
			return cmdutil.ExitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		return cmdutil.ExitIO
	}
	logf("found %d shared read(s)", run.SharedReads())
	return cmdutil.Finish(outw, stderr, cmdutil.ExitOK)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
