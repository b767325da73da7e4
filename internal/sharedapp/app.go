// internal/sharedapp/app.go
package sharedapp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"fqgen/internal/cmdutil"
	"fqgen/internal/overlap"
	"fqgen/internal/sharedcli"
	"fqgen/internal/version"
	"fqgen/internal/writers"
)

// RunContext drives one fqshared invocation end to end.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := sharedcli.NewFlagSet("fqshared")
	fs.SetOutput(io.Discard)

	opts, err := sharedcli.ParseArgs(fs, argv)
	if err != nil {
		return cmdutil.UsageExit(fs, outw, stderr, err)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "fqshared version %s\n", version.Version)
		return cmdutil.Finish(outw, stderr, cmdutil.ExitOK)
	}

	logf := func(format string, a ...any) {
		if !opts.Quiet {
			_, _ = fmt.Fprintf(stderr, format+"\n", a...)
		}
	}

	list, err := overlap.LoadList(opts.Files)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return cmdutil.ExitUsage
	}
	// The reference sample's own row supplies ref1/ref2 and is excluded
	// from the scan.
	var ref *overlap.Sample
	others := make([]overlap.Sample, 0, len(list))
	for i := range list {
		if list[i].ID == opts.Sample {
			ref = &list[i]
			continue
		}
		others = append(others, list[i])
	}
	if ref == nil {
		_, _ = fmt.Fprintf(stderr, "sample %s is not listed in %s\n", opts.Sample, opts.Files)
		return cmdutil.ExitUsage
	}

	run := overlap.NewRun(opts.Sample, ref.Fastq1, ref.Fastq2, opts.Limit)

	pending := others
	if opts.Continue != "" {
		logf("continuing from %s", opts.Continue)
		pending, err = run.Resume(opts.Continue, others)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return cmdutil.ExitUsage
		}
		logf("%d sample(s) already scanned, %d pending", len(run.Done()), len(pending))
	}

	logf("loading reference %s / %s", ref.Fastq1, ref.Fastq2)
	if err := run.LoadRef(parent, cmdutil.WarnfTo(stderr, opts.Quiet)); err != nil {
		return cmdutil.ErrExit(err, stderr)
	}

	runID := uuid.New().String()
	var progress func(*overlap.Run) error
	if opts.Progress != "" {
		progress = func(r *overlap.Run) error {
			logf("writing intermediate progress to %s", opts.Progress)
			// A failed snapshot costs resumability, not correctness.
			if err := snapshot(opts.Progress, r, runID); err != nil {
				cmdutil.Warnf(stderr, opts.Quiet, "can't write progress to %s: %v", opts.Progress, err)
			}
			return nil
		}
	}
	logf("scanning %d sample(s) in %d batch(es)", len(pending), opts.Batches)
	if err := run.Scan(parent, pending, opts.Batches, progress); err != nil {
		return cmdutil.ErrExit(err, stderr)
	}

	if err := run.WriteTo(outw, runID); err != nil {
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

func snapshot(path string, r *overlap.Run, runID string) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(fh)
	if err := r.WriteTo(bw, runID); err != nil {
		_ = fh.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
