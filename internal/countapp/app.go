// internal/countapp/app.go
package countapp

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"fqgen-core/fastq"
	"fqgen/internal/cmdutil"
	"fqgen/internal/countcli"
	"fqgen/internal/version"
	"fqgen/internal/writers"
	"fqgen/pkg/api"
)

// RunContext drives one fqcount invocation end to end.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := countcli.NewFlagSet("fqcount")
	fs.SetOutput(io.Discard)

	opts, err := countcli.ParseArgs(fs, argv)
	if err != nil {
		return cmdutil.UsageExit(fs, outw, stderr, err)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "fqcount version %s\n", version.Version)
		return cmdutil.Finish(outw, stderr, cmdutil.ExitOK)
	}

	rows := make([]api.CountV1, 0, len(opts.Files)+1)
	var total fastq.Stats
	for _, f := range opts.Files {
		if err := parent.Err(); err != nil {
			return cmdutil.ExitCanceled
		}
		st, err := fastq.Count(f)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return cmdutil.ExitIO
		}
		rows = append(rows, toAPI(f, st))
		total.Add(st)
	}

	switch opts.Output {
	case "json":
		err = writers.WriteCountJSON(outw, rows)
	case "jsonl":
		in, werr := writers.StartCountJSONLWriter(outw, len(rows))
		for _, r := range rows {
			in <- r
		}
		close(in)
		err = <-werr
	default:
		if len(rows) > 1 {
			rows = append(rows, toAPI("total", total))
		}
		err = writers.WriteCountText(outw, rows, true)
	}
	if writers.IsBrokenPipe(err) {
		return cmdutil.ExitOK
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return cmdutil.ExitIO
	}
	return cmdutil.Finish(outw, stderr, cmdutil.ExitOK)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func toAPI(file string, st fastq.Stats) api.CountV1 {
	return api.CountV1{
		File:    file,
		Records: st.Records,
		Bases:   st.Bases,
		MinLen:  st.MinLen,
		MaxLen:  st.MaxLen,
		MeanLen: st.MeanLen(),
	}
}
