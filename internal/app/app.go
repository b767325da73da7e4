// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"fqgen-core/fastq"
	"fqgen-core/gen"
	"fqgen/internal/cli"
	"fqgen/internal/cmdutil"
	"fqgen/internal/jsonutil"
	"fqgen/internal/sheet"
	"fqgen/internal/version"
	"fqgen/internal/writers"
	"fqgen/pkg/api"
)

// RunContext drives one fqgen invocation end to end.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("fqgen")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		return cmdutil.UsageExit(fs, outw, stderr, err)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "fqgen version %s\n", version.Version)
		return cmdutil.Finish(outw, stderr, cmdutil.ExitOK)
	}

	if opts.Sheet != "" {
		return runSheet(parent, opts, stderr)
	}
	return runSingle(parent, opts, outw, stderr)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func runSingle(ctx context.Context, opts cli.Options, outw *bufio.Writer, stderr io.Writer) int {
	cfg := gen.Config{Reads: opts.Reads, Length: opts.Length, Seed: opts.Seed}
	g := gen.New(cfg)

	var files []api.ManifestFileV1
	var err error
	if opts.Paired {
		err = writePaired(ctx, g, opts.Out, opts.Out2)
		files = []api.ManifestFileV1{{Mate: 1, Path: opts.Out}, {Mate: 2, Path: opts.Out2}}
	} else if opts.Out != "" && opts.Out != "-" {
		err = writeSingle(ctx, g, opts.Out)
		files = []api.ManifestFileV1{{Path: opts.Out}}
	} else {
		err = g.WriteContext(ctx, outw)
	}
	if code := genExit(err, outw, stderr); code != cmdutil.ExitOK {
		return code
	}
	if opts.Manifest != "" {
		m := manifest("fqgen", cfg, opts.Paired, files)
		if err := writeManifest(opts.Manifest, m); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return cmdutil.ExitIO
		}
	}
	return cmdutil.Finish(outw, stderr, cmdutil.ExitOK)
}

func runSheet(ctx context.Context, opts cli.Options, stderr io.Writer) int {
	sh, err := sheet.Load(opts.Sheet)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return cmdutil.ExitUsage
	}
	logf := func(format string, a ...any) {
		if !opts.Quiet {
			_, _ = fmt.Fprintf(stderr, format+"\n", a...)
		}
	}
	samples, err := sheet.Generate(ctx, sh, logf)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return cmdutil.ExitCanceled
		}
		_, _ = fmt.Fprintln(stderr, err)
		return cmdutil.ExitIO
	}
	if opts.Manifest != "" {
		var files []api.ManifestFileV1
		for _, s := range samples {
			for i, p := range s.Files {
				f := api.ManifestFileV1{Sample: s.ID, Path: p}
				if sh.Paired {
					f.Mate = i + 1
				}
				files = append(files, f)
			}
		}
		m := manifest("fqgen", gen.Config{}, sh.Paired, files)
		if err := writeManifest(opts.Manifest, m); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return cmdutil.ExitIO
		}
	}
	return cmdutil.ExitOK
}

func genExit(err error, outw *bufio.Writer, stderr io.Writer) int {
	switch {
	case err == nil:
		return cmdutil.ExitOK
	case errors.Is(err, context.Canceled):
		return cmdutil.ExitCanceled
	case writers.IsBrokenPipe(err):
		return cmdutil.ExitOK
	default:
		_ = outw.Flush()
		_, _ = fmt.Fprintln(stderr, err)
		return cmdutil.ExitIO
	}
}

func writeSingle(ctx context.Context, g *gen.Generator, path string) error {
	w, err := fastq.CreateBuffered(path)
	if err != nil {
		return err
	}
	if err := g.WriteContext(ctx, w); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func writePaired(ctx context.Context, g *gen.Generator, p1, p2 string) error {
	w1, err := fastq.CreateBuffered(p1)
	if err != nil {
		return err
	}
	w2, err := fastq.CreateBuffered(p2)
	if err != nil {
		_ = w1.Close()
		return err
	}
	err = g.WritePairContext(ctx, w1, w2)
	if cerr := w1.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if cerr := w2.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func manifest(tool string, cfg gen.Config, paired bool, files []api.ManifestFileV1) api.ManifestV1 {
	return api.ManifestV1{
		Schema:    api.SchemaManifestV1,
		RunID:     uuid.New().String(),
		Tool:      tool,
		Version:   version.Version,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Reads:     cfg.Reads,
		Length:    cfg.Length,
		Seed:      cfg.Seed,
		Paired:    paired,
		Files:     files,
	}
}

func writeManifest(path string, m api.ManifestV1) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := jsonutil.EncodePretty(fh, m); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
