// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"fqgen/internal/version"
)

// Options holds all CLI flags for fqgen.
type Options struct {
	Reads  int
	Length int
	Seed   uint64

	Paired bool
	Out    string
	Out2   string

	Manifest string
	Sheet    string

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}
		_, _ = fmt.Fprintf(out, "%s – synthetic FASTQ read generator\n\n", name)
		_, _ = fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s -reads N [-len L] > reads.fastq\n", name)
		_, _ = fmt.Fprintf(out, "  %s -sheet cohort.yaml\n", name)
		_, _ = fmt.Fprintln(out, "\nGeneration:")
		_, _ = fmt.Fprintln(out, "  -reads int        Number of reads to generate [*]")
		_, _ = fmt.Fprintf(out, "  -len int          Read length [%s]\n", def("len"))
		_, _ = fmt.Fprintf(out, "  -seed uint        RNG seed; 0 = fresh entropy per run [%s]\n", def("seed"))
		_, _ = fmt.Fprintln(out, "\nOutput:")
		_, _ = fmt.Fprintln(out, "  -out file         Mate-1 output ('-' = stdout; .gz/.sz compress)")
		_, _ = fmt.Fprintln(out, "  -out2 file        Mate-2 output (paired mode)")
		_, _ = fmt.Fprintln(out, "  -paired           Generate paired-end reads (needs -out and -out2)")
		_, _ = fmt.Fprintln(out, "  -manifest file    Write a JSON provenance record")
		_, _ = fmt.Fprintln(out, "\nBatch:")
		_, _ = fmt.Fprintln(out, "  -sheet file       Generate a cohort from a YAML sample sheet")
		_, _ = fmt.Fprintln(out, "\nMisc:")
		_, _ = fmt.Fprintln(out, "  -quiet            Suppress progress notes on stderr")
		_, _ = fmt.Fprintln(out, "  -version          Print version and exit")
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.IntVar(&opt.Reads, "reads", 0, "number of reads to generate [*]")
	fs.IntVar(&opt.Length, "len", 75, "read length [75]")
	fs.Uint64Var(&opt.Seed, "seed", 0, "RNG seed; 0 = fresh entropy per run [0]")

	fs.BoolVar(&opt.Paired, "paired", false, "generate paired-end reads [false]")
	fs.StringVar(&opt.Out, "out", "", "mate-1 output ('' or '-' = stdout)")
	fs.StringVar(&opt.Out2, "out2", "", "mate-2 output (paired mode)")
	fs.StringVar(&opt.Manifest, "manifest", "", "write a JSON provenance record to this file")
	fs.StringVar(&opt.Sheet, "sheet", "", "YAML sample sheet for cohort generation")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress notes [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	seen := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { seen[f.Name] = true })

	// Sheet runs take all per-sample parameters from the sheet itself.
	if opt.Sheet != "" {
		for _, conflicting := range []string{"reads", "len", "seed", "paired", "out", "out2"} {
			if seen[conflicting] {
				return opt, fmt.Errorf("-sheet conflicts with -%s", conflicting)
			}
		}
		return opt, nil
	}

	// -reads is required, but its value is deliberately unvalidated:
	// negative counts generate nothing, matching plain loop semantics.
	if !seen["reads"] {
		return opt, errors.New("-reads is required")
	}
	if opt.Paired {
		if opt.Out == "" || opt.Out2 == "" {
			return opt, errors.New("-paired needs -out and -out2")
		}
	} else if opt.Out2 != "" {
		return opt, errors.New("-out2 only applies with -paired")
	}
	return opt, nil
}
