// internal/sharedcli/options.go
package sharedcli

import (
	"errors"
	"flag"
	"fmt"

	"fqgen/internal/version"
)

// Options holds all CLI flags for fqshared.
type Options struct {
	Sample   string
	Files    string
	Limit    int
	Batches  int
	Progress string
	Continue string

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
		_, _ = fmt.Fprintf(out, "%s – batched, resumable shared-read scan keyed by sample ID\n\n", name)
		_, _ = fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s -sample S1 -files samples.tsv > shared.tsv\n", name)
		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "  -sample id        Reference sample ID; its row in -files supplies the refs [*]")
		_, _ = fmt.Fprintln(out, "  -files file       TSV listing sampleID, fastq1, fastq2 [*]")
		_, _ = fmt.Fprintln(out, "  -limit int        Only consider the first N records per stream [0 = all]")
		_, _ = fmt.Fprintln(out, "\nBatching:")
		_, _ = fmt.Fprintf(out, "  -batches int      Scan samples in N waves to respect open-file limits [%s]\n", def("batches"))
		_, _ = fmt.Fprintln(out, "  -progress file    Snapshot results to this file after each non-final wave")
		_, _ = fmt.Fprintln(out, "  -continue file    Resume from a previous run's output")
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

	fs.StringVar(&opt.Sample, "sample", "", "reference sample ID [*]")
	fs.StringVar(&opt.Files, "files", "", "TSV listing sampleID, fastq1, fastq2 [*]")
	fs.IntVar(&opt.Limit, "limit", 0, "only consider the first N records per stream [0]")
	fs.IntVar(&opt.Batches, "batches", 1, "scan samples in N waves [1]")
	fs.StringVar(&opt.Progress, "progress", "", "snapshot file written after each non-final wave")
	fs.StringVar(&opt.Continue, "continue", "", "previous run output to resume from")
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
	if opt.Sample == "" {
		return opt, errors.New("-sample is required")
	}
	if opt.Files == "" {
		return opt, errors.New("-files is required")
	}
	if opt.Limit < 0 {
		return opt, errors.New("-limit must be >= 0")
	}
	if opt.Batches < 1 {
		return opt, errors.New("-batches must be >= 1")
	}
	return opt, nil
}
