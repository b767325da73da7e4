// internal/overlapcli/options.go
package overlapcli

import (
	"errors"
	"flag"
	"fmt"

	"fqgen/internal/version"
)

// Options holds all CLI flags for fqoverlap.
type Options struct {
	Ref1  string
	Ref2  string
	Files string
	Limit int

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		_, _ = fmt.Fprintf(out, "%s – report which samples share a reference sample's read pairs\n\n", name)
		_, _ = fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s -ref1 R1.fastq -ref2 R2.fastq -files samples.tsv > overlap.tsv\n", name)
		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "  -ref1 file        Mate-1 FASTQ of the reference sample [*]")
		_, _ = fmt.Fprintln(out, "  -ref2 file        Mate-2 FASTQ of the reference sample [*]")
		_, _ = fmt.Fprintln(out, "  -files file       TSV listing sampleID, fastq1, fastq2 [*]")
		_, _ = fmt.Fprintln(out, "  -limit int        Only consider the first N records per stream [0 = all]")
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

	fs.StringVar(&opt.Ref1, "ref1", "", "mate-1 FASTQ of the reference sample [*]")
	fs.StringVar(&opt.Ref2, "ref2", "", "mate-2 FASTQ of the reference sample [*]")
	fs.StringVar(&opt.Files, "files", "", "TSV listing sampleID, fastq1, fastq2 [*]")
	fs.IntVar(&opt.Limit, "limit", 0, "only consider the first N records per stream [0]")
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
	if opt.Ref1 == "" || opt.Ref2 == "" {
		return opt, errors.New("-ref1 and -ref2 are required")
	}
	if opt.Files == "" {
		return opt, errors.New("-files is required")
	}
	if opt.Limit < 0 {
		return opt, errors.New("-limit must be >= 0")
	}
	return opt, nil
}
