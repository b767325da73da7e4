// internal/countcli/options.go
package countcli

import (
	"flag"
	"fmt"

	"fqgen/internal/cliutil"
	"fqgen/internal/version"
)

// Options holds all CLI flags and arguments for fqcount.
type Options struct {
	Files  []string // positional; '-' = stdin
	Output string   // text | json | jsonl

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
		_, _ = fmt.Fprintf(out, "%s – count records and bases in FASTQ files\n\n", name)
		_, _ = fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] reads.fastq [more.fastq.gz ...]\n", name)
		_, _ = fmt.Fprintf(out, "  cat reads.fastq | %s\n", name)
		_, _ = fmt.Fprintln(out, "\nOutput:")
		_, _ = fmt.Fprintf(out, "  -output string    Output format: text | json | jsonl [%s]\n", def("output"))
		_, _ = fmt.Fprintln(out, "\nMisc:")
		_, _ = fmt.Fprintln(out, "  -quiet            Suppress notes on stderr")
		_, _ = fmt.Fprintln(out, "  -version          Print version and exit")
	}
	return fs
}

// ParseArgs registers and parses all flags, expands positional globs, and
// returns an Options struct. No positionals means stdin.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | jsonl [text]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress notes [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	files, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	if len(files) == 0 {
		files = []string{"-"}
	}
	opt.Files = files

	switch opt.Output {
	case "text", "json", "jsonl":
	default:
		return opt, fmt.Errorf("invalid -output %q", opt.Output)
	}
	return opt, nil
}
