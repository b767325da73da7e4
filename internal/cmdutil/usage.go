package cmdutil

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
)

// UsageExit maps a ParseArgs error to an exit code. -h lands the usage text
// on stdout and exits 0; anything else is a usage error: message plus usage
// on stderr, exit 2.
func UsageExit(fs *flag.FlagSet, outw *bufio.Writer, stderr io.Writer, err error) int {
	if errors.Is(err, flag.ErrHelp) {
		fs.SetOutput(outw)
		fs.Usage()
		return Finish(outw, stderr, ExitOK)
	}
	_, _ = fmt.Fprintln(stderr, err)
	fs.SetOutput(stderr)
	fs.Usage()
	return ExitUsage
}
