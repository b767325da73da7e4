// core/fastq/reader.go
package fastq

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Reader scans four-line FASTQ records from a stream. It validates the '@'
// prefix on the name line and the '+' prefix on the separator line, and
// reports errors with a name:line prefix.
type Reader struct {
	// Records is the count of complete records read so far.
	Records int

	name string
	sc   *bufio.Scanner
	line int
}

// NewReader wraps r; name labels the stream in error messages.
func NewReader(r io.Reader, name string) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &Reader{name: name, sc: sc}
}

// OpenReader opens path via Open and wraps it in a Reader.
func OpenReader(path string) (*Reader, io.Closer, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, nil, err
	}
	return NewReader(rc, path), rc, nil
}

func (r *Reader) scanLine() (string, bool, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", false, fmt.Errorf("%s:%d: %w", r.name, r.line+1, err)
		}
		return "", false, nil
	}
	r.line++
	// Tolerate CR-LF input.
	return strings.TrimSuffix(r.sc.Text(), "\r"), true, nil
}

// Read returns the next record, or io.EOF at a clean end of stream. EOF in
// the middle of a record is reported as a truncation error.
func (r *Reader) Read() (Record, error) {
	var rec Record
	for i := 0; i < 4; i++ {
		line, ok, err := r.scanLine()
		if err != nil {
			return rec, err
		}
		if !ok {
			if i == 0 {
				return rec, io.EOF
			}
			return rec, fmt.Errorf("%s: truncated record at line %d", r.name, r.line)
		}
		switch i {
		case 0:
			if !strings.HasPrefix(line, "@") {
				return rec, fmt.Errorf("%s:%d: expected '@' on name line", r.name, r.line)
			}
			rec.Name = line[1:]
		case 1:
			rec.Seq = []byte(line)
		case 2:
			if !strings.HasPrefix(line, "+") {
				return rec, fmt.Errorf("%s:%d: expected '+' on separator line", r.name, r.line)
			}
		case 3:
			rec.Qual = []byte(line)
		}
	}
	r.Records++
	return rec, nil
}
