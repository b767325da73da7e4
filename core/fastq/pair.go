// core/fastq/pair.go
package fastq

import (
	"fmt"
	"io"
)

// PairReader reads two FASTQ streams in lockstep, one record from each per
// call. Mates are keyed positionally: the Nth record of mate 1 pairs with
// the Nth record of mate 2.
type PairReader struct {
	// Records is the count of complete record pairs read so far.
	Records int

	r1, r2 *Reader
	c1, c2 io.Closer
}

// OpenPair opens both mate files (gzip/snappy transparent, '-' = stdin).
func OpenPair(fn1, fn2 string) (*PairReader, error) {
	r1, c1, err := OpenReader(fn1)
	if err != nil {
		return nil, fmt.Errorf("open mate1 %s: %w", fn1, err)
	}
	r2, c2, err := OpenReader(fn2)
	if err != nil {
		_ = c1.Close()
		return nil, fmt.Errorf("open mate2 %s: %w", fn2, err)
	}
	return &PairReader{r1: r1, r2: r2, c1: c1, c2: c2}, nil
}

// Read returns the next mate pair, or io.EOF when both streams end together.
// One stream ending before the other is a truncation error naming the short
// file.
func (p *PairReader) Read() (Record, Record, error) {
	rec1, err1 := p.r1.Read()
	rec2, err2 := p.r2.Read()
	switch {
	case err1 == io.EOF && err2 == io.EOF:
		return rec1, rec2, io.EOF
	case err1 == io.EOF:
		return rec1, rec2, fmt.Errorf("%s: ends %d record(s) before %s", p.r1.name, p.r2.Records-p.r1.Records, p.r2.name)
	case err2 == io.EOF:
		return rec1, rec2, fmt.Errorf("%s: ends %d record(s) before %s", p.r2.name, p.r1.Records-p.r2.Records, p.r1.name)
	case err1 != nil:
		return rec1, rec2, err1
	case err2 != nil:
		return rec1, rec2, err2
	}
	p.Records++
	return rec1, rec2, nil
}

func (p *PairReader) Close() error {
	err := p.c1.Close()
	if cerr := p.c2.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
