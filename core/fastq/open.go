// core/fastq/open.go
package fastq

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open opens path for reading with '-' meaning stdin. Gzip is detected by
// magic number (1F 8B) or a .gz suffix; snappy framed streams by a .sz
// suffix or the stream identifier (FF 06 00 00).
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [4]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	switch {
	case (n >= 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	case (n == 4 && sig[0] == 0xff && sig[1] == 0x06 && sig[2] == 0x00 && sig[3] == 0x00) || strings.HasSuffix(path, ".sz"):
		return &multiReadCloser{Reader: snappy.NewReader(fh), closers: []io.Closer{fh}}, nil
	}
	return fh, nil
}

// multiWriteCloser closes the wrapping codec before the file beneath it.
type multiWriteCloser struct {
	io.Writer
	closers []io.Closer
}

func (m *multiWriteCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

type bufWriteCloser struct {
	*bufio.Writer
	c io.Closer
}

func (b *bufWriteCloser) Close() error {
	err := b.Flush()
	if cerr := b.c.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// CreateBuffered is Create behind a bufio.Writer; Close flushes the buffer
// before closing the underlying codec and file.
func CreateBuffered(path string) (io.WriteCloser, error) {
	w, err := Create(path)
	if err != nil {
		return nil, err
	}
	return &bufWriteCloser{bufio.NewWriter(w), w}, nil
}

// Create opens path for writing with '-' meaning stdout. A .gz suffix
// selects gzip, a .sz suffix a framed snappy stream; Close flushes the
// codec before the file.
func Create(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(path, ".gz"):
		gw := gzip.NewWriter(fh)
		return &multiWriteCloser{Writer: gw, closers: []io.Closer{gw, fh}}, nil
	case strings.HasSuffix(path, ".sz"):
		sw := snappy.NewBufferedWriter(fh)
		return &multiWriteCloser{Writer: sw, closers: []io.Closer{sw, fh}}, nil
	}
	return fh, nil
}
