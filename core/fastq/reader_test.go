package fastq

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestReaderRoundTrip(t *testing.T) {
	recs := []Record{
		{Name: "alpha", Seq: []byte("ACGT"), Qual: []byte("EEEE")},
		{Name: "beta", Seq: []byte("TT"), Qual: []byte("EE")},
	}
	var buf bytes.Buffer
	for _, r := range recs {
		if err := Write(&buf, r); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	r := NewReader(&buf, "mem")
	for i, want := range recs {
		got, err := r.Read()
		if err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if got.Name != want.Name || string(got.Seq) != string(want.Seq) || string(got.Qual) != string(want.Qual) {
			t.Errorf("record %d: got %+v want %+v", i, got, want)
		}
	}
	if _, err := r.Read(); err != io.EOF {
		t.Fatalf("want EOF, got %v", err)
	}
	if r.Records != 2 {
		t.Fatalf("want 2 records counted, got %d", r.Records)
	}
}

func TestReaderCRLF(t *testing.T) {
	r := NewReader(strings.NewReader("@x\r\nAC\r\n+\r\nEE\r\n"), "crlf")
	rec, err := r.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if rec.Name != "x" || string(rec.Seq) != "AC" || string(rec.Qual) != "EE" {
		t.Fatalf("bad CRLF parse: %+v", rec)
	}
}

func TestReaderBadNameLine(t *testing.T) {
	r := NewReader(strings.NewReader("x\nAC\n+\nEE\n"), "bad.fq")
	_, err := r.Read()
	if err == nil || !strings.Contains(err.Error(), "bad.fq:1") {
		t.Fatalf("want name-line error with bad.fq:1, got %v", err)
	}
}

func TestReaderBadSeparator(t *testing.T) {
	r := NewReader(strings.NewReader("@x\nAC\nEE\nEE\n"), "bad.fq")
	_, err := r.Read()
	if err == nil || !strings.Contains(err.Error(), "bad.fq:3") {
		t.Fatalf("want separator error with bad.fq:3, got %v", err)
	}
}

func TestReaderTruncated(t *testing.T) {
	r := NewReader(strings.NewReader("@x\nAC\n"), "short.fq")
	_, err := r.Read()
	if err == nil || !strings.Contains(err.Error(), "truncated") {
		t.Fatalf("want truncation error, got %v", err)
	}
}
