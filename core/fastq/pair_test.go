package fastq

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestPairReader(t *testing.T) {
	dir := t.TempDir()
	fn1 := writeFile(t, dir, "r1.fastq", "@a\nAC\n+\nEE\n@b\nGG\n+\nEE\n")
	fn2 := writeFile(t, dir, "r2.fastq", "@a\nTT\n+\nEE\n@b\nCA\n+\nEE\n")

	p, err := OpenPair(fn1, fn2)
	if err != nil {
		t.Fatalf("open pair: %v", err)
	}
	defer func() { _ = p.Close() }()

	r1, r2, err := p.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if r1.Name != "a" || r2.Name != "a" || string(r1.Seq) != "AC" || string(r2.Seq) != "TT" {
		t.Fatalf("bad first pair: %+v / %+v", r1, r2)
	}
	if _, _, err := p.Read(); err != nil {
		t.Fatalf("second pair: %v", err)
	}
	if _, _, err := p.Read(); err != io.EOF {
		t.Fatalf("want EOF, got %v", err)
	}
	if p.Records != 2 {
		t.Fatalf("want 2 pairs, got %d", p.Records)
	}
}

func TestPairReaderTruncation(t *testing.T) {
	dir := t.TempDir()
	fn1 := writeFile(t, dir, "r1.fastq", "@a\nAC\n+\nEE\n@b\nGG\n+\nEE\n")
	fn2 := writeFile(t, dir, "r2.fastq", "@a\nTT\n+\nEE\n")

	p, err := OpenPair(fn1, fn2)
	if err != nil {
		t.Fatalf("open pair: %v", err)
	}
	defer func() { _ = p.Close() }()

	if _, _, err := p.Read(); err != nil {
		t.Fatalf("first pair: %v", err)
	}
	_, _, err = p.Read()
	if err == nil || err == io.EOF || !strings.Contains(err.Error(), "r2.fastq") {
		t.Fatalf("want truncation error naming r2.fastq, got %v", err)
	}
}
