package overlapcli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}

func TestParseOK(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"-ref1", "a.fastq", "-ref2", "b.fastq", "-files", "list.tsv", "-limit", "5"})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if o.Ref1 != "a.fastq" || o.Ref2 != "b.fastq" || o.Files != "list.tsv" || o.Limit != 5 {
		t.Errorf("bad parse: %+v", o)
	}
}

func TestMissingRefs(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-files", "list.tsv"}); err == nil {
		t.Fatalf("expected error without refs")
	}
}

func TestMissingFiles(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-ref1", "a", "-ref2", "b"}); err == nil {
		t.Fatalf("expected error without -files")
	}
}

func TestNegativeLimit(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-ref1", "a", "-ref2", "b", "-files", "f", "-limit", "-1"}); err == nil {
		t.Fatalf("expected error for negative -limit")
	}
}
