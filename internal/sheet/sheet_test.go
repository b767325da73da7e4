package sheet

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fqgen-core/fastq"
)

func writeSheet(t *testing.T, dir, data string) string {
	t.Helper()
	p := filepath.Join(dir, "cohort.yaml")
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatalf("write sheet: %v", err)
	}
	return p
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	p := writeSheet(t, dir, `
reads: 100
outdir: `+dir+`/cohort
samples:
  - id: s1
  - id: s2
    reads: 5
    length: 30
    seed: 7
`)
	sh, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	rs := sh.Resolve()
	if len(rs) != 2 {
		t.Fatalf("want 2 samples, got %d", len(rs))
	}
	if rs[0].Cfg.Reads != 100 || rs[0].Cfg.Length != 75 || rs[0].Cfg.Seed != 0 {
		t.Errorf("s1 defaults wrong: %+v", rs[0].Cfg)
	}
	if rs[1].Cfg.Reads != 5 || rs[1].Cfg.Length != 30 || rs[1].Cfg.Seed != 7 {
		t.Errorf("s2 overrides wrong: %+v", rs[1].Cfg)
	}
	if !strings.HasSuffix(rs[0].Files[0], "s1.fastq") {
		t.Errorf("bad path: %v", rs[0].Files)
	}
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	p := writeSheet(t, t.TempDir(), "samples:\n  - id: s1\n  - id: s1\n")
	if _, err := Load(p); err == nil {
		t.Fatalf("want duplicate-id error")
	}
}

func TestLoadRejectsEmptySheet(t *testing.T) {
	p := writeSheet(t, t.TempDir(), "reads: 5\n")
	if _, err := Load(p); err == nil {
		t.Fatalf("want no-samples error")
	}
}

func TestGeneratePairedCohort(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "cohort")
	p := writeSheet(t, dir, `
reads: 4
length: 20
paired: true
outdir: `+out+`
samples:
  - id: s1
    seed: 1
  - id: s2
    seed: 2
    reads: 2
`)
	sh, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	samples, err := Generate(context.Background(), sh, func(string, ...any) {})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("want 2 samples, got %d", len(samples))
	}

	wantReads := map[string]int64{"s1": 4, "s2": 2}
	for _, s := range samples {
		for _, f := range s.Files {
			st, err := fastq.Count(f)
			if err != nil {
				t.Fatalf("count %s: %v", f, err)
			}
			if st.Records != wantReads[s.ID] {
				t.Errorf("%s: want %d reads, got %d", f, wantReads[s.ID], st.Records)
			}
			if st.Records > 0 && (st.MinLen != 20 || st.MaxLen != 20) {
				t.Errorf("%s: want uniform length 20, got %d..%d", f, st.MinLen, st.MaxLen)
			}
		}
	}

	// files.tsv rows feed fqoverlap/fqshared directly.
	data, err := os.ReadFile(filepath.Join(out, ListFile))
	if err != nil {
		t.Fatalf("read list: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 list rows, got %q", lines)
	}
	f := strings.Split(lines[0], "\t")
	if len(f) != 3 || f[0] != "s1" {
		t.Fatalf("bad list row: %q", lines[0])
	}
}
