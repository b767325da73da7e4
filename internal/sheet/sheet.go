// internal/sheet/sheet.go
package sheet

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"fqgen-core/fastq"
	"fqgen-core/gen"
)

// Sample is one row of a sheet. Nil Reads/Length fall back to the
// sheet-level defaults.
type Sample struct {
	ID     string `yaml:"id"`
	Reads  *int   `yaml:"reads"`
	Length *int   `yaml:"length"`
	Seed   uint64 `yaml:"seed"`
}

// Sheet describes a whole synthetic cohort.
type Sheet struct {
	Reads   int      `yaml:"reads"`
	Length  *int     `yaml:"length"` // nil = gen.DefaultLength
	Paired  bool     `yaml:"paired"`
	Gzip    bool     `yaml:"gzip"`
	OutDir  string   `yaml:"outdir"`
	Samples []Sample `yaml:"samples"`
}

// Resolved is a sample with defaults applied and output paths assigned.
type Resolved struct {
	ID    string
	Cfg   gen.Config
	Files []string // one path, or mate-1 and mate-2 for paired sheets
}

// Load parses and validates a sheet file.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sh Sheet
	if err := yaml.Unmarshal(data, &sh); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(sh.Samples) == 0 {
		return nil, fmt.Errorf("%s: no samples listed", path)
	}
	ids := map[string]bool{}
	for i, s := range sh.Samples {
		if s.ID == "" {
			return nil, fmt.Errorf("%s: sample %d has no id", path, i+1)
		}
		if strings.ContainsAny(s.ID, "/\t ") {
			return nil, fmt.Errorf("%s: sample id %q contains a path or field separator", path, s.ID)
		}
		if ids[s.ID] {
			return nil, fmt.Errorf("%s: duplicate sample id %q", path, s.ID)
		}
		ids[s.ID] = true
	}
	if sh.OutDir == "" {
		sh.OutDir = "."
	}
	return &sh, nil
}

// Resolve applies sheet-level defaults and assigns output paths.
func (sh *Sheet) Resolve() []Resolved {
	length := gen.DefaultLength
	if sh.Length != nil {
		length = *sh.Length
	}
	suffix := ".fastq"
	if sh.Gzip {
		suffix = ".fastq.gz"
	}
	out := make([]Resolved, 0, len(sh.Samples))
	for _, s := range sh.Samples {
		cfg := gen.Config{Reads: sh.Reads, Length: length, Seed: s.Seed}
		if s.Reads != nil {
			cfg.Reads = *s.Reads
		}
		if s.Length != nil {
			cfg.Length = *s.Length
		}
		r := Resolved{ID: s.ID, Cfg: cfg}
		if sh.Paired {
			r.Files = []string{
				filepath.Join(sh.OutDir, s.ID+"_1"+suffix),
				filepath.Join(sh.OutDir, s.ID+"_2"+suffix),
			}
		} else {
			r.Files = []string{filepath.Join(sh.OutDir, s.ID+suffix)}
		}
		out = append(out, r)
	}
	return out
}

// ListFile is the per-cohort sample list consumable by fqoverlap/fqshared.
const ListFile = "files.tsv"

// Generate writes every sample's FASTQ file(s) plus a files.tsv list into
// the sheet's output directory. logf receives one progress note per sample.
func Generate(ctx context.Context, sh *Sheet, logf func(format string, a ...any)) ([]Resolved, error) {
	samples := sh.Resolve()
	if err := os.MkdirAll(sh.OutDir, 0o755); err != nil {
		return nil, err
	}
	for _, s := range samples {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := generateSample(ctx, sh.Paired, s); err != nil {
			return nil, fmt.Errorf("sample %s: %w", s.ID, err)
		}
		logf("wrote sample %s (%d reads)", s.ID, s.Cfg.Reads)
	}
	if err := writeList(filepath.Join(sh.OutDir, ListFile), samples); err != nil {
		return nil, err
	}
	return samples, nil
}

func generateSample(ctx context.Context, paired bool, s Resolved) error {
	g := gen.New(s.Cfg)
	if paired {
		w1, err := fastq.CreateBuffered(s.Files[0])
		if err != nil {
			return err
		}
		w2, err := fastq.CreateBuffered(s.Files[1])
		if err != nil {
			_ = w1.Close()
			return err
		}
		err = g.WritePairContext(ctx, w1, w2)
		if cerr := w1.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if cerr := w2.Close(); cerr != nil && err == nil {
			err = cerr
		}
		return err
	}
	w, err := fastq.CreateBuffered(s.Files[0])
	if err != nil {
		return err
	}
	err = g.WriteContext(ctx, w)
	if cerr := w.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func writeList(path string, samples []Resolved) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	for _, s := range samples {
		row := append([]string{s.ID}, s.Files...)
		if _, err := fmt.Fprintln(fh, strings.Join(row, "\t")); err != nil {
			_ = fh.Close()
			return err
		}
	}
	return fh.Close()
}
