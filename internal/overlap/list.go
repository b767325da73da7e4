// internal/overlap/list.go
package overlap

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Sample is one row of a sample list: an ID plus its mate-1 and mate-2
// FASTQ paths.
type Sample struct {
	ID     string
	Fastq1 string
	Fastq2 string
}

// LoadList reads a three-column TSV of sampleID, fastq1, fastq2. Blank
// lines and '#' comments are skipped; duplicate sample IDs are an error.
func LoadList(path string) ([]Sample, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var list []Sample
	seen := map[string]bool{}
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) != 3 {
			return nil, fmt.Errorf("%s:%d: want 3 tab-separated fields, got %d", path, ln, len(f))
		}
		if seen[f[0]] {
			return nil, fmt.Errorf("%s:%d: duplicate sample %q", path, ln, f[0])
		}
		seen[f[0]] = true
		list = append(list, Sample{ID: f[0], Fastq1: f[1], Fastq2: f[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
