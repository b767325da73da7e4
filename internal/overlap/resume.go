// internal/overlap/resume.go
package overlap

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Resume preloads the run from a previous invocation's output and reports
// which of list still need scanning. The file's reference identity must
// match the run exactly; every sample named by an '# overlap' line is
// treated as already scanned.
func (r *Run) Resume(path string, list []Sample) ([]Sample, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	ln := 0
	var foundSample, foundRef1, foundRef2 bool
	seen := map[string]bool{}
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(line, "# ") {
			tag, rest, _ := strings.Cut(line[2:], "\t")
			switch tag {
			case "sample":
				if rest != r.SampleID {
					return nil, fmt.Errorf("%s:%d: continue file is for sample %s, not %s", path, ln, rest, r.SampleID)
				}
				foundSample = true
			case "ref1":
				if rest != r.Ref1 {
					return nil, fmt.Errorf("%s:%d: ref1 is %s, expecting %s", path, ln, rest, r.Ref1)
				}
				foundRef1 = true
			case "ref2":
				if rest != r.Ref2 {
					return nil, fmt.Errorf("%s:%d: ref2 is %s, expecting %s", path, ln, rest, r.Ref2)
				}
				foundRef2 = true
			case "run":
				// Previous run's ID; informational only.
			case "overlap":
				f := strings.Split(rest, "\t")
				if len(f) != 3 {
					return nil, fmt.Errorf("%s:%d: malformed '# overlap' line", path, ln)
				}
				seen[f[0]] = true
				r.done = append(r.done, Sample{ID: f[0], Fastq1: f[1], Fastq2: f[2]})
			default:
				return nil, fmt.Errorf("%s:%d: unrecognized comment line %q", path, ln, line)
			}
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) != 4 {
			return nil, fmt.Errorf("%s:%d: want 4 tab-separated fields, got %d", path, ln, len(f))
		}
		key := f[1] + ":" + f[2]
		if _, ok := r.names[key]; ok {
			return nil, fmt.Errorf("%s:%d: duplicate key for read %s", path, ln, f[0])
		}
		r.names[key] = f[0]
		set := map[string]bool{}
		for _, id := range strings.Split(f[3], ",") {
			set[id] = true
		}
		r.shared[key] = set
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if r.SampleID != "" && !foundSample {
		return nil, fmt.Errorf("%s: missing '# sample' line", path)
	}
	if !foundRef1 || !foundRef2 {
		return nil, fmt.Errorf("%s: missing '# ref1'/'# ref2' lines", path)
	}

	var pending []Sample
	for _, s := range list {
		if !seen[s.ID] {
			pending = append(pending, s)
		}
	}
	return pending, nil
}
