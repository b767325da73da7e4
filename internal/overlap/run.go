// internal/overlap/run.go
package overlap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"fqgen-core/fastq"
)

// maxNameWarnings caps how many read-name conflicts get reported before the
// rest are counted silently.
const maxNameWarnings = 10

// ctxCheckEvery bounds how many records a scan reads between cancellation
// checks.
const ctxCheckEvery = 1024

// Run accumulates which samples share each of a reference sample's read
// pairs. Keys are "seq1:seq2" over the two mate sequences; each key also
// remembers the mate-1 read name it was first seen under.
type Run struct {
	SampleID   string // reference sample ID; empty when refs are given directly
	Ref1, Ref2 string
	Limit      int // max records considered per stream; 0 = all

	// names is filled by Resume and LoadRef and is read-only while sample
	// scans are in flight, so the scan goroutines can share it unlocked.
	names map[string]string
	// shared is owned by the collector goroutine during a scan.
	shared map[string]map[string]bool
	// done lists samples whose scan output is already accounted for, in
	// completion order (resumed samples first).
	done []Sample
}

// NewRun prepares an empty run for the given reference.
func NewRun(sampleID, ref1, ref2 string, limit int) *Run {
	return &Run{
		SampleID: sampleID,
		Ref1:     ref1,
		Ref2:     ref2,
		Limit:    limit,
		names:    map[string]string{},
		shared:   map[string]map[string]bool{},
	}
}

// Done returns the samples already scanned (or resumed), in order.
func (r *Run) Done() []Sample { return r.done }

// LoadRef reads the reference pair and registers one key per read pair.
// Keys preloaded by Resume must carry the same read name; conflicting
// records are skipped with a warning, the first maxNameWarnings verbosely.
func (r *Run) LoadRef(ctx context.Context, warnf func(format string, a ...any)) error {
	pr, err := fastq.OpenPair(r.Ref1, r.Ref2)
	if err != nil {
		return err
	}
	defer func() { _ = pr.Close() }()

	skipped := 0
	for {
		if pr.Records%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		rec1, rec2, err := pr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		key := string(rec1.Seq) + ":" + string(rec2.Seq)
		if name, ok := r.names[key]; ok {
			if name != rec1.Name {
				if skipped < maxNameWarnings {
					warnf("key for read %s already recorded under name %s; skipping", rec1.Name, name)
				}
				skipped++
			}
		} else {
			r.names[key] = rec1.Name
		}
		if r.Limit > 0 && pr.Records >= r.Limit {
			warnf("reached reference record limit (%d)", r.Limit)
			break
		}
	}
	if skipped > maxNameWarnings {
		warnf("%d conflicting reference reads skipped in total", skipped)
	}
	return nil
}

type hit struct {
	key    string
	sample string
}

// Scan reads every sample in batches waves, fanning one goroutine out per
// sample within a wave and funneling hits into a single collector. After
// each non-final wave, progress (if non-nil) may snapshot the run; the
// collector is quiesced at that point, so reading the run is safe.
func (r *Run) Scan(ctx context.Context, samples []Sample, batches int, progress func(*Run) error) error {
	if batches < 1 {
		batches = 1
	}
	scanCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, len(samples))
	for b := 0; b < batches; b++ {
		hits := make(chan hit, 256)
		collected := make(chan struct{})
		go func() {
			for h := range hits {
				set := r.shared[h.key]
				if set == nil {
					set = map[string]bool{}
					r.shared[h.key] = set
				}
				set[h.sample] = true
			}
			close(collected)
		}()

		var wg sync.WaitGroup
		var wave []Sample
		for i := range samples {
			if i%batches != b {
				continue
			}
			s := samples[i]
			wave = append(wave, s)
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := r.scanSample(scanCtx, s, hits); err != nil {
					errCh <- fmt.Errorf("sample %s: %w", s.ID, err)
					cancel()
				}
			}()
		}
		wg.Wait()
		close(hits)
		<-collected

		if err := firstError(errCh); err != nil {
			return err
		}
		r.done = append(r.done, wave...)
		if progress != nil && b != batches-1 {
			if err := progress(r); err != nil {
				return err
			}
		}
	}
	return ctx.Err()
}

// firstError drains pending errors, preferring a real failure over the
// cancellations it caused.
func firstError(errCh chan error) error {
	var first error
	for {
		select {
		case err := <-errCh:
			if first == nil || errors.Is(first, context.Canceled) {
				first = err
			}
		default:
			return first
		}
	}
}

func (r *Run) scanSample(ctx context.Context, s Sample, hits chan<- hit) error {
	pr, err := fastq.OpenPair(s.Fastq1, s.Fastq2)
	if err != nil {
		return err
	}
	defer func() { _ = pr.Close() }()

	for {
		if pr.Records%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		rec1, rec2, err := pr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		key := string(rec1.Seq) + ":" + string(rec2.Seq)
		if _, ok := r.names[key]; ok {
			select {
			case hits <- hit{key: key, sample: s.ID}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if r.Limit > 0 && pr.Records >= r.Limit {
			return nil
		}
	}
}

// WriteTo emits the run as its tab-separated document: comment headers,
// one '# overlap' line per scanned sample, then one row per shared key.
// Rows are key-sorted so equal runs serialize identically; the format is
// what Resume parses, so a mid-run snapshot is a valid continue file.
func (r *Run) WriteTo(w io.Writer, runID string) error {
	if r.SampleID != "" {
		if _, err := fmt.Fprintf(w, "# sample\t%s\n", r.SampleID); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "# ref1\t%s\n# ref2\t%s\n", r.Ref1, r.Ref2); err != nil {
		return err
	}
	if runID != "" {
		if _, err := fmt.Fprintf(w, "# run\t%s\n", runID); err != nil {
			return err
		}
	}
	for _, s := range r.done {
		if _, err := fmt.Fprintf(w, "# overlap\t%s\t%s\t%s\n", s.ID, s.Fastq1, s.Fastq2); err != nil {
			return err
		}
	}

	keys := make([]string, 0, len(r.shared))
	for key, set := range r.shared {
		if len(set) > 0 {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		ids := make([]string, 0, len(r.shared[key]))
		for id := range r.shared[key] {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		seq1, seq2, _ := strings.Cut(key, ":")
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.names[key], seq1, seq2, strings.Join(ids, ",")); err != nil {
			return err
		}
	}
	return nil
}

// SharedReads returns how many reference keys were found in at least one
// other sample.
func (r *Run) SharedReads() int {
	n := 0
	for _, set := range r.shared {
		if len(set) > 0 {
			n++
		}
	}
	return n
}
