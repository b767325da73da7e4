// core/gen/gen.go
package gen

import (
	"context"
	"io"
	"math/rand/v2"

	"fqgen-core/fastq"
)

const (
	// NameLen is the number of lowercase letters in a generated read name.
	NameLen = 12
	// DefaultLength is the read length used when the caller gives none.
	DefaultLength = 75
	// QualChar fills every quality string; the data is synthetic, so the
	// per-base confidence is degenerate.
	QualChar = 'E'
)

const nameLetters = "abcdefghijklmnopqrstuvwxyz"

var bases = [...]byte{'A', 'T', 'G', 'C'}

// Config controls one generation run.
type Config struct {
	Reads  int    // records to emit; <= 0 means none
	Length int    // per-read sequence length; <= 0 yields empty lines
	Seed   uint64 // 0 = auto-seed (output differs between runs)
}

// Generator emits synthetic FASTQ records. It is not safe for concurrent
// use; each goroutine should own its own Generator.
type Generator struct {
	cfg  Config
	rnd  *rand.Rand
	qual []byte
}

// New returns a Generator for cfg. A zero Seed draws fresh entropy from the
// process-wide source, so two such generators produce unrelated streams; any
// other seed makes the stream reproducible.
func New(cfg Config) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	n := cfg.Length
	if n < 0 {
		n = 0
	}
	// The quality string is constant per run; build it once and share it
	// across records.
	qual := make([]byte, n)
	for i := range qual {
		qual[i] = QualChar
	}
	return &Generator{
		cfg:  cfg,
		rnd:  rand.New(rand.NewPCG(seed, seed)),
		qual: qual,
	}
}

func (g *Generator) name() string {
	b := make([]byte, NameLen)
	for i := range b {
		b[i] = nameLetters[g.rnd.IntN(len(nameLetters))]
	}
	return string(b)
}

func (g *Generator) sequence() []byte {
	s := make([]byte, len(g.qual))
	for i := range s {
		s[i] = bases[g.rnd.IntN(len(bases))]
	}
	return s
}

// Next returns a fresh record. The Qual slice is shared between records and
// must be treated as read-only.
func (g *Generator) Next() fastq.Record {
	return fastq.Record{Name: g.name(), Seq: g.sequence(), Qual: g.qual}
}

// NextPair returns mate-1 and mate-2 records carrying the same name, the way
// paired-end runs key mates positionally across two files.
func (g *Generator) NextPair() (fastq.Record, fastq.Record) {
	name := g.name()
	r1 := fastq.Record{Name: name, Seq: g.sequence(), Qual: g.qual}
	r2 := fastq.Record{Name: name, Seq: g.sequence(), Qual: g.qual}
	return r1, r2
}

// ctxCheckEvery bounds how stale a cancellation can get mid-run.
const ctxCheckEvery = 1024

// WriteContext writes cfg.Reads four-line records to w in generation order.
// A negative Reads writes nothing. Cancellation is observed between records.
func (g *Generator) WriteContext(ctx context.Context, w io.Writer) error {
	for i := 0; i < g.cfg.Reads; i++ {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := fastq.Write(w, g.Next()); err != nil {
			return err
		}
	}
	return nil
}

// WritePairContext is WriteContext for paired-end output: mate-1 records go
// to w1 and mate-2 records to w2, with identical names per position.
func (g *Generator) WritePairContext(ctx context.Context, w1, w2 io.Writer) error {
	for i := 0; i < g.cfg.Reads; i++ {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		r1, r2 := g.NextPair()
		if err := fastq.Write(w1, r1); err != nil {
			return err
		}
		if err := fastq.Write(w2, r2); err != nil {
			return err
		}
	}
	return nil
}

// Write is WriteContext with a background context.
func (g *Generator) Write(w io.Writer) error {
	return g.WriteContext(context.Background(), w)
}

// WritePair is WritePairContext with a background context.
func (g *Generator) WritePair(w1, w2 io.Writer) error {
	return g.WritePairContext(context.Background(), w1, w2)
}
