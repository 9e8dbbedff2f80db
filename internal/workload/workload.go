// Package workload generates seeded cache operation sequences for the demo
// binary and for randomized tests.
package workload

import (
	"strconv"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Kind uint8

const (
	Get Kind = iota
	Put
	Delete
)

func (k Kind) String() string {
	switch k {
	case Get:
		return "get"
	case Put:
		return "put"
	case Delete:
		return "delete"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Op is one cache call. Value is empty unless Kind is Put.
type Op struct {
	Kind  Kind
	Key   string
	Value string
}

// Mix is the percentage of Get and Put operations; the remainder are Deletes.
type Mix struct {
	GetPercent int
	PutPercent int
}

var DefaultMix = Mix{GetPercent: 60, PutPercent: 35}

// Generator produces operations over a fixed key space.
// The same seed, key space and mix always yield the same sequence.
type Generator struct {
	id    string
	faker *gofakeit.Faker
	keys  []string
	mix   Mix
}

// New returns a generator drawing keys from keySpace distinct names.
// A keySpace below 1 is treated as 1.
func New(seed uint64, keySpace int, mix Mix) *Generator {
	if keySpace < 1 {
		keySpace = 1
	}
	keys := make([]string, keySpace)
	for i := range keys {
		keys[i] = "k" + strconv.Itoa(i)
	}
	return &Generator{
		id:    uuid.NewString(),
		faker: gofakeit.New(seed),
		keys:  keys,
		mix:   mix,
	}
}

// ID identifies this generator run in logs.
func (g *Generator) ID() string {
	return g.id
}

// Next returns the next operation.
func (g *Generator) Next() Op {
	key := g.keys[g.faker.Number(0, len(g.keys)-1)]
	roll := g.faker.Number(0, 99)
	switch {
	case roll < g.mix.GetPercent:
		return Op{Kind: Get, Key: key}
	case roll < g.mix.GetPercent+g.mix.PutPercent:
		return Op{Kind: Put, Key: key, Value: g.faker.Word()}
	default:
		return Op{Kind: Delete, Key: key}
	}
}

// Ops returns the next n operations.
func (g *Generator) Ops(n int) []Op {
	out := make([]Op, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.Next())
	}
	return out
}

// Stats counts the outcomes of applied operations.
type Stats struct {
	Hits      int
	Misses    int
	Puts      int
	Evictions int
	Deletes   int
}

// Record tallies one applied operation. ok is the hit flag for Get, the
// eviction flag for Put and the removed flag for Delete.
func (s *Stats) Record(op Op, ok bool) {
	switch op.Kind {
	case Get:
		if ok {
			s.Hits++
		} else {
			s.Misses++
		}
	case Put:
		s.Puts++
		if ok {
			s.Evictions++
		}
	case Delete:
		if ok {
			s.Deletes++
		}
	}
}

// HitRatio is Hits over all Gets, or 0 when there were none.
func (s Stats) HitRatio() float64 {
	if total := s.Hits + s.Misses; total > 0 {
		return float64(s.Hits) / float64(total)
	}
	return 0
}

func (s Stats) MarshalZerologObject(e *zerolog.Event) {
	e.Int("hits", s.Hits).
		Int("misses", s.Misses).
		Int("puts", s.Puts).
		Int("evictions", s.Evictions).
		Int("deletes", s.Deletes).
		Float64("hit_ratio", s.HitRatio())
}
