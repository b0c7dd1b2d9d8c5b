package txid

import (
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"
)

const Prefix = "VPS"

// Generator issues transaction ids of the form VPS<unix ms><000-999>.
// It is safe for concurrent use.
type Generator struct {
	now    func() time.Time
	suffix func() int
	last   atomic.Int64
}

type Option func(*Generator)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithSuffix replaces the random suffix source. The result is reduced modulo 1000.
func WithSuffix(suffix func() int) Option {
	return func(g *Generator) { g.suffix = suffix }
}

func New(opts ...Option) *Generator {
	g := &Generator{
		now:    time.Now,
		suffix: func() int { return rand.IntN(1000) },
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Next returns a new id. The millisecond part never decreases, even when the
// clock is set back.
func (g *Generator) Next() string {
	ms := g.millis()
	suffix := g.suffix() % 1000
	if suffix < 0 {
		suffix = -suffix
	}
	return fmt.Sprintf("%s%d%03d", Prefix, ms, suffix)
}

func (g *Generator) millis() int64 {
	now := g.now().UnixMilli()
	for {
		last := g.last.Load()
		if now <= last {
			return last
		}
		if g.last.CompareAndSwap(last, now) {
			return now
		}
	}
}
