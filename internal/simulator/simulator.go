// Package simulator drives the cosmetic live-update loop: on a fixed
// period it mutates a random subset of claims so the UI looks alive.
// There is no ordering guarantee against user edits; last write wins
// through the store.
package simulator

import (
	"context"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	claimdomain "claimflow/internal/claim/domain"
	"claimflow/internal/store"
)

// Config holds the tick period and per-claim mutation probability.
type Config struct {
	Interval     time.Duration
	MutationRate float64
}

// DefaultConfig matches the reference behavior: every 10 seconds, each
// claim has a 20% chance of mutating.
func DefaultConfig() Config {
	return Config{Interval: 10 * time.Second, MutationRate: 0.2}
}

// Option overrides a Simulator collaborator. Used by tests.
type Option func(*Simulator)

// WithRand sets the random source.
func WithRand(src rand.Source) Option {
	return func(s *Simulator) { s.rng = rand.New(src) }
}

// WithClock sets the clock used for the SLA-settled reconciliation.
func WithClock(nowF func() time.Time) Option {
	return func(s *Simulator) { s.nowF = nowF }
}

// WithOnTick registers a callback invoked after each completed tick with
// the number of mutated claims. Runs on the simulator goroutine.
func WithOnTick(fn func(mutated int)) Option {
	return func(s *Simulator) { s.onTick = fn }
}

// Simulator mutates claims in the shared store on a fixed period.
type Simulator struct {
	store  *store.Store
	cfg    Config
	log    *zap.Logger
	rng    *rand.Rand
	nowF   func() time.Time
	onTick func(int)

	inFlight atomic.Bool
}

// New returns a Simulator over st. A zero Interval falls back to the
// default config values.
func New(st *store.Store, cfg Config, log *zap.Logger, opts ...Option) *Simulator {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultConfig().Interval
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &Simulator{
		store: st,
		cfg:   cfg,
		log:   log,
		rng: rand.New(rand.NewPCG(
			uint64(time.Now().UnixNano()), uint64(time.Now().UnixNano())>>32)),
		nowF: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start launches the tick loop and returns its stop function. Stop is
// idempotent and waits for the goroutine to exit, so no tick can mutate
// state after stop returns. The session owner must call it on teardown.
func (s *Simulator) Start() (stop func()) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(s.cfg.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				// Skip a tick whose predecessor is still in flight rather
				// than letting pending ticks pile up.
				if !s.inFlight.CompareAndSwap(false, true) {
					s.log.Debug("live-update tick skipped, previous still running")
					continue
				}
				n := s.Tick()
				if s.onTick != nil {
					s.onTick(n)
				}
				s.inFlight.Store(false)
			}
		}
	}()

	s.log.Info("live updates started",
		zap.Duration("interval", s.cfg.Interval),
		zap.Float64("mutation_rate", s.cfg.MutationRate))

	return sync.OnceFunc(func() {
		cancel()
		<-done
		s.log.Info("live updates stopped")
	})
}

// Tick runs one mutation pass and returns the number of mutated claims.
// Each claim is selected independently with the configured probability; a
// selected claim gets a fresh stored status, a small perturbation to the
// requested amount, and the transient highlight flag. Unselected claims
// only have the flag cleared. SLA breach stays a derived projection and is
// never written here.
func (s *Simulator) Tick() int {
	statuses := claimdomain.AllStatuses()
	mutated := 0
	s.store.Update(func(d *store.Dataset) *store.Dataset {
		next := d.ShallowClone()
		for i, c := range next.Claims {
			if s.rng.Float64() < s.cfg.MutationRate {
				cp := c.Clone()
				cp.Status = statuses[s.rng.IntN(len(statuses))]
				cp.AmountRequested += s.rng.Int64N(201) - 100
				if cp.AmountRequested < 1 {
					cp.AmountRequested = 1
				}
				// Keep the settled-amount invariant across the status change.
				if cp.Status == claimdomain.StatusSettled {
					if cp.AmountSettled == 0 {
						cp.AmountSettled = 800 + s.rng.Int64N(44_201)
					}
				} else {
					cp.AmountSettled = 0
				}
				cp.Highlighted = true
				next.Claims[i] = cp
				mutated++
				continue
			}
			if c.Highlighted {
				cp := c.Clone()
				cp.Highlighted = false
				next.Claims[i] = cp
			}
		}
		return next
	})
	if mutated > 0 {
		s.log.Debug("live-update tick applied", zap.Int("mutated", mutated))
	}
	return mutated
}
