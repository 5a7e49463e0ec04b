package client

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Poller runs Fn on a fixed interval. A tick that arrives while the previous
// run is still in flight is skipped and counted, so runs never overlap.
// DefaultPollInterval is used when Interval is not positive.
const DefaultPollInterval = 30 * time.Second

type Poller struct {
	Interval time.Duration
	Fn       func(ctx context.Context) error
	// OnError receives every error Fn returns. Optional.
	OnError func(error)

	running atomic.Bool
	skipped atomic.Int64
	runs    atomic.Int64
}

// Run polls immediately and then on every tick until ctx is cancelled. It
// waits for an in-flight run before returning.
func (p *Poller) Run(ctx context.Context) {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	p.run(ctx, ticker.C)
}

func (p *Poller) run(ctx context.Context, ticks <-chan time.Time) {
	var wg sync.WaitGroup
	defer wg.Wait()

	p.tick(ctx, &wg)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticks:
			p.tick(ctx, &wg)
		}
	}
}

func (p *Poller) tick(ctx context.Context, wg *sync.WaitGroup) {
	if !p.running.CompareAndSwap(false, true) {
		p.skipped.Add(1)
		return
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer p.running.Store(false)
		p.runs.Add(1)
		if err := p.Fn(ctx); err != nil && p.OnError != nil && ctx.Err() == nil {
			p.OnError(err)
		}
	}()
}

// Skipped is the number of ticks dropped because a run was still in flight.
func (p *Poller) Skipped() int64 { return p.skipped.Load() }

func (p *Poller) Runs() int64 { return p.runs.Load() }
