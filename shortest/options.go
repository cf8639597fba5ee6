// SPDX-License-Identifier: MIT

package shortest

import (
	"context"
	"time"
)

// Stats summarises one engine run. It is handed to Observer.Finish exactly once.
type Stats struct {
	Algorithm string        // engine name, or the WithName override
	Settled   int           // nodes whose cost became final
	Relaxed   int           // edges examined during relaxation
	Improved  int           // relaxations that lowered a tentative cost
	Yielded   int           // items handed to the caller
	Duration  time.Duration // from first pull (or validation) to completion
	Err       error         // validation failure, or the backend failure that cut a run short
}

// Observer receives run lifecycle events. Start is called when a run begins
// (or validation fails) and returns the context passed to Finish. Observers are
// called synchronously on the consuming goroutine and must be cheap.
type Observer interface {
	Start(ctx context.Context, algorithm string) context.Context
	Finish(ctx context.Context, stats Stats)
}

// NopObserver discards every event.
type NopObserver struct{}

// Start returns ctx unchanged.
func (NopObserver) Start(ctx context.Context, _ string) context.Context { return ctx }

// Finish does nothing.
func (NopObserver) Finish(context.Context, Stats) {}

// Options holds the settings shared by every engine.
//
//	Observer     – run lifecycle sink (default NopObserver).
//	Ctx          – parent context handed to the observer. It carries trace
//	               parents only; engines never watch it for cancellation.
//	CheckWeights – pre-scan for negative weights in non-negative engines (default true).
//	Name         – algorithm label reported to the observer (default engine name).
type Options struct {
	Observer     Observer
	Ctx          context.Context
	CheckWeights bool
	Name         string
}

// Option mutates Options before a run is configured.
type Option func(*Options)

// DefaultOptions returns the defaults documented on Options.
func DefaultOptions() Options {
	return Options{
		Observer:     NopObserver{},
		Ctx:          context.Background(),
		CheckWeights: true,
	}
}

// Resolve applies opts over DefaultOptions and fills Name with fallback when unset.
func Resolve(fallback string, opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Name == "" {
		o.Name = fallback
	}

	return o
}

// WithObserver installs obs. Panics on nil.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic("shortest: WithObserver(nil)")
	}

	return func(o *Options) { o.Observer = obs }
}

// WithContext sets the parent context handed to the observer. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("shortest: WithContext(nil)")
	}

	return func(o *Options) { o.Ctx = ctx }
}

// WithoutWeightCheck skips the O(V+E) negative-weight pre-scan. Negative
// weights then become an unchecked precondition breach.
func WithoutWeightCheck() Option {
	return func(o *Options) { o.CheckWeights = false }
}

// WithName overrides the algorithm label reported to the observer.
func WithName(name string) Option {
	return func(o *Options) { o.Name = name }
}

// Run tracks one engine run for the observer. Engines create it with Begin
// and close it with End, exactly once, typically in a defer.
type Run struct {
	obs   Observer
	ctx   context.Context
	start time.Time
	Stats Stats
}

// Begin starts observing a run named by o.Name.
func Begin(o Options) *Run {
	r := &Run{obs: o.Observer, start: time.Now()}
	r.Stats.Algorithm = o.Name
	r.ctx = r.obs.Start(o.Ctx, o.Name)

	return r
}

// Fail reports a validation failure and returns err unchanged.
func Fail(o Options, err error) error {
	r := Begin(o)
	r.Stats.Err = err
	r.End()

	return err
}

// End stamps the duration and hands the stats to the observer.
func (r *Run) End() {
	r.Stats.Duration = time.Since(r.start)
	r.obs.Finish(r.ctx, r.Stats)
}
