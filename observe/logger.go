// SPDX-License-Identifier: MIT

package observe

import (
	"context"
	"time"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvlath-paths/shortest"
)

// Logger writes run lifecycle lines through a logr.Logger:
//
//   - V(1) "run started" at Start,
//   - V(1) "run finished" with the stats at Finish,
//   - Error "run failed" when the run carries an error,
//   - Info "slow run" when a WithSlowRun threshold is exceeded.
//
// A log/slog handler can be used through logr.FromSlogHandler.
type Logger struct {
	log  logr.Logger
	slow time.Duration
}

var _ shortest.Observer = (*Logger)(nil)

// LoggerOption configures a Logger.
type LoggerOption func(*Logger)

// WithSlowRun reports runs longer than d at the default verbosity.
// Panics if d is negative.
func WithSlowRun(d time.Duration) LoggerOption {
	if d < 0 {
		panic("observe: WithSlowRun(d<0)")
	}

	return func(l *Logger) { l.slow = d }
}

// NewLogger creates a Logger writing to log.
func NewLogger(log logr.Logger, opts ...LoggerOption) *Logger {
	l := &Logger{log: log.WithName("paths")}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Start logs the run start.
func (l *Logger) Start(ctx context.Context, algorithm string) context.Context {
	l.log.V(1).Info("run started", "algorithm", algorithm)

	return ctx
}

// Finish logs the outcome.
func (l *Logger) Finish(_ context.Context, stats shortest.Stats) {
	kv := []any{
		"algorithm", stats.Algorithm,
		"settled", stats.Settled,
		"relaxed", stats.Relaxed,
		"yielded", stats.Yielded,
		"duration", stats.Duration,
	}
	if stats.Err != nil {
		l.log.Error(stats.Err, "run failed", kv...)

		return
	}
	l.log.V(1).Info("run finished", kv...)
	if l.slow > 0 && stats.Duration > l.slow {
		l.log.Info("slow run", append(kv, "threshold", l.slow)...)
	}
}
