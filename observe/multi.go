// SPDX-License-Identifier: MIT

package observe

import (
	"context"

	"github.com/katalvlaran/lvlath-paths/shortest"
)

// multi fans out to several observers. Each observer gets the context it
// returned from its own Start back in Finish.
type multi struct {
	observers []shortest.Observer
}

// multiKey carries the per-observer contexts between Start and Finish.
type multiKey struct{ m *multi }

// Multi combines observers; nil entries are skipped. With no observers it
// returns shortest.NopObserver.
func Multi(observers ...shortest.Observer) shortest.Observer {
	m := &multi{}
	for _, o := range observers {
		if o != nil {
			m.observers = append(m.observers, o)
		}
	}
	switch len(m.observers) {
	case 0:
		return shortest.NopObserver{}
	case 1:
		return m.observers[0]
	}

	return m
}

func (m *multi) Start(ctx context.Context, algorithm string) context.Context {
	ctxs := make([]context.Context, len(m.observers))
	for i, o := range m.observers {
		ctxs[i] = o.Start(ctx, algorithm)
	}

	return context.WithValue(ctx, multiKey{m}, ctxs)
}

func (m *multi) Finish(ctx context.Context, stats shortest.Stats) {
	ctxs, _ := ctx.Value(multiKey{m}).([]context.Context)
	for i, o := range m.observers {
		c := ctx
		if i < len(ctxs) {
			c = ctxs[i]
		}
		o.Finish(c, stats)
	}
}
