// Package observe provides shortest.Observer implementations for the usual
// production sinks.
//
//   - Prometheus records run counts, settled nodes, relaxations and durations.
//   - Tracer opens one OpenTelemetry span per run.
//   - Logger writes start/finish lines through a logr.Logger, and flags slow runs.
//   - Multi fans events out to several observers.
//
// Observers are called synchronously on the goroutine that consumes the
// results, once at Start and once at Finish, so every implementation here is
// safe for concurrent use and does no blocking I/O of its own.
//
// Usage:
//
//	reg := prometheus.NewRegistry()
//	obs := observe.Multi(
//	    observe.NewPrometheus(reg),
//	    observe.NewTracer(otel.Tracer("paths")),
//	    observe.NewLogger(logger, observe.WithSlowRun(50*time.Millisecond)),
//	)
//	d := dijkstra.New[string, int64]("A", shortest.WithObserver(obs))
package observe

// outcome labels shared by the sinks.
const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

func outcomeOf(err error) string {
	if err != nil {
		return outcomeError
	}

	return outcomeOK
}
