package driven

// EventSink receives structured events from core services. It is injected
// into the services that emit events rather than accessed as a process-wide
// singleton, so callers control where index-build and query diagnostics go.
//
// Implementations must be safe for concurrent use.
type EventSink interface {
	// Debug records a low-level diagnostic event.
	Debug(format string, args ...any)

	// Info records a notable state change, such as a completed index build.
	Info(format string, args ...any)

	// Warn records a recoverable problem.
	Warn(format string, args ...any)
}
