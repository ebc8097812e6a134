package log

// Logger is the interface applications implement to receive protocol events.
// Pass nil or NopLogger to disable capture.
type Logger interface {
	// Log records a protocol event. Implementations must be thread-safe.
	// The event should be processed quickly or queued; blocking stalls
	// the transaction in flight.
	Log(event Event)
}

// NopLogger discards all events. Use when capture is disabled.
// NopLogger is safe for concurrent use and usable as a zero value.
type NopLogger struct{}

// Log discards the event.
func (NopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NopLogger{}
