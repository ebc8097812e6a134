package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes protocol events to an slog.Logger.
// Useful for development when you want to see transactions in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("engine_id", event.EngineID),
		slog.String("direction", event.Direction.String()),
		slog.String("category", event.Category.String()),
	}

	switch {
	case event.Frame != nil:
		attrs = append(attrs,
			slog.Uint64("header", uint64(event.Frame.Header)),
			slog.Uint64("addr", uint64(event.Frame.Addr)),
			slog.Uint64("opcode", uint64(event.Frame.Opcode)),
			slog.Int("frame_size", len(event.Frame.Data)),
		)
	case event.Retry != nil:
		attrs = append(attrs,
			slog.Int("attempt", event.Retry.Attempt),
			slog.Duration("delay", event.Retry.Delay),
		)
	case event.Error != nil:
		attrs = append(attrs, slog.String("error_msg", event.Error.Message))
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "avc", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
