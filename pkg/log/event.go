package log

import "time"

// Event represents one captured protocol event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// EngineID uniquely identifies the engine, one per device (UUID).
	EngineID string `cbor:"2,keyasint"`

	// Direction indicates frame flow relative to the host.
	Direction Direction `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	Frame *FrameEvent `cbor:"5,keyasint,omitempty"`
	Retry *RetryEvent `cbor:"6,keyasint,omitempty"`
	Error *ErrorEvent `cbor:"7,keyasint,omitempty"`
}

// Direction indicates the direction of frame flow.
type Direction uint8

const (
	// DirectionIn indicates a frame received from the device.
	DirectionIn Direction = 0
	// DirectionOut indicates a frame sent to the device.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryFrame indicates a command or final response frame.
	CategoryFrame Category = 0
	// CategoryInterim indicates an interim response, the transaction
	// continues as deferred.
	CategoryInterim Category = 1
	// CategoryRetry indicates a retry after a busy response.
	CategoryRetry Category = 2
	// CategoryError indicates a terminal transaction error.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryFrame:
		return "FRAME"
	case CategoryInterim:
		return "INTERIM"
	case CategoryRetry:
		return "RETRY"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// FrameEvent captures one frame together with its decoded header bytes, so
// traces can be filtered without re-parsing frame data.
type FrameEvent struct {
	// Header is the frame's first byte: ctype on the way out, response
	// code on the way in.
	Header uint8 `cbor:"1,keyasint"`

	// Addr is the target address byte.
	Addr uint8 `cbor:"2,keyasint"`

	// Opcode is the operation code.
	Opcode uint8 `cbor:"3,keyasint"`

	// Data is the complete frame.
	Data []byte `cbor:"4,keyasint,omitempty"`
}

// RetryEvent captures one busy retry.
type RetryEvent struct {
	// Attempt counts retries within the transaction, starting at 1.
	Attempt int `cbor:"1,keyasint"`

	// Delay is the backoff applied before this attempt.
	// Stored as nanoseconds.
	Delay time.Duration `cbor:"2,keyasint"`
}

// ErrorEvent captures a terminal transaction error.
type ErrorEvent struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what the engine was doing.
	Context string `cbor:"2,keyasint,omitempty"`
}
