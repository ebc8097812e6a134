// Package log provides structured protocol capture for AV/C transactions.
//
// The package defines the Logger interface and Event types for recording
// what an engine puts on and takes off the bus: command frames, responses,
// interim notices, busy retries and terminal errors. It is separate from
// operational logging (slog); protocol capture yields a complete
// machine-readable trace for debugging device quirks offline.
//
// # Basic Usage
//
// Engines take a Logger implementation at construction:
//
//	// For development: log to console via slog
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// For capture: write to binary file
//	logger, _ := log.NewFileLogger("/var/log/avc/device.avclog")
//
//	// Both: use MultiLogger
//	logger := log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Capture files are a CBOR event stream with integer map keys. Reader
// iterates a file with optional filtering by engine, direction, category
// and time range.
package log
