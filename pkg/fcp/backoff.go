package fcp

import (
	"time"

	"github.com/firewire-audio/avc-go/pkg/quirks"
)

// backoff produces the delay sequence between busy retries. Delays grow by
// the multiplier up to the cap. No jitter: a single engine never has two
// transactions racing.
type backoff struct {
	current    time.Duration
	max        time.Duration
	multiplier float64
}

func newBackoff(cfg quirks.Backoff) *backoff {
	return &backoff{
		current:    cfg.Initial,
		max:        cfg.Max,
		multiplier: cfg.Multiplier,
	}
}

// Next returns the delay to apply before the upcoming retry and advances
// the sequence.
func (b *backoff) Next() time.Duration {
	delay := b.current
	next := time.Duration(float64(b.current) * b.multiplier)
	if next > b.max {
		next = b.max
	}
	b.current = next
	return delay
}
