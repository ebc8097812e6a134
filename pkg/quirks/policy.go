package quirks

import "time"

// Default policy values. They suit the common case of a device that answers
// an FCP transaction within a bus reset interval.
const (
	// DefaultTimeout bounds one exchange, including the wait for a
	// deferred final response.
	DefaultTimeout = 200 * time.Millisecond

	// DefaultRetryLimit is the number of retries after a busy response.
	DefaultRetryLimit = 3

	// DefaultBackoffInitial is the delay before the first busy retry.
	DefaultBackoffInitial = 50 * time.Millisecond

	// DefaultBackoffMax caps the delay between busy retries.
	DefaultBackoffMax = 400 * time.Millisecond

	// DefaultBackoffMultiplier is the factor by which the delay grows.
	DefaultBackoffMultiplier = 2.0
)

// Backoff configures the delay sequence between busy retries.
type Backoff struct {
	Initial    time.Duration
	Max        time.Duration
	Multiplier float64
}

// Policy is the set of timing knobs for one device's transactions.
type Policy struct {
	// Timeout bounds a single exchange.
	Timeout time.Duration

	// RetryLimit is the number of additional attempts after a busy
	// response before the transaction fails.
	RetryLimit int

	// Backoff shapes the delays between those attempts.
	Backoff Backoff
}

// DefaultPolicy returns the policy used when no override applies.
func DefaultPolicy() Policy {
	return Policy{
		Timeout:    DefaultTimeout,
		RetryLimit: DefaultRetryLimit,
		Backoff: Backoff{
			Initial:    DefaultBackoffInitial,
			Max:        DefaultBackoffMax,
			Multiplier: DefaultBackoffMultiplier,
		},
	}
}

// merged returns p with zero fields filled from the default policy.
func (p Policy) merged() Policy {
	def := DefaultPolicy()
	if p.Timeout <= 0 {
		p.Timeout = def.Timeout
	}
	if p.RetryLimit <= 0 {
		p.RetryLimit = def.RetryLimit
	}
	if p.Backoff.Initial <= 0 {
		p.Backoff.Initial = def.Backoff.Initial
	}
	if p.Backoff.Max <= 0 {
		p.Backoff.Max = def.Backoff.Max
	}
	if p.Backoff.Multiplier <= 1 {
		p.Backoff.Multiplier = def.Backoff.Multiplier
	}
	return p
}
