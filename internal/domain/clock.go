package domain

import "time"

// Clock provides the current wall time. Implementations may be real
// (production) or deterministic (testing). The domain defines the interface;
// adapters provide implementations. The benchmark harness uses it to bracket
// its phases, so implementations should carry a monotonic reading.
//
// Clock is unrelated to Time: Time is the scheduler's own tick count, Clock
// is how long things take in the host process.
type Clock interface {
	// Now returns the current time. The returned time includes both wall
	// clock and monotonic readings when using RealClock.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
// It is a zero-allocation implementation (empty struct).
type RealClock struct{}

// Now returns time.Now().
func (RealClock) Now() time.Time {
	return time.Now()
}

// Ensure RealClock implements Clock at compile time.
var _ Clock = RealClock{}
