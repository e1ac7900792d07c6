// Package bench is the correctness-and-throughput harness for the scheduler
// core: instrumented probe events, randomized workload generation, the phased
// drive loop with per-operation timing, and the shared command lifecycle.
package bench

import "github.com/tickline/tickline/internal/domain"

// Notifier aggregates firing observations across every probe event sharing
// it. One Notifier spans a whole benchmark run, which is what turns the
// per-event checks into a single global firing-order check. All fields are
// mutated only inside Fire; the harness is single-threaded, so no locking.
type Notifier struct {
	// Fired counts deliveries.
	Fired uint64

	// LastNow is the now value observed by the most recent firing,
	// regardless of which probe instance received it.
	LastNow domain.Time

	// Disorder is set when a firing observes now < scheduled or a now value
	// below LastNow. Once set it is never cleared.
	Disorder bool
}

// ProbeEvent is the instrumented Event the harness schedules. It has no
// state of its own beyond the shared Notifier, so one instance can be
// scheduled any number of times.
type ProbeEvent struct {
	n *Notifier
}

// NewProbeEvent creates a probe reporting into n.
func NewProbeEvent(n *Notifier) *ProbeEvent {
	return &ProbeEvent{n: n}
}

// Fire counts the delivery and checks both monotonicity conditions: the
// clock must have reached the scheduled time, and it must not have moved
// backward since the previous firing anywhere in the run. LastNow is updated
// unconditionally so a single regression cannot hide later ones.
func (e *ProbeEvent) Fire(scheduled, now domain.Time) {
	e.n.Fired++
	if now < scheduled || now < e.n.LastNow {
		e.n.Disorder = true
	}
	e.n.LastNow = now
}

// Ensure ProbeEvent implements Event at compile time.
var _ domain.Event = (*ProbeEvent)(nil)
