package domain

// Event is a unit of behavior invoked when its scheduled time arrives.
// An event has no intrinsic identity beyond object identity: the same
// instance may be scheduled any number of independent times, each producing
// one independent future firing.
type Event interface {
	// Fire delivers the event. scheduled is the time this firing was
	// scheduled for; now is the scheduler's current clock value at the moment
	// of firing. Fire must not fail - any invariant violation is reported by
	// the caller through out-of-band state.
	Fire(scheduled, now Time)
}

// Scheduler is a container for events to be fired in the future. The
// scheduler references events, it never owns them: the caller must keep a
// scheduled event alive until it has fired or is guaranteed never to be
// checked again.
//
// A Scheduler instance is single-threaded. All state (pending entries and
// the current clock) is instance-local.
type Scheduler interface {
	// Schedule inserts a new pending entry firing ev at time at. Scheduling
	// into the past is legal and makes the entry immediately eligible.
	// Schedule always succeeds.
	Schedule(ev Event, at Time)

	// Check advances the scheduler's clock to now if now is ahead of it,
	// then fires every pending entry whose scheduled time is at or before
	// the updated clock, exactly once, in non-decreasing scheduled-time
	// order. Fired entries are removed. The relative order of entries that
	// share a scheduled time is implementation-defined.
	//
	// Callers should supply non-decreasing values across calls; the clock
	// never moves backward even if they do not.
	//
	// Check returns true if at least one entry fired.
	Check(now Time) bool
}
