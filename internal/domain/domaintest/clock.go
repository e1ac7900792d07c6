// Package domaintest provides test doubles for the domain package.
package domaintest

import (
	"sync"
	"time"

	"github.com/tickline/tickline/internal/domain"
)

// FakeClock is a deterministic, advanceable clock for tests. Time is a
// dependency; inject it like any other. Use Advance/Set to control time
// progression instead of creating new clock instances, so phase timings in
// the harness become exact.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
}

// NewFakeClock creates a FakeClock set to the given time.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t}
}

// Now returns the fake clock's current time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Advance moves the fake clock forward by the given duration.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// Set changes the fake clock to a specific time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
}

// Ensure FakeClock implements Clock at compile time.
var _ domain.Clock = (*FakeClock)(nil)

// StepClock advances itself by a fixed step on every Now call. It makes
// elapsed-time arithmetic in the harness exact: a phase bracketed by two Now
// calls always measures one step.
type StepClock struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

// NewStepClock creates a StepClock starting at start and advancing by step
// per Now call.
func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{current: start, step: step}
}

// Now returns the clock's current time, then advances it by one step.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.current
	c.current = c.current.Add(c.step)
	return t
}

// Ensure StepClock implements Clock at compile time.
var _ domain.Clock = (*StepClock)(nil)
