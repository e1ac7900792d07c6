// Package sched contains the Scheduler implementations.
package sched

import (
	"sort"

	"github.com/tickline/tickline/internal/domain"
)

// pending is one (scheduledTime, event) entry awaiting firing.
type pending struct {
	at domain.Time
	ev domain.Event
}

// Multimap is the reference Scheduler: an ordered duplicate-key collection
// over a sorted slice, mirroring a multimap keyed by scheduled time. Entries
// sharing a time keep their arrival order.
//
// This is a deliberately simple baseline, not a finished production
// scheduler. Schedule pays O(log n) to locate the insertion point (plus the
// shift), which is its known weak path; Check is amortized O(1) per fired
// entry when polled steadily. A structure with near-constant-time insertion,
// such as a bucketed calendar keyed by discretized time, should supersede it
// where insert cost matters. See Heap for the in-tree alternative.
type Multimap struct {
	entries []pending
	clock   domain.Time
}

// NewMultimap creates an empty Multimap with its clock at zero.
func NewMultimap() *Multimap {
	return &Multimap{}
}

// Schedule inserts ev at the upper bound of its time key, so equal-time
// entries fire in the order they were scheduled.
func (s *Multimap) Schedule(ev domain.Event, at domain.Time) {
	i := sort.Search(len(s.entries), func(i int) bool { return s.entries[i].at > at })
	s.entries = append(s.entries, pending{})
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = pending{at: at, ev: ev}
}

// Check advances the clock monotonically, fires every due entry in ascending
// time order, then removes the fired prefix in one bulk operation. Fire must
// not mutate the scheduler that is delivering it.
func (s *Multimap) Check(now domain.Time) bool {
	if now > s.clock {
		s.clock = now
	}
	i := 0
	for ; i < len(s.entries); i++ {
		if s.entries[i].at > s.clock {
			break
		}
		s.entries[i].ev.Fire(s.entries[i].at, s.clock)
	}
	if i == 0 {
		return false
	}
	n := copy(s.entries, s.entries[i:])
	clear(s.entries[n:]) // drop event references so they can be collected
	s.entries = s.entries[:n]
	return true
}

// Len returns the number of pending entries.
func (s *Multimap) Len() int {
	return len(s.entries)
}

// Ensure Multimap implements Scheduler at compile time.
var _ domain.Scheduler = (*Multimap)(nil)
