package sched_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tickline/tickline/internal/domain"
	"github.com/tickline/tickline/internal/sched"
)

// firing records one delivery observed by a recordingEvent.
type firing struct {
	id        string
	scheduled domain.Time
	now       domain.Time
}

// recordingEvent appends every delivery to a shared log, preserving global
// firing order across all events in a test.
type recordingEvent struct {
	id  string
	log *[]firing
}

func (e *recordingEvent) Fire(scheduled, now domain.Time) {
	*e.log = append(*e.log, firing{id: e.id, scheduled: scheduled, now: now})
}

// backends enumerates every Scheduler implementation; all conformance tests
// run against each.
var backends = []struct {
	name string
	new  func() domain.Scheduler
}{
	{"multimap", func() domain.Scheduler { return sched.NewMultimap() }},
	{"heap", func() domain.Scheduler { return sched.NewHeap() }},
}

func TestCheckScenario(t *testing.T) {
	// Four entries at 10, 10, 5, 20 on a fresh scheduler, driven through
	// 0, 12, 20, 25.
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			s := b.new()
			var log []firing

			first10 := &recordingEvent{id: "first10", log: &log}
			second10 := &recordingEvent{id: "second10", log: &log}
			at5 := &recordingEvent{id: "at5", log: &log}
			at20 := &recordingEvent{id: "at20", log: &log}

			s.Schedule(first10, 10)
			s.Schedule(second10, 10)
			s.Schedule(at5, 5)
			s.Schedule(at20, 20)

			assert.False(t, s.Check(0), "nothing is due at 0")
			assert.Empty(t, log)

			require.True(t, s.Check(12))
			require.Len(t, log, 3)
			assert.Equal(t, firing{id: "at5", scheduled: 5, now: 12}, log[0])
			assert.Equal(t, firing{id: "first10", scheduled: 10, now: 12}, log[1],
				"equal-time entries fire in schedule order")
			assert.Equal(t, firing{id: "second10", scheduled: 10, now: 12}, log[2])

			require.True(t, s.Check(20))
			require.Len(t, log, 4)
			assert.Equal(t, firing{id: "at20", scheduled: 20, now: 20}, log[3])

			assert.False(t, s.Check(25), "nothing pending")
			assert.Len(t, log, 4)
		})
	}
}

func TestNoEarlyFiring(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			s := b.new()
			var log []firing
			s.Schedule(&recordingEvent{id: "e", log: &log}, 100)

			for now := domain.Time(0); now < 100; now += 7 {
				assert.False(t, s.Check(now), "Check(%d) must not fire an entry scheduled at 100", now)
			}
			assert.Empty(t, log)

			require.True(t, s.Check(100))
			require.Len(t, log, 1)
			assert.Equal(t, domain.Time(100), log[0].now)
		})
	}
}

func TestSchedulingIntoThePast(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			s := b.new()
			var log []firing

			require.False(t, s.Check(50))

			// An entry behind the clock is immediately eligible.
			s.Schedule(&recordingEvent{id: "late", log: &log}, 10)
			require.True(t, s.Check(50))
			require.Len(t, log, 1)
			assert.Equal(t, domain.Time(10), log[0].scheduled)
			assert.Equal(t, domain.Time(50), log[0].now)
		})
	}
}

func TestClockNeverRegresses(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			s := b.new()
			var log []firing

			require.False(t, s.Check(40))

			// A Check with a smaller value must not move the clock backward:
			// the entry at 30 is already due and fires with now=40.
			s.Schedule(&recordingEvent{id: "e", log: &log}, 30)
			require.True(t, s.Check(5))
			require.Len(t, log, 1)
			assert.Equal(t, domain.Time(40), log[0].now,
				"now delivered to Fire must reflect the high-water clock")
		})
	}
}

func TestEntryFiresAtMostOnce(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			s := b.new()
			var log []firing
			s.Schedule(&recordingEvent{id: "e", log: &log}, 10)

			require.True(t, s.Check(10))
			assert.False(t, s.Check(10))
			assert.False(t, s.Check(1000))
			assert.Len(t, log, 1)
		})
	}
}

func TestSameEventScheduledRepeatedly(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			s := b.new()
			var log []firing
			ev := &recordingEvent{id: "shared", log: &log}

			// Three entries for one instance, two of them at the same time.
			s.Schedule(ev, 5)
			s.Schedule(ev, 5)
			s.Schedule(ev, 9)

			require.True(t, s.Check(9))
			require.Len(t, log, 3, "each scheduling produces an independent firing")
			assert.Equal(t, domain.Time(5), log[0].scheduled)
			assert.Equal(t, domain.Time(5), log[1].scheduled)
			assert.Equal(t, domain.Time(9), log[2].scheduled)
		})
	}
}

func TestFiringOrderIsNonDecreasing(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			s := b.new()
			var log []firing

			// Schedule in deliberately shuffled time order.
			times := []domain.Time{17, 3, 3, 42, 0, 25, 17, 8}
			for i, at := range times {
				s.Schedule(&recordingEvent{id: fmt.Sprintf("e%d", i), log: &log}, at)
			}

			require.True(t, s.Check(50))
			require.Len(t, log, len(times))
			for i := 1; i < len(log); i++ {
				assert.LessOrEqual(t, log[i-1].scheduled, log[i].scheduled,
					"firing %d out of order", i)
			}
		})
	}
}

func TestReturnContract(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			s := b.new()

			assert.False(t, s.Check(0), "empty scheduler")
			assert.False(t, s.Check(1_000_000), "empty scheduler after clock advance")

			var log []firing
			s.Schedule(&recordingEvent{id: "e", log: &log}, 2_000_000)
			assert.False(t, s.Check(1_999_999), "pending but not due")
			assert.True(t, s.Check(2_000_000))
		})
	}
}

func TestLen(t *testing.T) {
	t.Run("multimap", func(t *testing.T) {
		s := sched.NewMultimap()
		var log []firing
		s.Schedule(&recordingEvent{id: "a", log: &log}, 10)
		s.Schedule(&recordingEvent{id: "b", log: &log}, 20)
		assert.Equal(t, 2, s.Len())

		s.Check(15)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("heap", func(t *testing.T) {
		s := sched.NewHeap()
		var log []firing
		s.Schedule(&recordingEvent{id: "a", log: &log}, 10)
		s.Schedule(&recordingEvent{id: "b", log: &log}, 20)
		assert.Equal(t, 2, s.Len())

		s.Check(15)
		assert.Equal(t, 1, s.Len())
	})
}
