package bench

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"

	"github.com/tickline/tickline/internal/domain"
)

// Entry is one (event, time) pair the harness will hand to Schedule.
type Entry struct {
	Ev domain.Event
	At domain.Time
}

// Workload is a fully generated schedule plan for one run. Generation is its
// own phase: by the time a Workload exists, no random draws or allocations
// remain between the timing brackets.
type Workload struct {
	// Notifier is shared by every probe event in Entries.
	Notifier *Notifier

	// Entries lists the scheduling calls in the order they will be made.
	Entries []Entry

	// Expected is the exact number of firings a correct run produces.
	Expected uint64

	// Horizon is the exclusive upper bound the scheduling times were drawn
	// from; the drive loop runs the clock through it inclusively.
	Horizon domain.Time
}

// Generator draws randomized workloads. The distribution is uniform over
// [0, spanFactor*samples), proportional to sample count so the pending set
// density stays comparable across sizes.
type Generator struct {
	rng        *rand.Rand
	spanFactor uint64
}

// NewGenerator creates a Generator. A zero seed draws one from the OS
// entropy source; any other value gives a reproducible sequence.
func NewGenerator(seed, spanFactor uint64) *Generator {
	if seed == 0 {
		seed = entropySeed()
	}
	return &Generator{
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		spanFactor: spanFactor,
	}
}

// entropySeed reads a non-deterministic seed from the OS.
func entropySeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand.Read does not fail on supported platforms.
		panic(err)
	}
	return binary.LittleEndian.Uint64(b[:])
}

// SingleShot draws one future time for each of samples distinct probe
// instances. A correct run fires exactly samples times.
func (g *Generator) SingleShot(samples uint64) *Workload {
	horizon := domain.Time(g.spanFactor * samples)
	w := &Workload{
		Notifier: &Notifier{},
		Entries:  make([]Entry, 0, samples),
		Expected: samples,
		Horizon:  horizon,
	}
	for range samples {
		w.Entries = append(w.Entries, Entry{
			Ev: NewProbeEvent(w.Notifier),
			At: domain.Time(g.rng.Uint64N(uint64(horizon))),
		})
	}
	return w
}

// Repost draws reposts independent times for each of samples probe
// instances, scheduling the same instance once per draw. A correct run fires
// exactly samples*reposts times, and because every probe shares one
// Notifier, global firing-order monotonicity is checked across all of them.
func (g *Generator) Repost(samples, reposts uint64) *Workload {
	horizon := domain.Time(g.spanFactor * samples)
	w := &Workload{
		Notifier: &Notifier{},
		Entries:  make([]Entry, 0, samples*reposts),
		Expected: samples * reposts,
		Horizon:  horizon,
	}
	for range samples {
		ev := NewProbeEvent(w.Notifier)
		for range reposts {
			w.Entries = append(w.Entries, Entry{
				Ev: ev,
				At: domain.Time(g.rng.Uint64N(uint64(horizon))),
			})
		}
	}
	return w
}
