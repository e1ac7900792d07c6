package domain

import "time"

// Normative workload parameters. These are compiled defaults that can be
// overridden via configuration.
const (
	// DefaultCheckStep is the clock increment between successive Check calls
	// in the benchmark drive loop.
	DefaultCheckStep Time = 5

	// DefaultSpanFactor scales the scheduling horizon: times are drawn
	// uniformly from [0, DefaultSpanFactor * numsamples).
	DefaultSpanFactor = 10

	// Graceful shutdown
	ShutdownOTELTimeout = 5 * time.Second // Max time to flush metrics and traces on exit
)
