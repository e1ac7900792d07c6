// Package domain contains the pure scheduling contract and types.
// No external dependencies allowed - this is the innermost ring of Clean Architecture.
package domain

// Time is a count of elapsed time units since an arbitrary epoch.
// It is used both as a scheduling key and as a scheduler's internal clock
// value. Values are totally ordered; wraparound is not handled at the scales
// this core is meant for.
type Time uint64
