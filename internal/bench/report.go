package bench

import (
	"fmt"
	"log/slog"
)

// Console contract: these exact lines are the tool's stable output surface.
// Everything else goes through slog.
const (
	successLine = "Success!"
	failureLine = "Failed!"
)

// TimingsLine renders the fixed per-operation timing report, in nanoseconds.
func (r *Result) TimingsLine() string {
	return fmt.Sprintf("Timings schedule:%d check:%d",
		r.ScheduleAvg.Nanoseconds(), r.CheckAvg.Nanoseconds())
}

// VerdictLine renders the pass/fail line.
func (r *Result) VerdictLine() string {
	if r.Passed() {
		return successLine
	}
	return failureLine
}

// LogAttrs returns the result as structured attributes for diagnostics.
func (r *Result) LogAttrs() []any {
	return []any{
		slog.String("run_id", r.RunID.String()),
		slog.Uint64("schedule_ops", r.ScheduleOps),
		slog.Uint64("check_calls", r.CheckCalls),
		slog.Uint64("fired", r.Fired),
		slog.Uint64("expected", r.Expected),
		slog.Int64("schedule_ns_per_op", r.ScheduleAvg.Nanoseconds()),
		slog.Int64("check_ns_per_op", r.CheckAvg.Nanoseconds()),
		slog.Bool("disorder", r.Disorder),
	}
}
