package bench

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tickline/tickline/internal/domain"
	"github.com/tickline/tickline/internal/observability"
)

// Runner drives one workload through its phases: schedule-all, check-loop,
// validate. Phases run strictly sequentially; that is what makes the
// per-operation timings meaningful.
type Runner struct {
	// Scheduler is the implementation under test.
	Scheduler domain.Scheduler

	// Clock brackets the timed phases. Defaults to RealClock.
	Clock domain.Clock

	// Step is the clock increment between Check calls. Defaults to
	// domain.DefaultCheckStep.
	Step domain.Time

	// Logger receives phase diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Result reports one completed run. It is produced even when validation
// fails, because the timing report is part of the console contract either
// way.
type Result struct {
	RunID uuid.UUID

	// Operation counts.
	ScheduleOps uint64
	CheckCalls  uint64
	Fired       uint64
	Expected    uint64

	// Per-operation averages: schedule phase per Schedule call, check phase
	// per firing.
	ScheduleAvg time.Duration
	CheckAvg    time.Duration

	// Disorder mirrors the probe error flag.
	Disorder bool
}

// Passed reports whether the run satisfied both validation conditions.
func (r *Result) Passed() bool {
	return r.Fired == r.Expected && !r.Disorder
}

// Run executes the workload. The returned error wraps
// domain.ErrFireCountMismatch or domain.ErrFiringOrder on validation
// failure; in that case the Result is still valid. ctx is consulted between
// phases only - a phase in progress is never interrupted.
func (r *Runner) Run(ctx context.Context, w *Workload) (*Result, error) {
	clock := r.Clock
	if clock == nil {
		clock = domain.RealClock{}
	}
	step := r.Step
	if step == 0 {
		step = domain.DefaultCheckStep
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	res := &Result{
		RunID:       uuid.New(),
		ScheduleOps: uint64(len(w.Entries)),
		Expected:    w.Expected,
	}
	logger = logger.With(slog.String("run_id", res.RunID.String()))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Spans are no-ops unless the command wired a tracer provider.
	tracer := observability.Tracer("tickline/bench")

	// Phase 1: schedule every entry, bracketed.
	_, scheduleSpan := tracer.Start(ctx, "bench.schedule")
	start := clock.Now()
	for _, e := range w.Entries {
		r.Scheduler.Schedule(e.Ev, e.At)
	}
	scheduleElapsed := clock.Now().Sub(start)
	scheduleSpan.End()
	logger.Debug("schedule phase complete",
		slog.Uint64("entries", res.ScheduleOps),
		slog.Duration("elapsed", scheduleElapsed),
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Phase 2: drive the clock through the horizon inclusively. The draw
	// range is half-open, so the final Check at the horizon is what
	// guarantees completeness for draws inside the last step.
	_, checkSpan := tracer.Start(ctx, "bench.check")
	start = clock.Now()
	for now := domain.Time(0); now <= w.Horizon; now += step {
		r.Scheduler.Check(now)
		res.CheckCalls++
	}
	checkElapsed := clock.Now().Sub(start)
	checkSpan.End()

	res.Fired = w.Notifier.Fired
	res.Disorder = w.Notifier.Disorder
	if res.ScheduleOps > 0 {
		res.ScheduleAvg = scheduleElapsed / time.Duration(res.ScheduleOps)
	}
	if res.Fired > 0 {
		res.CheckAvg = checkElapsed / time.Duration(res.Fired)
	}
	logger.Debug("check phase complete",
		slog.Uint64("check_calls", res.CheckCalls),
		slog.Uint64("fired", res.Fired),
		slog.Duration("elapsed", checkElapsed),
	)

	// Phase 3: validate.
	if res.Fired != res.Expected {
		return res, fmt.Errorf("%w: fired %d, expected %d",
			domain.ErrFireCountMismatch, res.Fired, res.Expected)
	}
	if res.Disorder {
		return res, fmt.Errorf("%w: last now %d",
			domain.ErrFiringOrder, w.Notifier.LastNow)
	}
	return res, nil
}
