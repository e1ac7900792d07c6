package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"strconv"
	"syscall"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/tickline/tickline/internal/config"
	"github.com/tickline/tickline/internal/domain"
	"github.com/tickline/tickline/internal/observability"
	"github.com/tickline/tickline/internal/sched"
)

// Params configures one benchmark command.
type Params struct {
	// Name identifies the command (e.g. "schedbench").
	Name string

	// Usage is the positional-argument synopsis, e.g. "<numsamples>".
	Usage string

	// NumArgs is the number of required positional arguments.
	NumArgs int

	// Workload builds the schedule plan from the parsed arguments.
	Workload func(g *Generator, args []uint64) *Workload
}

// Main executes the full command lifecycle: argument parsing, signal
// handling, config loading, observability initialization, the benchmark run,
// the fixed console report, and observability shutdown in reverse init
// order. It returns the process exit code; a non-nil error means setup
// failed before the report could be produced.
//
// The console contract on out: too few arguments prints a usage message and
// exits 0; otherwise the timings line is printed followed by "Success!"
// (exit 0) or "Failed!" (exit 1).
func Main(ctx context.Context, p Params, args []string, out io.Writer) (int, error) {
	prog := p.Name
	if len(args) > 0 {
		prog = args[0]
	}
	if len(args)-1 < p.NumArgs {
		fmt.Fprintf(out, "Usage:\n\t%s %s\n", prog, p.Usage)
		return 0, nil
	}

	parsed := make([]uint64, 0, p.NumArgs)
	for _, raw := range args[1 : 1+p.NumArgs] {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return 1, fmt.Errorf("%w: %q", domain.ErrBadArgument, raw)
		}
		parsed = append(parsed, v)
	}

	// Signal-based cancellation: ctx.Done() closes on SIGTERM/SIGINT. The
	// runner only honors it between phases, so a timed phase is never cut
	// short.
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Load configuration
	cfg, err := config.Load(ctx)
	if err != nil {
		return 1, fmt.Errorf("load config: %w", err)
	}

	// Initialize structured logging
	logger := observability.InitLogger(observability.LogConfig{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: p.Name,
		Environment: cfg.Environment,
	})

	// --- Startup order: tracer -> metrics -> benchmark ---

	tracerProvider, err := observability.InitTracer(ctx, observability.TracerConfig{
		ServiceName:    p.Name,
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTEL.Endpoint,
	})
	if err != nil {
		return 1, fmt.Errorf("initialize tracer: %w", err)
	}

	metricsProvider, err := observability.InitMetrics(ctx, observability.MetricsConfig{
		ServiceName:    p.Name,
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTEL.Endpoint,
	})
	if err != nil {
		return 1, fmt.Errorf("initialize metrics: %w", err)
	}

	// Shutdown is explicit reverse of startup: metrics first, then tracer.
	shutdown := func() {
		otelCtx, otelCancel := context.WithTimeout(context.Background(), domain.ShutdownOTELTimeout)
		defer otelCancel()
		if shutdownErr := metricsProvider.Shutdown(otelCtx); shutdownErr != nil {
			logger.Error("failed to shutdown metrics", slog.String("error", shutdownErr.Error()))
		}
		if shutdownErr := tracerProvider.Shutdown(otelCtx); shutdownErr != nil {
			logger.Error("failed to shutdown tracer", slog.String("error", shutdownErr.Error()))
		}
	}

	res, runErr := execute(ctx, p, cfg, logger, parsed)
	if runErr != nil && !domain.IsValidationError(runErr) {
		shutdown()
		return 1, runErr
	}

	recordMetrics(ctx, logger, res)
	shutdown()

	// Fixed report surface.
	fmt.Fprintln(out, res.TimingsLine())
	fmt.Fprintln(out, res.VerdictLine())

	if runErr != nil {
		logger.Error("benchmark failed validation", slog.String("error", runErr.Error()))
		return 1, nil
	}
	logger.Info("benchmark complete", res.LogAttrs()...)
	return 0, nil
}

// execute composes the scheduler, generator, and runner, then runs the
// workload under the lifecycle errgroup: one goroutine does the sequential
// run, a second one reports an interrupt if the signal context fires first.
func execute(ctx context.Context, p Params, cfg *config.Config, logger *slog.Logger, args []uint64) (*Result, error) {
	scheduler, err := newScheduler(cfg)
	if err != nil {
		return nil, err
	}

	gen := NewGenerator(cfg.Seed, cfg.SpanFactor)
	w := p.Workload(gen, args)
	logger.Info("workload generated",
		slog.Int("entries", len(w.Entries)),
		slog.Uint64("expected", w.Expected),
		slog.Uint64("horizon", uint64(w.Horizon)),
		slog.String("scheduler", cfg.Scheduler),
	)

	ctx, span := observability.Tracer("tickline/bench").Start(ctx, p.Name+".run",
		trace.WithAttributes(
			attribute.Int("bench.entries", len(w.Entries)),
			attribute.String("bench.scheduler", cfg.Scheduler),
		))
	defer span.End()

	runner := &Runner{
		Scheduler: scheduler,
		Clock:     domain.RealClock{},
		Step:      domain.Time(cfg.CheckStep),
		Logger:    observability.LoggerFromContext(ctx),
	}

	runCtx, done := context.WithCancel(ctx)
	defer done()
	g, gctx := errgroup.WithContext(runCtx)

	var res *Result
	var runErr error
	g.Go(func() error {
		defer done()
		res, runErr = runner.Run(gctx, w)
		if runErr != nil && !domain.IsValidationError(runErr) {
			return runErr
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			logger.Warn("benchmark interrupted, aborting between phases")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, runErr
}

// newScheduler maps the configured backend name to an implementation.
func newScheduler(cfg *config.Config) (domain.Scheduler, error) {
	switch cfg.Scheduler {
	case config.SchedulerMultimap:
		return sched.NewMultimap(), nil
	case config.SchedulerHeap:
		return sched.NewHeap(), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrBadScheduler, cfg.Scheduler)
	}
}

// recordMetrics reports the run into the benchmark instruments. Export is a
// no-op unless an OTLP endpoint was configured.
func recordMetrics(ctx context.Context, logger *slog.Logger, res *Result) {
	bm, err := observability.NewBenchMetrics(observability.Meter("tickline/bench"))
	if err != nil {
		logger.Error("failed to create bench metrics", slog.String("error", err.Error()))
		return
	}
	bm.ScheduleNsPerOp.Record(ctx, float64(res.ScheduleAvg.Nanoseconds()))
	bm.CheckNsPerOp.Record(ctx, float64(res.CheckAvg.Nanoseconds()))
	bm.EventsFired.Add(ctx, int64(res.Fired))
}
