package bench_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tickline/tickline/internal/bench"
	"github.com/tickline/tickline/internal/domain"
)

func singleShotParams() bench.Params {
	return bench.Params{
		Name:    "schedbench",
		Usage:   "<numsamples>",
		NumArgs: 1,
		Workload: func(g *bench.Generator, args []uint64) *bench.Workload {
			return g.SingleShot(args[0])
		},
	}
}

func repostParams() bench.Params {
	return bench.Params{
		Name:    "repostbench",
		Usage:   "<numsamples> <numreposts>",
		NumArgs: 2,
		Workload: func(g *bench.Generator, args []uint64) *bench.Workload {
			return g.Repost(args[0], args[1])
		},
	}
}

func TestMainUsage(t *testing.T) {
	t.Run("single-shot without arguments", func(t *testing.T) {
		var out bytes.Buffer

		code, err := bench.Main(context.Background(), singleShotParams(), []string{"schedbench"}, &out)

		require.NoError(t, err)
		assert.Equal(t, 0, code, "missing arguments exit 0")
		assert.Equal(t, "Usage:\n\tschedbench <numsamples>\n", out.String())
	})

	t.Run("repost with one argument", func(t *testing.T) {
		var out bytes.Buffer

		code, err := bench.Main(context.Background(), repostParams(), []string{"repostbench", "100"}, &out)

		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.Equal(t, "Usage:\n\trepostbench <numsamples> <numreposts>\n", out.String())
	})
}

func TestMainBadArgument(t *testing.T) {
	var out bytes.Buffer

	code, err := bench.Main(context.Background(), singleShotParams(), []string{"schedbench", "many"}, &out)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadArgument)
	assert.Equal(t, 1, code)
	assert.Empty(t, out.String(), "no report when arguments do not parse")
}

func TestMainSingleShotRun(t *testing.T) {
	t.Setenv("SCHEDBENCH_SEED", "4242")
	var out bytes.Buffer

	code, err := bench.Main(context.Background(), singleShotParams(), []string{"schedbench", "500"}, &out)

	require.NoError(t, err)
	assert.Equal(t, 0, code)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Regexp(t, `^Timings schedule:\d+ check:\d+$`, lines[0])
	assert.Equal(t, "Success!", lines[1])
}

func TestMainRepostRun(t *testing.T) {
	t.Setenv("SCHEDBENCH_SEED", "4242")
	t.Setenv("SCHEDBENCH_SCHEDULER", "heap")
	var out bytes.Buffer

	code, err := bench.Main(context.Background(), repostParams(), []string{"repostbench", "100", "4"}, &out)

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Success!")
}

func TestMainBadSchedulerConfig(t *testing.T) {
	t.Setenv("SCHEDBENCH_SCHEDULER", "wheel")
	var out bytes.Buffer

	code, err := bench.Main(context.Background(), singleShotParams(), []string{"schedbench", "10"}, &out)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadScheduler)
	assert.Equal(t, 1, code)
	assert.Empty(t, out.String())
}
