// Command gridroute draws a tank board, picks a routing strategy and prints
// the route it found.
//
//	gridroute -config scenario.yaml -seed 42 -runs 5 -log-level debug
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/gridroute/config"
	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/strategy"
	"github.com/katalvlaran/gridroute/walk"
)

type options struct {
	configPath string
	seed       int64
	strategy   string
	runs       int
	metrics    bool
}

func main() {
	var (
		configPath = flag.String("config", "", "scenario yaml (default: built-in 10x10 demo)")
		seed       = flag.Int64("seed", 0, "random seed; 0 keeps the scenario seed")
		strat      = flag.String("strategy", "", "force a strategy: auto|bfs|dijkstra|walk (default: from scenario)")
		runs       = flag.Int("runs", 1, "number of route queries")
		logLevel   = flag.String("log-level", "info", "log level: trace|debug|info|warn|error")
		metrics    = flag.Bool("metrics", false, "print Prometheus metrics to stderr before exiting")
	)
	flag.Parse()

	level, err := zerolog.ParseLevel(strings.ToLower(*logLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridroute: %v\n", err)
		os.Exit(2)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := options{
		configPath: *configPath,
		seed:       *seed,
		strategy:   *strat,
		runs:       *runs,
		metrics:    *metrics,
	}
	if err := run(ctx, logger, opts, os.Stdout, os.Stderr); err != nil {
		logger.Fatal().Err(err).Msg("gridroute failed")
	}
}

func run(ctx context.Context, logger zerolog.Logger, opts options, out, metricsOut io.Writer) error {
	sc, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}
	if opts.seed != 0 {
		sc.Seed = opts.seed
	}
	if opts.strategy != "" {
		sc.Strategy = opts.strategy
		sc.Normalize()
		if err := sc.Validate(); err != nil {
			return fmt.Errorf("-strategy: %w", err)
		}
	}
	if opts.runs <= 0 {
		return fmt.Errorf("-runs must be > 0 (got %d)", opts.runs)
	}

	rng := walk.NewRand(sc.Seed)
	b, err := sc.Board(rng)
	if err != nil {
		return fmt.Errorf("build board: %w", err)
	}
	start, goal := sc.Endpoints(b)
	logger.Info().
		Int("rows", b.Rows()).
		Int("cols", b.Cols()).
		Int("obstacles", b.Grid.BlockedCount()).
		Stringer("start", start).
		Stringer("goal", goal).
		Int64("seed", sc.Seed).
		Msg("board ready")

	reg := prometheus.NewRegistry()
	selOpts := append(sc.SelectorOptions(),
		strategy.WithLogger(logger),
		strategy.WithMetrics(strategy.NewMetrics(reg)),
	)
	sel := strategy.New(selOpts...)

	forced, isForced := sc.ForcedKind()
	for i := 0; i < opts.runs; i++ {
		useBFS, useDijkstra := strategy.DrawFlags(rng, sc.StrategyOdds())
		if isForced {
			useBFS, useDijkstra = forced.Flags()
		}
		logger.Info().
			Int("run", i+1).
			Str("strategy", strategy.Select(useBFS, useDijkstra).String()).
			Msg("computing route")

		res, err := sel.Route(ctx, strategy.Request{
			Grid:        b.Grid,
			Start:       start,
			Goal:        goal,
			UseBFS:      useBFS,
			UseDijkstra: useDijkstra,
			Rand:        rng,
		})
		if err != nil {
			return fmt.Errorf("run %d: %w", i+1, err)
		}
		printResult(out, b.Render(res.Path, start, goal), res)
	}

	if opts.metrics {
		return dumpMetrics(reg, metricsOut)
	}
	return nil
}

func printResult(w io.Writer, rendered string, res strategy.Result) {
	fmt.Fprint(w, rendered)
	if len(res.Path) == 0 {
		fmt.Fprintf(w, "%s: no valid route (%s)\n\n", res.Kind, res.Outcome)
		return
	}
	fmt.Fprintf(w, "%s: %s, %d hops, cost %d\n", res.Kind, res.Outcome, res.Path.Hops(), res.Cost)
	fmt.Fprintln(w, formatPath(res.Path))
	fmt.Fprintln(w)
}

func formatPath(p grid.Path) string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, " -> ")
}

func dumpMetrics(reg *prometheus.Registry, w io.Writer) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
