// Command tourvns reads a tab-delimited distance table, searches for a short
// closed tour with variable neighbourhood search and prints the result.
//
// Usage:
//
//	tourvns [flags] [table.tsv]
//
// Settings come from .env, TOURVNS_* environment variables and flags, with
// flags winning. SIGINT or SIGTERM stops the search and prints the best tour
// found so far.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/tourvns/internal/config"
	"github.com/katalvlaran/tourvns/matrix"
	"github.com/katalvlaran/tourvns/render"
	"github.com/katalvlaran/tourvns/runner"
	"github.com/katalvlaran/tourvns/tsp"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without process globals.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	loaded, err := config.LoadDotEnv()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	flags := flag.NewFlagSet("tourvns", flag.ContinueOnError)
	flags.SetOutput(stderr)
	cfg.Bind(flags)
	if err = flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if flags.NArg() > 0 {
		cfg.MatrixPath = flags.Arg(0)
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	if !loaded {
		logger.Debug("no .env file found, using environment variables")
	}
	if cfg.MatrixPath == "" {
		logger.Error("no distance table given", slog.String("hint", "pass a path or set "+config.EnvMatrix))
		return exitUsage
	}

	dm, labels, err := loadTable(cfg)
	if err != nil {
		logger.Error("load distance table", slog.String("error", err.Error()))
		return exitError
	}
	logger.Info("distance table loaded",
		slog.String("path", cfg.MatrixPath),
		slog.Int("cities", dm.Cities()),
		slog.Bool("metric_closure", cfg.MetricClosure),
	)

	r := runner.New(logger)
	if _, err = r.Start(ctx, dm, cfg.Options()); err != nil {
		logger.Error("start search", slog.String("error", err.Error()))
		return exitError
	}
	res, err := r.Wait(context.Background())
	if err != nil {
		logger.Error("search failed", slog.String("error", err.Error()))
		return exitError
	}
	if res.Status == tsp.StatusCancelled {
		logger.Warn("search interrupted, reporting best tour so far",
			slog.Int("iterations", res.Iterations))
	}

	rep, err := render.NewReport(dm, res.Tour)
	if err != nil {
		logger.Error("build report", slog.String("error", err.Error()))
		return exitError
	}
	if err = rep.WithLabels(labels).Write(stdout); err != nil {
		logger.Error("write report", slog.String("error", err.Error()))
		return exitError
	}
	fmt.Fprintf(stdout, "seed\t%d\n", res.Seed)

	return exitOK
}

func loadTable(cfg config.Config) (*tsp.DistanceMatrix, []string, error) {
	var opts []matrix.LoadOption
	if cfg.MetricClosure {
		opts = append(opts, matrix.WithAllowInf())
	}
	d, labels, err := matrix.LoadFile(cfg.MatrixPath, opts...)
	if err != nil {
		return nil, nil, err
	}
	if cfg.MetricClosure {
		if err = matrix.MetricClosure(d); err != nil {
			return nil, nil, err
		}
		if from, to, ok := unreachable(d); ok {
			return nil, nil, fmt.Errorf("metric closure: %s cannot reach %s: %w",
				labelOr(labels, from), labelOr(labels, to), matrix.ErrNaNInf)
		}
	}
	dm, err := tsp.NewDistanceMatrix(d)
	if err != nil {
		return nil, nil, fmt.Errorf("distance matrix: %w", err)
	}
	return dm, labels, nil
}

// unreachable returns the first pair still at +Inf after closure.
func unreachable(d *matrix.Dense) (int, int, bool) {
	n := d.Cols()
	for i, v := range d.RowMajor() {
		if math.IsInf(v, 1) {
			return i / n, i % n, true
		}
	}
	return 0, 0, false
}

func labelOr(labels []string, i int) string {
	if i < len(labels) && labels[i] != "" {
		return labels[i]
	}
	return fmt.Sprintf("city %d", i+1)
}
