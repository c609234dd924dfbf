// Package config resolves run settings from an optional .env file, the
// process environment and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/tourvns/tsp"
)

// Environment keys.
const (
	EnvMatrix            = "TOURVNS_MATRIX"
	EnvMaxAttempts       = "TOURVNS_MAX_ATTEMPTS"
	EnvNeighbourhoodSize = "TOURVNS_NEIGHBOURHOOD_SIZE"
	EnvIterations        = "TOURVNS_ITERATIONS"
	EnvSeed              = "TOURVNS_SEED"
	EnvCadence           = "TOURVNS_CADENCE"
	EnvBestImprovement   = "TOURVNS_BEST_IMPROVEMENT"
	EnvMetricClosure     = "TOURVNS_METRIC_CLOSURE"
	EnvLogLevel          = "TOURVNS_LOG_LEVEL"
)

// Config is the resolved set of run settings.
type Config struct {
	MatrixPath      string
	Params          tsp.Params
	Seed            int64
	Cadence         tsp.Cadence
	BestImprovement bool
	MetricClosure   bool
	LogLevel        slog.Level
}

// LoadDotEnv loads the given .env files (".env" when none are named) into
// the environment without overriding variables that are already set.
// A missing file is not an error; it reports loaded=false.
func LoadDotEnv(paths ...string) (loaded bool, err error) {
	if err = godotenv.Load(paths...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("load .env: %w", err)
	}
	return true, nil
}

// ParseParams converts raw strings into tsp.Params. Values that are empty,
// unparsable or non-positive fall back to the defaults (25, 5, 1000).
func ParseParams(maxAttempts, neighbourhoodSize, iterations string) tsp.Params {
	return tsp.Params{
		MaxAttempts:       positiveOr(maxAttempts, tsp.DefaultMaxAttempts),
		NeighbourhoodSize: positiveOr(neighbourhoodSize, tsp.DefaultNeighbourhoodSize),
		Iterations:        positiveOr(iterations, tsp.DefaultIterations),
	}
}

// FromEnv reads every setting from the environment. Params never fail (see
// ParseParams); a malformed seed, cadence, boolean or log level does.
func FromEnv() (Config, error) {
	cfg := Config{
		MatrixPath: getEnv(EnvMatrix, ""),
		Params: ParseParams(
			os.Getenv(EnvMaxAttempts),
			os.Getenv(EnvNeighbourhoodSize),
			os.Getenv(EnvIterations),
		),
	}

	var err error
	if cfg.Seed, err = strconv.ParseInt(getEnv(EnvSeed, "0"), 10, 64); err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvSeed, err)
	}
	if cfg.Cadence, err = tsp.ParseCadence(getEnv(EnvCadence, "")); err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvCadence, err)
	}
	if cfg.BestImprovement, err = strconv.ParseBool(getEnv(EnvBestImprovement, "false")); err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvBestImprovement, err)
	}
	if cfg.MetricClosure, err = strconv.ParseBool(getEnv(EnvMetricClosure, "false")); err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvMetricClosure, err)
	}
	if err = cfg.LogLevel.UnmarshalText([]byte(getEnv(EnvLogLevel, "info"))); err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}

	return cfg, nil
}

// Bind registers flags whose defaults are the current values of c, so
// parsing them layers flags over whatever c was loaded from. The three
// search params follow ParseParams: an unparsable or non-positive value
// selects the default instead of failing.
func (c *Config) Bind(flags *flag.FlagSet) {
	flags.StringVar(&c.MatrixPath, "matrix", c.MatrixPath, "path to the tab-delimited distance table")
	bindParam(flags, &c.Params.MaxAttempts, "attempts", tsp.DefaultMaxAttempts,
		"local search attempts without improvement")
	bindParam(flags, &c.Params.NeighbourhoodSize, "neighbourhood", tsp.DefaultNeighbourhoodSize,
		"candidates per attempt and max shaking strength")
	bindParam(flags, &c.Params.Iterations, "iterations", tsp.DefaultIterations,
		"VNS iterations")
	flags.Int64Var(&c.Seed, "seed", c.Seed, "RNG seed; 0 picks a fresh one")
	flags.Func("cadence", "3-opt cadence: stall, alternate or never (default "+c.Cadence.String()+")", func(s string) error {
		cd, err := tsp.ParseCadence(s)
		if err != nil {
			return err
		}
		c.Cadence = cd
		return nil
	})
	flags.BoolVar(&c.BestImprovement, "best", c.BestImprovement, "best-improvement 3-opt scans")
	flags.BoolVar(&c.MetricClosure, "closure", c.MetricClosure, "replace distances with shortest-path distances before solving")
	flags.TextVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
}

// bindParam registers a positive int flag that never fails to parse.
func bindParam(flags *flag.FlagSet, p *int, name string, fallback int, usage string) {
	flags.Func(name, fmt.Sprintf("%s (default %d; invalid values select %d)", usage, *p, fallback),
		func(s string) error {
			*p = positiveOr(s, fallback)
			return nil
		})
}

// Options maps the settings onto engine options. Callbacks are left unset.
func (c Config) Options() tsp.Options {
	opts := tsp.DefaultOptions()
	opts.Params = c.Params
	opts.Seed = c.Seed
	opts.Cadence = c.Cadence
	opts.BestImprovement = c.BestImprovement
	return opts
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func positiveOr(raw string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
