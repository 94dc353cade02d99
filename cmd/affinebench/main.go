package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/oliverbestmann/affine"
	"github.com/pkg/profile"
)

var errRoundTrip = errors.New("round trip failed")

type config struct {
	Iterations int
	Operation  string
	Profile    string
	Seed       uint64
	Verbose    bool
}

func main() {
	var cfg config

	flag.IntVar(&cfg.Iterations, "n", 100_000, "Number of matrices to process.")
	flag.StringVar(&cfg.Operation, "op", "all", "multiply|inverse|decompose|transform|all.")
	flag.StringVar(&cfg.Profile, "profile", "none", "none|cpu|mem.")
	flag.Uint64Var(&cfg.Seed, "seed", 1, "Seed for the random matrices.")
	flag.BoolVar(&cfg.Verbose, "v", false, "Enable debug logging.")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(cfg); err != nil {
		slog.Error("Benchmark failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

func run(cfg config) error {
	ops, err := selectOperations(cfg.Operation)
	if err != nil {
		return err
	}

	switch strings.ToLower(cfg.Profile) {
	case "none":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", cfg.Profile)
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	matrices := randomMatrices(rng, cfg.Iterations)

	slog.Debug("Generated matrices", slog.Int("count", len(matrices)), slog.Uint64("seed", cfg.Seed))

	for _, op := range ops {
		startTime := time.Now()

		checksum, err := op.run(matrices)
		if err != nil {
			return fmt.Errorf("operation %s: %w", op.name, err)
		}

		elapsed := time.Since(startTime)

		slog.Info("Operation finished",
			slog.String("op", op.name),
			slog.Int("n", len(matrices)),
			slog.Duration("elapsed", elapsed),
			slog.Duration("perOp", elapsed/time.Duration(max(1, len(matrices)))),
			slog.Float64("checksum", checksum),
		)
	}

	return nil
}

func randomMatrices(rng *rand.Rand, count int) []affine.Matrix2D {
	randomIn := func(min, max float64) float64 {
		return rng.Float64()*(max-min) + min
	}

	matrices := make([]affine.Matrix2D, 0, count)
	for len(matrices) < count {
		m := affine.Identity.
			Translate(randomIn(-100, 100), randomIn(-100, 100)).
			RotateAt(randomIn(-3, 3), affine.NewPoint2D(randomIn(-10, 10), randomIn(-10, 10))).
			ScaleNonUniform(randomIn(0.25, 4), randomIn(0.25, 4)).
			SkewX(randomIn(-0.5, 0.5))

		if !m.IsInvertible() {
			continue
		}

		matrices = append(matrices, m)
	}

	return matrices
}
