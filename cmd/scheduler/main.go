// Command scheduler reads a SolverInput JSON document from stdin,
// runs the construct-then-improve search pipeline, and writes a
// SolverOutput JSON document to stdout. Diagnostics go to stderr; the
// process exits 0 on every outcome except a malformed or invalid
// input, per spec §7.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	apperrors "github.com/Hadrian1992/HarmonogramMaster/pkg/errors"
	"github.com/Hadrian1992/HarmonogramMaster/internal/cli"
	"github.com/Hadrian1992/HarmonogramMaster/internal/config"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/logger"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/model"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/scheduler/search"
)

func main() {
	os.Exit(run())
}

func run() int {
	seed := flag.Int64("seed", 0, "deterministic search seed (0 uses the configured default)")
	timeout := flag.Duration("timeout", 0, "wall-clock cap for the solve (0 uses the configured default)")
	logLevel := flag.String("log-level", "", "override the configured log level")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "scheduler: failed to load configuration: %v\n", err)
		return apperrors.CodeInternal.ExitCode()
	}

	level := cfg.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	logger.Init(logger.Config{Level: level, Format: cfg.LogFormat, Output: "stderr", TimeFormat: time.RFC3339})

	var input model.SolverInput
	if appErr := cli.ReadInput(os.Stdin, &input); appErr != nil {
		return cli.Fail(appErr)
	}
	if err := input.Validate(); err != nil {
		return cli.Fail(apperrors.Wrap(err, apperrors.CodeInvalidDateRange, "input failed domain validation"))
	}

	searchCfg := search.Config{
		EarlyStopEnabled:     cfg.EarlyStop.Enabled,
		ScoreThreshold:       cfg.EarlyStop.ScoreThreshold,
		MinSolutions:         cfg.EarlyStop.MinSolutions,
		NoImprovementTimeout: cfg.EarlyStop.NoImprovementTimeout,
		WallClockCap:         cfg.SolveWallClockCap,
	}
	if *timeout > 0 {
		searchCfg.WallClockCap = *timeout
	}

	runSeed := cfg.DefaultSeed
	if *seed != 0 {
		runSeed = *seed
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	output, err := search.Solve(ctx, &input, searchCfg, runSeed)
	if err != nil {
		return cli.Fail(apperrors.Wrap(err, apperrors.CodeInternal, "solve failed unexpectedly"))
	}

	if err := cli.WriteOutput(os.Stdout, output); err != nil {
		fmt.Fprintf(os.Stderr, "scheduler: failed to write output: %v\n", err)
		return apperrors.CodeInternal.ExitCode()
	}
	return 0
}
