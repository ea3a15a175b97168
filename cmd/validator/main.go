// Command validator reads a SolverInput JSON document — whose
// "schedule" is encoded as SHIFT/FIXED/FIXED_SHIFT constraints — from
// stdin, runs the stateless rule walker over it, and writes a
// violation report to stdout. It exits non-zero only when the input
// itself is malformed or invalid; a clean pass and a pass reporting
// violations both exit 0, per spec §7.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/Hadrian1992/HarmonogramMaster/pkg/errors"
	"github.com/Hadrian1992/HarmonogramMaster/internal/cli"
	"github.com/Hadrian1992/HarmonogramMaster/internal/config"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/logger"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/model"
	"github.com/Hadrian1992/HarmonogramMaster/pkg/validator"
)

// report is the JSON envelope written to stdout.
type report struct {
	Status     string              `json:"status"` // OK/VIOLATIONS/ERROR
	Violations []validator.Violation `json:"violations"`
	Error      *string             `json:"error,omitempty"`
}

func main() {
	os.Exit(run())
}

func run() int {
	logLevel := flag.String("log-level", "", "override the configured log level")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "validator: failed to load configuration: %v\n", err)
		return apperrors.CodeInternal.ExitCode()
	}

	level := cfg.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	logger.Init(logger.Config{Level: level, Format: cfg.LogFormat, Output: "stderr", TimeFormat: time.RFC3339})

	var input model.SolverInput
	if appErr := cli.ReadInput(os.Stdin, &input); appErr != nil {
		writeError(appErr)
		return cli.Fail(appErr)
	}
	if err := input.Validate(); err != nil {
		appErr := apperrors.Wrap(err, apperrors.CodeInvalidDateRange, "input failed domain validation")
		writeError(appErr)
		return cli.Fail(appErr)
	}

	runID := uuid.New().String()
	log := logger.NewValidatorLogger()
	start := time.Now()

	v := validator.New(input.Employees)
	violations := v.Validate(&input)

	log.ValidationComplete(runID, len(violations), time.Since(start))

	status := "OK"
	if len(violations) > 0 {
		status = "VIOLATIONS"
	}
	out := report{Status: status, Violations: violations}
	if out.Violations == nil {
		out.Violations = []validator.Violation{}
	}

	if err := cli.WriteOutput(os.Stdout, out); err != nil {
		fmt.Fprintf(os.Stderr, "validator: failed to write output: %v\n", err)
		return apperrors.CodeInternal.ExitCode()
	}
	return 0
}

func writeError(appErr *apperrors.AppError) {
	msg := appErr.Error()
	out := report{Status: "ERROR", Violations: []validator.Violation{}, Error: &msg}
	_ = cli.WriteOutput(os.Stdout, out)
}
