// Package logger provides the structured logging framework shared by
// the scheduler and validator binaries.
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once   sync.Once
	logger zerolog.Logger
)

// Level aliases zerolog's level type.
type Level = zerolog.Level

const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	FatalLevel = zerolog.FatalLevel
)

// Config controls the global logger's level, format and sink.
type Config struct {
	Level      string `json:"level"`
	Format     string `json:"format"` // json/console
	Output     string `json:"output"` // stdout/stderr/file
	FilePath   string `json:"file_path,omitempty"`
	TimeFormat string `json:"time_format,omitempty"`
}

// DefaultConfig returns the logger's baseline configuration: info
// level, console format, stderr output — stdout is reserved for the
// CLI JSON contract.
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     "console",
		Output:     "stderr",
		TimeFormat: time.RFC3339,
	}
}

// Init sets up the global logger exactly once; later calls are no-ops.
func Init(cfg Config) {
	once.Do(func() {
		level := parseLevel(cfg.Level)
		zerolog.SetGlobalLevel(level)

		var output io.Writer
		switch cfg.Output {
		case "stdout":
			output = os.Stdout
		case "file":
			if cfg.FilePath != "" {
				if f, err := os.OpenFile(cfg.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
					output = f
				} else {
					output = os.Stderr
				}
			} else {
				output = os.Stderr
			}
		default:
			output = os.Stderr
		}

		if cfg.Format == "console" {
			output = zerolog.ConsoleWriter{Out: output, TimeFormat: cfg.TimeFormat}
		}

		logger = zerolog.New(output).With().Timestamp().Logger()
	})
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Get returns the global logger, initializing it with defaults on
// first use if Init was never called.
func Get() *zerolog.Logger {
	Init(DefaultConfig()) // no-op once Init has run
	return &logger
}

// Debug logs at debug level.
func Debug() *zerolog.Event { return Get().Debug() }

// Info logs at info level.
func Info() *zerolog.Event { return Get().Info() }

// Warn logs at warn level.
func Warn() *zerolog.Event { return Get().Warn() }

// Error logs at error level.
func Error() *zerolog.Event { return Get().Error() }

// Fatal logs at fatal level.
func Fatal() *zerolog.Event { return Get().Fatal() }

// WithError attaches err to an error-level event.
func WithError(err error) *zerolog.Event { return Get().Error().Err(err) }

// WithField returns a logger with one extra structured field attached.
func WithField(key string, value interface{}) *zerolog.Logger {
	l := Get().With().Interface(key, value).Logger()
	return &l
}

// SchedulerLogger emits the named solve-lifecycle events the search
// driver reports through (spec's observability sink).
type SchedulerLogger struct {
	base *zerolog.Logger
}

// NewSchedulerLogger tags every event with component=scheduler.
func NewSchedulerLogger() *SchedulerLogger {
	l := Get().With().Str("component", "scheduler").Logger()
	return &SchedulerLogger{base: &l}
}

// StartSolve records the beginning of a solve, tagged with the
// per-invocation run ID used to correlate log lines.
func (l *SchedulerLogger) StartSolve(runID string, employees, days int, seed int64) {
	l.base.Info().
		Str("run_id", runID).
		Int("employees", employees).
		Int("days", days).
		Int64("seed", seed).
		Msg("starting solve")
}

// IncumbentFound records one improved incumbent during local search.
func (l *SchedulerLogger) IncumbentFound(runID string, count, objective int, wallTime time.Duration) {
	l.base.Info().
		Str("run_id", runID).
		Int("incumbent", count).
		Int("objective", objective).
		Dur("wall_time", wallTime).
		Msg("incumbent found")
}

// ConstraintViolation records a hard-rule breach surfaced during
// full-schedule evaluation.
func (l *SchedulerLogger) ConstraintViolation(rule, details string) {
	l.base.Warn().
		Str("rule", rule).
		Str("details", details).
		Msg("constraint violation")
}

// SolveComplete records the final outcome of a solve.
func (l *SchedulerLogger) SolveComplete(runID, status string, duration time.Duration, objective int) {
	l.base.Info().
		Str("run_id", runID).
		Str("status", status).
		Dur("duration", duration).
		Int("objective", objective).
		Msg("solve complete")
}

// ValidatorLogger emits the named events the stateless validator
// reports through.
type ValidatorLogger struct {
	base *zerolog.Logger
}

// NewValidatorLogger tags every event with component=validator.
func NewValidatorLogger() *ValidatorLogger {
	l := Get().With().Str("component", "validator").Logger()
	return &ValidatorLogger{base: &l}
}

// ValidationComplete records the outcome of one validation pass.
func (l *ValidatorLogger) ValidationComplete(runID string, violations int, duration time.Duration) {
	l.base.Info().
		Str("run_id", runID).
		Int("violations", violations).
		Dur("duration", duration).
		Msg("validation complete")
}
