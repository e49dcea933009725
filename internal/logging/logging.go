// Package logging configures the process-wide zerolog logger.
//
// Diagnostics go to stderr so that command output on stdout stays
// machine-readable. Terminate every event with Msg or Send:
//
//	logging.Debug().Int("nodes", n).Dur("took", d).Msg("graph built")
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	Level     string    // trace, debug, info, warn, error, disabled; default warn
	Format    string    // console or json; default console
	Timestamp bool      // include a time field
	Output    io.Writer // default os.Stderr
}

// DefaultConfig returns the configuration used before Init is called.
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "console",
		Output: os.Stderr,
	}
}

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

func init() {
	initLogger(DefaultConfig())
}

// Init reconfigures the global logger. It is safe to call more than once.
func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	initLogger(cfg)
}

// initLogger must be called with mu held.
func initLogger(cfg Config) {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339

	output := cfg.Output
	if !strings.EqualFold(cfg.Format, "json") {
		output = zerolog.ConsoleWriter{
			Out:        cfg.Output,
			TimeFormat: "15:04:05",
			NoColor:    true,
		}
	}

	l := zerolog.New(output)
	if cfg.Timestamp {
		l = l.With().Timestamp().Logger()
	}
	log = l
}

// parseLevel converts a level name to a zerolog.Level. Unknown names fall
// back to warn.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

// Logger returns the global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// With returns a child logger carrying a component field.
func With(component string) zerolog.Logger {
	l := Logger()
	return l.With().Str("component", component).Logger()
}

func Trace() *zerolog.Event {
	l := Logger()
	return l.Trace()
}

func Debug() *zerolog.Event {
	l := Logger()
	return l.Debug()
}

func Info() *zerolog.Event {
	l := Logger()
	return l.Info()
}

func Warn() *zerolog.Event {
	l := Logger()
	return l.Warn()
}

func Error() *zerolog.Event {
	l := Logger()
	return l.Error()
}
