// Package logger provides diagnostics for luhnkit on stderr. Debug output is
// only emitted with --verbose; warnings are always shown.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu  sync.RWMutex
	log = newLogger(os.Stderr, false)
)

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
	return zerolog.New(out).Level(level).With().Str("app", "luhnkit").Logger()
}

// Init replaces the package logger. Tests pass a buffer as w.
func Init(w io.Writer, verbose bool) {
	mu.Lock()
	defer mu.Unlock()
	log = newLogger(w, verbose)
}

// L returns the current logger.
func L() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := log
	return &l
}

// Debug logs msg with alternating key/value pairs.
func Debug(msg string, kv ...any) {
	L().Debug().Fields(kv).Msg(msg)
}

func Warn(err error) {
	L().Warn().Err(err).Send()
}
