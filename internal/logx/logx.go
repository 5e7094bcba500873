// internal/logx/logx.go

// Package logx configures the run logger: a console writer for humans plus
// an optional plain log file under the output directory.
package logx

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// LogFileName is created inside the output directory of every run.
const LogFileName = "ampliscan.log"

// New builds the logger. verbose selects debug level, quiet warn-only;
// verbose wins if both are set. dir == "" disables the file sink. The
// returned func closes the file and must be called on exit.
func New(console io.Writer, dir string, verbose, quiet bool) (zerolog.Logger, func(), error) {
	level := zerolog.InfoLevel
	if quiet {
		level = zerolog.WarnLevel
	}
	if verbose {
		level = zerolog.DebugLevel
	}

	cw := zerolog.ConsoleWriter{Out: console, TimeFormat: "15:04:05"}
	var w io.Writer = cw
	cleanup := func() {}

	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return zerolog.Nop(), cleanup, err
		}
		f, err := os.OpenFile(filepath.Join(dir, LogFileName),
			os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), cleanup, err
		}
		w = zerolog.MultiLevelWriter(cw, f)
		cleanup = func() { _ = f.Close() }
	}

	log := zerolog.New(w).Level(level).With().Timestamp().Str("app", "ampliscan").Logger()
	return log, cleanup, nil
}
