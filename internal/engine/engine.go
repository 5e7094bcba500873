// internal/engine/engine.go

// Package engine adapts external in-silico PCR binaries behind one uniform
// contract. Two adapters exist: Ipcress drives the exonerate ipcress tool
// through a primer descriptor file, Ipcr drives an ipcr-style binary through
// command-line flags. Both normalize their result to (sequences, error)
// where a nil error with no sequences means "ran fine, no product".
package engine

import (
	"context"
	"strings"
)

// Runner is the adapter contract: one external invocation per genome file.
// The primer spec is bound at construction; it never changes within a run.
type Runner interface {
	Name() string
	Run(ctx context.Context, genomePath string) ([]string, error)
}

// ConfigError is fatal to the whole run. It marks a usage mistake (bad
// primers, bad flags, missing binary) that would fail identically on every
// genome, so the orchestrator aborts on first sight.
type ConfigError struct {
	Msg    string
	Stderr string
}

func (e *ConfigError) Error() string {
	return withStderr("engine configuration error: "+e.Msg, e.Stderr)
}

// RunError is contained to a single job: the affected genome contributes an
// empty report and the run keeps going.
type RunError struct {
	Msg    string
	Stderr string
}

func (e *RunError) Error() string {
	return withStderr("engine runtime error: "+e.Msg, e.Stderr)
}

func withStderr(msg, stderr string) string {
	s := strings.TrimSpace(stderr)
	if s == "" {
		return msg
	}
	return msg + ": " + s
}
