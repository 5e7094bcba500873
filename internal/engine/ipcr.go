// internal/engine/ipcr.go
package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"ampliscan-core/extract"
	"ampliscan-core/primer"

	"github.com/rs/zerolog"
)

// Ipcr drives an ipcr-style binary entirely through flags and interprets
// its exit status: 0 = products on stdout, 1 = no product, 2 = bad
// invocation, anything higher = runtime failure.
type Ipcr struct {
	path    string
	spec    primer.Spec
	timeout time.Duration
	dryRun  bool
	log     zerolog.Logger
}

func NewIpcr(binary string, spec primer.Spec, timeout time.Duration, dryRun bool, log zerolog.Logger) *Ipcr {
	if binary == "" {
		binary = "ipcr"
	}
	return &Ipcr{path: binary, spec: spec, timeout: timeout, dryRun: dryRun, log: log}
}

func (r *Ipcr) Name() string { return "ipcr" }

func (r *Ipcr) Run(ctx context.Context, genomePath string) ([]string, error) {
	argv := []string{
		r.path,
		"--forward", r.spec.Forward,
		"--reverse", r.spec.Reverse,
		"--sequences", genomePath,
		"--min-length", strconv.Itoa(r.spec.MinProduct),
		"--max-length", strconv.Itoa(r.spec.MaxProduct),
		"--mismatches", strconv.Itoa(r.spec.MaxMismatch),
		"--threads", "1",
		"--products",
		"--output", "fasta",
	}
	if r.dryRun {
		r.log.Info().Str("cmd", strings.Join(argv, " ")).Msg("dry-run: engine not executed")
		return nil, nil
	}
	res, err := execute(ctx, r.log, r.timeout, argv)
	if err != nil {
		return nil, err
	}
	switch {
	case res.exitCode == 0:
		return extract.Products(res.stdout, nil), nil
	case res.exitCode == 1:
		// Ran to completion, nothing amplified.
		return nil, nil
	case res.exitCode == 2:
		return nil, &ConfigError{
			Msg:    fmt.Sprintf("%s rejected the invocation (exit 2)", r.path),
			Stderr: res.stderr,
		}
	default:
		return nil, &RunError{
			Msg:    fmt.Sprintf("%s exited with status %d on %s", r.path, res.exitCode, genomePath),
			Stderr: res.stderr,
		}
	}
}
