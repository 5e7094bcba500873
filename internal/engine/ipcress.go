// internal/engine/ipcress.go
package engine

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"ampliscan-core/extract"
	"ampliscan-core/primer"

	"github.com/rs/zerolog"
)

// ipcress prefixes every banner/summary line with its own name, so a single
// lowercase substring filter strips all non-record chatter.
var ipcressChatter = []string{"ipcress"}

// Ipcress runs the exonerate ipcress binary against one genome at a time,
// feeding it a run-scoped primer descriptor file.
type Ipcress struct {
	path       string
	spec       primer.Spec
	primerFile string
	timeout    time.Duration
	dryRun     bool
	log        zerolog.Logger
}

// NewIpcress writes the single-line descriptor ("id fwd rev min max") to a
// temp file and returns a runner bound to it. Close removes the file; the
// caller must arrange for that on every exit path, early aborts included.
func NewIpcress(binary string, spec primer.Spec, timeout time.Duration, dryRun bool, log zerolog.Logger) (*Ipcress, error) {
	if binary == "" {
		binary = "ipcress"
	}
	f, err := os.CreateTemp("", "ampliscan-*.primers")
	if err != nil {
		return nil, fmt.Errorf("create primer descriptor: %w", err)
	}
	id := spec.ID
	if id == "" {
		id = "ampliscan"
	}
	_, werr := fmt.Fprintf(f, "%s %s %s %d %d\n",
		id, spec.Forward, spec.Reverse, spec.MinProduct, spec.MaxProduct)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("write primer descriptor: %w", werr)
	}
	return &Ipcress{
		path:       binary,
		spec:       spec,
		primerFile: f.Name(),
		timeout:    timeout,
		dryRun:     dryRun,
		log:        log,
	}, nil
}

func (r *Ipcress) Name() string { return "ipcress" }

// PrimerFile exposes the descriptor path, mainly for logs and tests.
func (r *Ipcress) PrimerFile() string { return r.primerFile }

// Close removes the run-scoped descriptor file.
func (r *Ipcress) Close() error { return os.Remove(r.primerFile) }

func (r *Ipcress) Run(ctx context.Context, genomePath string) ([]string, error) {
	argv := []string{
		r.path, r.primerFile, genomePath,
		"--mismatch", strconv.Itoa(r.spec.MaxMismatch),
		"--seed", "0",
		"--pretty", "false",
		"--products", "true",
	}
	if r.dryRun {
		r.log.Info().Str("cmd", strings.Join(argv, " ")).Msg("dry-run: engine not executed")
		return nil, nil
	}
	res, err := execute(ctx, r.log, r.timeout, argv)
	if err != nil {
		return nil, err
	}
	if res.exitCode != 0 {
		return nil, &RunError{
			Msg:    fmt.Sprintf("ipcress exited with status %d on %s", res.exitCode, genomePath),
			Stderr: res.stderr,
		}
	}
	seqs := extract.Products(res.stdout, ipcressChatter)
	if len(seqs) == 0 {
		r.log.Warn().Str("genome", genomePath).Msg("no ipcress products")
		return nil, nil
	}
	return seqs, nil
}
