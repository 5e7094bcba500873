// internal/engine/exec.go
package engine

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// runResult carries what the adapters need to classify one invocation.
type runResult struct {
	stdout   string
	stderr   string
	exitCode int
}

// execute runs argv, bounded by timeout when timeout > 0. A non-zero exit
// status is not an error here; the adapter interprets it. Binary lookup
// failures become *ConfigError since they would repeat on every genome.
func execute(ctx context.Context, log zerolog.Logger, timeout time.Duration, argv []string) (runResult, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	log.Debug().Str("cmd", strings.Join(argv, " ")).Msg("running engine")
	start := time.Now()
	err := cmd.Run()
	log.Debug().Dur("elapsed", time.Since(start)).Msg("engine finished")

	res := runResult{stdout: outBuf.String(), stderr: errBuf.String()}
	if err == nil {
		return res, nil
	}
	if ctx.Err() != nil {
		return res, &RunError{
			Msg:    "engine killed (" + ctx.Err().Error() + "): " + argv[0],
			Stderr: res.stderr,
		}
	}
	var xe *exec.ExitError
	if errors.As(err, &xe) {
		res.exitCode = xe.ExitCode()
		return res, nil
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return res, &ConfigError{Msg: "engine binary not found: " + argv[0]}
	}
	return res, &RunError{Msg: err.Error(), Stderr: res.stderr}
}
