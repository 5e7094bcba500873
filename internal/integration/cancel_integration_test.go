// internal/integration/cancel_integration_test.go
package integration

import (
	"bytes"
	"context"
	"testing"
	"time"

	"ampliscan/internal/app"
)

func TestCtrlCMidRunExit130(t *testing.T) {
	eng := stubEngine(t, "sleep 5\nexit 0\n")
	root := genomeTree(t, "bifidum/g1", "bifidum/g2", "longum/g3")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	var out, errBuf bytes.Buffer
	code := app.RunContext(ctx, baseArgs(t, eng, "-t", "2", root), &out, &errBuf)
	if code != 130 {
		t.Fatalf("want exit 130 on cancel, got %d (stderr=%s)", code, errBuf.String())
	}
}
