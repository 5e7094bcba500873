// internal/engine/ipcr_test.go
package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ampliscan-core/primer"

	"github.com/rs/zerolog"
)

func stubScript(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "stub.sh")
	if err := os.WriteFile(p, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return p
}

func testSpec() primer.Spec {
	return primer.Spec{
		ID: "test", Forward: "ACGTACGT", Reverse: "TTTTAAAA",
		MinProduct: 60, MaxProduct: 200, MaxMismatch: 3,
	}
}

func TestIpcrSuccessParsesStdout(t *testing.T) {
	bin := stubScript(t, "printf '>amp1\\nACGT\\nACGT\\n>amp2\\nTTTT\\n'\nexit 0\n")
	r := NewIpcr(bin, testSpec(), 0, false, zerolog.Nop())
	seqs, err := r.Run(context.Background(), "genome.fna")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(seqs) != 2 || seqs[0] != "ACGTACGT" || seqs[1] != "TTTT" {
		t.Fatalf("unexpected sequences: %#v", seqs)
	}
}

func TestIpcrExitOneMeansNoProduct(t *testing.T) {
	bin := stubScript(t, "exit 1\n")
	r := NewIpcr(bin, testSpec(), 0, false, zerolog.Nop())
	seqs, err := r.Run(context.Background(), "genome.fna")
	if err != nil {
		t.Fatalf("exit 1 must not be an error, got %v", err)
	}
	if len(seqs) != 0 {
		t.Fatalf("expected no sequences, got %#v", seqs)
	}
}

func TestIpcrExitTwoIsConfigError(t *testing.T) {
	bin := stubScript(t, "echo 'bad primer' >&2\nexit 2\n")
	r := NewIpcr(bin, testSpec(), 0, false, zerolog.Nop())
	_, err := r.Run(context.Background(), "genome.fna")
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("want *ConfigError, got %v", err)
	}
	if ce.Stderr == "" {
		t.Fatal("ConfigError should carry captured stderr")
	}
}

func TestIpcrExitThreeIsRunError(t *testing.T) {
	bin := stubScript(t, "echo 'boom' >&2\nexit 3\n")
	r := NewIpcr(bin, testSpec(), 0, false, zerolog.Nop())
	_, err := r.Run(context.Background(), "genome.fna")
	var re *RunError
	if !errors.As(err, &re) {
		t.Fatalf("want *RunError, got %v", err)
	}
}

func TestIpcrMissingBinaryIsConfigError(t *testing.T) {
	r := NewIpcr(filepath.Join(t.TempDir(), "no-such-engine"), testSpec(), 0, false, zerolog.Nop())
	_, err := r.Run(context.Background(), "genome.fna")
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("want *ConfigError for missing binary, got %v", err)
	}
}

func TestIpcrDryRunDoesNotExecute(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "ran")
	bin := stubScript(t, "touch "+marker+"\nexit 0\n")
	r := NewIpcr(bin, testSpec(), 0, true, zerolog.Nop())
	seqs, err := r.Run(context.Background(), "genome.fna")
	if err != nil || len(seqs) != 0 {
		t.Fatalf("dry-run: seqs=%v err=%v", seqs, err)
	}
	if _, err := os.Stat(marker); !os.IsNotExist(err) {
		t.Fatal("dry-run must not execute the engine")
	}
}

func TestIpcrTimeoutIsRunError(t *testing.T) {
	bin := stubScript(t, "sleep 5\nexit 0\n")
	r := NewIpcr(bin, testSpec(), 50*time.Millisecond, false, zerolog.Nop())
	start := time.Now()
	_, err := r.Run(context.Background(), "genome.fna")
	var re *RunError
	if !errors.As(err, &re) {
		t.Fatalf("want *RunError on timeout, got %v", err)
	}
	if time.Since(start) > 3*time.Second {
		t.Fatal("timeout did not bound the invocation")
	}
}
