// internal/engine/ipcress_test.go
package engine

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestIpcressDescriptorFormat(t *testing.T) {
	r, err := NewIpcress("ipcress", testSpec(), 0, false, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewIpcress: %v", err)
	}
	defer func() { _ = r.Close() }()

	raw, err := os.ReadFile(r.PrimerFile())
	if err != nil {
		t.Fatalf("read descriptor: %v", err)
	}
	if got, want := string(raw), "test ACGTACGT TTTTAAAA 60 200\n"; got != want {
		t.Fatalf("descriptor %q, want %q", got, want)
	}
}

func TestIpcressCloseRemovesDescriptor(t *testing.T) {
	r, err := NewIpcress("ipcress", testSpec(), 0, false, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewIpcress: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := os.Stat(r.PrimerFile()); !os.IsNotExist(err) {
		t.Fatal("descriptor should be gone after Close")
	}
}

func TestIpcressParsesProductsAndFiltersChatter(t *testing.T) {
	out := strings.Join([]string{
		"** Message: ipcress 2.4.0 loading",
		"Ipcress result:",
		">ID_1 seq GCA_0001.0",
		"acgtacgt",
		"acgt",
		"--",
		"ipcress: GCA_0001.0 filter summary",
		">ID_2 seq GCA_0001.1",
		"TTTT",
		"-- completed ipcress analysis",
	}, "\\n")
	bin := stubScript(t, "printf '"+out+"\\n'\nexit 0\n")

	r, err := NewIpcress(bin, testSpec(), 0, false, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewIpcress: %v", err)
	}
	defer func() { _ = r.Close() }()

	seqs, err := r.Run(context.Background(), "genome.fna")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(seqs) != 2 || seqs[0] != "ACGTACGTACGT" || seqs[1] != "TTTT" {
		t.Fatalf("unexpected sequences: %#v", seqs)
	}
}

func TestIpcressEmptyOutputIsNoProduct(t *testing.T) {
	bin := stubScript(t, "printf '** Message: ipcress: no products\\n'\nexit 0\n")
	r, err := NewIpcress(bin, testSpec(), 0, false, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewIpcress: %v", err)
	}
	defer func() { _ = r.Close() }()

	seqs, err := r.Run(context.Background(), "genome.fna")
	if err != nil {
		t.Fatalf("empty output must not be an error, got %v", err)
	}
	if len(seqs) != 0 {
		t.Fatalf("expected no sequences, got %#v", seqs)
	}
}

func TestIpcressNonZeroExitIsRunError(t *testing.T) {
	bin := stubScript(t, "echo 'segfault' >&2\nexit 139\n")
	r, err := NewIpcress(bin, testSpec(), 0, false, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewIpcress: %v", err)
	}
	defer func() { _ = r.Close() }()

	_, err = r.Run(context.Background(), "genome.fna")
	var re *RunError
	if !errors.As(err, &re) {
		t.Fatalf("want *RunError, got %v", err)
	}
}
