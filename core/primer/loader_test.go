// core/primer/loader_test.go
package primer

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTSV(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "primers.tsv")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLoadTSV(t *testing.T) {
	p := writeTSV(t, "# comment\n\npair1 acgtacgt TTTTAAAA 60 200\npair2 GGGG CCCC\n")
	list, err := LoadTSV(p)
	if err != nil {
		t.Fatalf("LoadTSV: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d specs, want 2", len(list))
	}
	a := list[0]
	if a.ID != "pair1" || a.Forward != "ACGTACGT" || a.Reverse != "TTTTAAAA" ||
		a.MinProduct != 60 || a.MaxProduct != 200 {
		t.Fatalf("unexpected first spec: %+v", a)
	}
	if b := list[1]; b.MinProduct != 0 || b.MaxProduct != 0 {
		t.Fatalf("lengths should default to 0: %+v", b)
	}
}

func TestLoadTSVBadFieldCount(t *testing.T) {
	p := writeTSV(t, "only two\n")
	if _, err := LoadTSV(p); err == nil {
		t.Fatal("expected error on bad field count")
	}
}

func TestLoadTSVBadNumber(t *testing.T) {
	p := writeTSV(t, "x ACGT ACGT sixty\n")
	if _, err := LoadTSV(p); err == nil {
		t.Fatal("expected error on non-numeric min")
	}
}
