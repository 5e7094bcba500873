// core/seq/rc_test.go
package seq

import (
	"strings"
	"testing"
)

func TestRevComp(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"ACGT", "ACGT"},
		{"AAAACCC", "GGGTTTT"},
		{"RYSWKMBDHVN", "NBDHVKMWSRY"},
		{"acgtN", "Nacgt"},  // case preserved per base
		{"AC-GT", "AC-GT"},  // unknown bytes pass through
	}
	for _, tc := range tests {
		if got := RevComp(tc.in); got != tc.want {
			t.Errorf("RevComp(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRevCompRoundTrip(t *testing.T) {
	// Double reverse-complement restores base identity (case-insensitively).
	for _, s := range []string{"ACGTRYSWKMBDHVN", "acgtacgt", "GcAtNnn"} {
		got := RevComp(RevComp(s))
		if !strings.EqualFold(got, s) {
			t.Errorf("RevComp(RevComp(%q)) = %q, want same bases", s, got)
		}
	}
}
