// core/seq/mismatch_test.go
package seq

import "testing"

func TestCountMismatches(t *testing.T) {
	tests := []struct {
		primer string
		window string
		want   int
	}{
		{"ACGT", "ACGT", 0},     // perfect
		{"NNNN", "ACGT", 0},     // primer N matches any canonical base
		{"RRRR", "ACGT", 2},     // R=A/G => mismatch at C,T
		{"TTTT", "ACGT", 3},     // only final T pairs
		{"acgt", "ACGT", 0},     // case-insensitive
		{"ACGT", "acgt", 0},     // both sides
		{"ACGT", "ANGT", 1},     // genomic N always mismatches
		{"N", "N", 1},           // even primer N cannot pair with genomic N
		{"ACGT", "AXGT", 1},     // unknown genome byte is a mismatch
		{"ACGTACGTACGTACGTACGT", "ACGTACGTACGTACGTAC", 2}, // length penalty
		{"AC", "ACGT", 2},       // window longer than primer
		{"", "", 0},
		{"", "ACG", 3},
	}
	for _, tc := range tests {
		if got := CountMismatches(tc.primer, tc.window); got != tc.want {
			t.Errorf("CountMismatches(%q,%q) = %d, want %d",
				tc.primer, tc.window, got, tc.want)
		}
	}
}

func TestCountMismatchesEqualsHamming(t *testing.T) {
	// Equal-length ACGT-only pairs must reduce to plain Hamming distance.
	hamming := func(a, b string) int {
		d := 0
		for i := range a {
			if a[i] != b[i] {
				d++
			}
		}
		return d
	}
	cases := [][2]string{
		{"ACGTACGT", "ACGTACGT"},
		{"ACGTACGT", "TGCATGCA"},
		{"AAAA", "AAAT"},
		{"GGGG", "CCCC"},
	}
	for _, c := range cases {
		if got, want := CountMismatches(c[0], c[1]), hamming(c[0], c[1]); got != want {
			t.Errorf("CountMismatches(%q,%q) = %d, want Hamming %d", c[0], c[1], got, want)
		}
	}
}

func TestCountMismatchesLengthPenaltyExact(t *testing.T) {
	// Identical prefix, trailing truncation: penalty is exactly the
	// length difference on top of zero positional mismatches.
	primer := "ACGTACGTAC"
	for cut := 0; cut <= 4; cut++ {
		window := primer[:len(primer)-cut]
		if got := CountMismatches(primer, window); got != cut {
			t.Errorf("cut=%d: got %d, want %d", cut, got, cut)
		}
	}
}

func TestBaseMatchGenomeGate(t *testing.T) {
	for _, g := range []byte{'N', 'n', 'X', '-', 'R'} {
		if BaseMatch(g, 'N') {
			t.Errorf("BaseMatch(%q, 'N') = true, want false", g)
		}
	}
	if !BaseMatch('a', 'R') {
		t.Errorf("BaseMatch('a','R') = false, want true")
	}
}
