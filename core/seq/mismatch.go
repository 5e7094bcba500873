// core/seq/mismatch.go
package seq

// CountMismatches scores a primer or probe (IUPAC codes allowed) against a
// genomic window (expected A/C/G/T/N). Positions are compared pairwise up to
// the shorter length; any length difference is then added in full, so a
// 20-mer against an 18-mer window costs at least 2 regardless of identity.
// Callers should extract windows at the primer's own length.
func CountMismatches(primer, window string) int {
	n := len(primer)
	if len(window) < n {
		n = len(window)
	}
	mm := 0
	for i := 0; i < n; i++ {
		if !BaseMatch(window[i], primer[i]) {
			mm++
		}
	}
	if d := len(primer) - len(window); d >= 0 {
		mm += d
	} else {
		mm -= d
	}
	return mm
}
