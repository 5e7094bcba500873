// core/probe/probe.go

// Package probe locates the best-scoring window for an internal oligo
// inside an amplicon.
package probe

import "ampliscan-core/seq"

// NoMatch is the sentinel returned when no window can be scored.
const NoMatch = -1

// Match slides probe across amplicon and returns the minimum mismatch count
// and its leftmost position. Ties keep the earliest window; a zero-mismatch
// window stops the scan since nothing can beat it. An empty probe, or an
// amplicon shorter than the probe, yields (NoMatch, NoMatch).
func Match(probe, amplicon string) (minMismatches, bestPos int) {
	pl := len(probe)
	if pl == 0 || len(amplicon) < pl {
		return NoMatch, NoMatch
	}
	minMismatches = pl + 1
	for i := 0; i+pl <= len(amplicon); i++ {
		mm := seq.CountMismatches(probe, amplicon[i:i+pl])
		if mm < minMismatches {
			minMismatches, bestPos = mm, i
			if mm == 0 {
				break
			}
		}
	}
	return minMismatches, bestPos
}
