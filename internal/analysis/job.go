// internal/analysis/job.go
package analysis

import (
	"ampliscan-core/primer"
	"ampliscan-core/probe"
	"ampliscan-core/seq"
	"ampliscan/internal/report"
)

// Job is one (species, genome file) unit of work. Each job is consumed
// exactly once and never retried.
type Job struct {
	Species  string
	GenomeID string
	Path     string
}

// score turns one genome's raw product sequences into scored amplicons.
// Forward mismatches are counted against the leading window, reverse
// against the trailing window scored with the reverse-complemented reverse
// primer; windows are clamped to the amplicon when it is shorter than the
// primer, in which case the length penalty applies.
func score(spec primer.Spec, seqs []string) report.GenomeReport {
	rcRev := seq.RevComp(spec.Reverse)
	out := make(report.GenomeReport, 0, len(seqs))
	for _, s := range seqs {
		fw := s
		if len(s) > len(spec.Forward) {
			fw = s[:len(spec.Forward)]
		}
		rw := s
		if len(s) > len(spec.Reverse) {
			rw = s[len(s)-len(spec.Reverse):]
		}
		a := report.Amplicon{
			Product:   s,
			ForwardMM: seq.CountMismatches(spec.Forward, fw),
			ReverseMM: seq.CountMismatches(rcRev, rw),
		}
		if spec.HasProbe() {
			mm, pos := probe.Match(spec.Probe, s)
			a.ProbeMM, a.ProbePos = &mm, &pos
		}
		out = append(out, a)
	}
	return out
}
