// internal/report/tsv.go
package report

import (
	"fmt"
	"io"
)

const tsvHeader = "species\tgenome\tproduct\tforward_mismatches\treverse_mismatches\tprobe_mismatches\tprobe_position"

// WriteTSV writes one line per amplicon, machine-friendly. Genomes with no
// product are skipped here; use text/json output to see absences.
func WriteTSV(w io.Writer, rep AnalysisReport, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, tsvHeader); err != nil {
			return err
		}
	}
	for _, sp := range rep.Species() {
		for _, g := range rep[sp].Genomes() {
			for _, a := range rep[sp][g] {
				if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
					sp, g, a.Product, a.ForwardMM, a.ReverseMM,
					optInt(a.ProbeMM), optInt(a.ProbePos),
				); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
