// internal/report/fasta.go
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
)

// WriteProductsFASTA exports every amplicon as a FASTA record to path. A
// path ending in .gz selects a compressed stream.
func WriteProductsFASTA(path string, rep AnalysisReport) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create products file: %w", err)
	}
	var w io.Writer = fh
	var gz *pgzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gz = pgzip.NewWriter(fh)
		w = gz
	}

	werr := writeFASTA(w, rep)
	if gz != nil {
		if cerr := gz.Close(); werr == nil {
			werr = cerr
		}
	}
	if cerr := fh.Close(); werr == nil {
		werr = cerr
	}
	return werr
}

func writeFASTA(w io.Writer, rep AnalysisReport) error {
	for _, sp := range rep.Species() {
		for _, g := range rep[sp].Genomes() {
			for i, a := range rep[sp][g] {
				hdr := fmt.Sprintf(">%s/%s_%d fwd_mm=%d rev_mm=%d",
					sp, g, i+1, a.ForwardMM, a.ReverseMM)
				if a.ProbeMM != nil && a.ProbePos != nil {
					hdr += fmt.Sprintf(" probe_mm=%d probe_pos=%d", *a.ProbeMM, *a.ProbePos)
				}
				if _, err := fmt.Fprintf(w, "%s\n%s\n", hdr, a.Product); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
