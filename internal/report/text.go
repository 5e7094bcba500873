// internal/report/text.go
package report

import (
	"fmt"
	"io"
	"strconv"
)

var textHeaders = []string{
	"species", "genome", "length", "fwd_mm", "rev_mm", "probe_mm", "probe_pos",
}

// WriteText renders the report as an aligned table, one row per amplicon.
// Genomes without products still get a row so absence is visible. When
// withSummary is set, a per-species summary table follows.
func WriteText(w io.Writer, rep AnalysisReport, style Style, withSummary bool) error {
	var rows [][]string
	for _, sp := range rep.Species() {
		genomes := rep[sp]
		if len(genomes) == 0 {
			rows = append(rows, []string{sp, "-", "-", "-", "-", "-", "-"})
			continue
		}
		for _, g := range genomes.Genomes() {
			products := genomes[g]
			if len(products) == 0 {
				rows = append(rows, []string{sp, g, "0", "-", "-", "-", "-"})
				continue
			}
			for _, a := range products {
				rows = append(rows, []string{
					sp, g,
					strconv.Itoa(len(a.Product)),
					strconv.Itoa(a.ForwardMM),
					strconv.Itoa(a.ReverseMM),
					optInt(a.ProbeMM),
					optInt(a.ProbePos),
				})
			}
		}
	}
	if _, err := fmt.Fprintln(w, Table(textHeaders, rows, style)); err != nil {
		return err
	}
	if !withSummary {
		return nil
	}
	if _, err := fmt.Fprintln(w, "\nper-species summary:"); err != nil {
		return err
	}
	return WriteSummary(w, rep, style)
}

func optInt(p *int) string {
	if p == nil {
		return "-"
	}
	return strconv.Itoa(*p)
}
