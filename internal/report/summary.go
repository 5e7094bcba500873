// internal/report/summary.go
package report

import (
	"fmt"
	"io"
	"strconv"
)

// SpeciesSummary condenses one species' screen into the numbers a reader
// actually compares across organisms.
type SpeciesSummary struct {
	Species     string
	Genomes     int
	WithProduct int
	Products    int
	BestPrimerMM int // min(fwd+rev) over all amplicons; -1 when none
	ProbeExact  int  // amplicons with a zero-mismatch probe hit
}

// Summarize folds the nested report into per-species rows, sorted by
// species label.
func Summarize(rep AnalysisReport) []SpeciesSummary {
	var out []SpeciesSummary
	for _, sp := range rep.Species() {
		s := SpeciesSummary{Species: sp, BestPrimerMM: -1}
		for _, g := range rep[sp].Genomes() {
			s.Genomes++
			products := rep[sp][g]
			if len(products) > 0 {
				s.WithProduct++
			}
			for _, a := range products {
				s.Products++
				if mm := a.ForwardMM + a.ReverseMM; s.BestPrimerMM < 0 || mm < s.BestPrimerMM {
					s.BestPrimerMM = mm
				}
				if a.ProbeMM != nil && *a.ProbeMM == 0 {
					s.ProbeExact++
				}
			}
		}
		out = append(out, s)
	}
	return out
}

var summaryHeaders = []string{
	"species", "genomes", "with_product", "products", "best_primer_mm", "probe_exact",
}

// WriteSummary renders the per-species summary table.
func WriteSummary(w io.Writer, rep AnalysisReport, style Style) error {
	var rows [][]string
	for _, s := range Summarize(rep) {
		best := "-"
		if s.BestPrimerMM >= 0 {
			best = strconv.Itoa(s.BestPrimerMM)
		}
		rows = append(rows, []string{
			s.Species,
			strconv.Itoa(s.Genomes),
			strconv.Itoa(s.WithProduct),
			strconv.Itoa(s.Products),
			best,
			strconv.Itoa(s.ProbeExact),
		})
	}
	_, err := fmt.Fprintln(w, Table(summaryHeaders, rows, style))
	return err
}
