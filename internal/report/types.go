// internal/report/types.go

// Package report holds the nested per-species / per-genome result model and
// its renderers (text tables, TSV, JSON, product FASTA, summaries).
package report

import "sort"

// Amplicon is one candidate product with its primer and probe scores.
// ProbeMM and ProbePos are set together or not at all: nil means no probe
// was supplied for the run.
type Amplicon struct {
	Product   string `json:"product"`
	ForwardMM int    `json:"forward_mismatches"`
	ReverseMM int    `json:"reverse_mismatches"`
	ProbeMM   *int   `json:"probe_mismatches,omitempty"`
	ProbePos  *int   `json:"probe_position,omitempty"`
}

// GenomeReport is the ordered product list for one genome. Empty means the
// engine ran (or failed recoverably) and contributed nothing.
type GenomeReport []Amplicon

// SpeciesReport maps genome identifier to its report.
type SpeciesReport map[string]GenomeReport

// AnalysisReport is the full output of one run: species label to
// per-genome reports.
type AnalysisReport map[string]SpeciesReport

// AddSpecies ensures a species entry exists even before (or without) any
// genome completing. Mirrors the directory enumeration: every species dir
// shows up in the report.
func (r AnalysisReport) AddSpecies(species string) {
	if _, ok := r[species]; !ok {
		r[species] = SpeciesReport{}
	}
}

// Add routes one genome's products into the nested structure. Each
// (species, genome) slot is written exactly once per run.
func (r AnalysisReport) Add(species, genomeID string, rep GenomeReport) {
	r.AddSpecies(species)
	r[species][genomeID] = rep
}

// Species returns the species labels in sorted order.
func (r AnalysisReport) Species() []string {
	out := make([]string, 0, len(r))
	for k := range r {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Genomes returns the genome identifiers in sorted order.
func (s SpeciesReport) Genomes() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
