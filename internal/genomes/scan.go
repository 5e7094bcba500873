// internal/genomes/scan.go

// Package genomes enumerates the on-disk genome collection:
// <root>/<species>/<genome>.<ext>, one FASTA file per assembly.
package genomes

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Extensions lists the FASTA-like suffixes a genome file may carry,
// plain and gzip-compressed.
var Extensions = []string{
	".fna", ".fa", ".fasta",
	".fna.gz", ".fa.gz", ".fasta.gz",
}

// Target is one genome assembly to screen. Species comes from the
// directory name, ID from the file name with its extension stripped.
type Target struct {
	Species string
	ID      string
	Path    string
}

// Scan walks the immediate sub-directories of root (species) and collects
// genome files with a known extension, both levels sorted for determinism.
// Species directories with no genome files are still reported so they show
// up as empty entries in the final report.
func Scan(root string) (targets []Target, species []string, err error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, nil, fmt.Errorf("read genomes root: %w", err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		species = append(species, e.Name())
	}
	sort.Strings(species)

	for _, sp := range species {
		dir := filepath.Join(root, sp)
		files, err := os.ReadDir(dir)
		if err != nil {
			return nil, nil, fmt.Errorf("read species dir %s: %w", dir, err)
		}
		var names []string
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			if hasGenomeExt(f.Name()) {
				names = append(names, f.Name())
			}
		}
		sort.Strings(names)
		for _, n := range names {
			targets = append(targets, Target{
				Species: sp,
				ID:      Stem(n),
				Path:    filepath.Join(dir, n),
			})
		}
	}
	return targets, species, nil
}

// Stem strips a known genome extension (including the .gz layer) from a
// file name, yielding the genome/accession identifier.
func Stem(name string) string {
	low := strings.ToLower(name)
	for _, ext := range Extensions {
		if strings.HasSuffix(low, ext) {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

func hasGenomeExt(name string) bool {
	low := strings.ToLower(name)
	for _, ext := range Extensions {
		if strings.HasSuffix(low, ext) {
			return true
		}
	}
	return false
}
