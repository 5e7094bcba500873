// core/extract/extract.go

// Package extract parses the free-form text an external amplification engine
// prints into a flat list of candidate amplicon sequences.
package extract

import "strings"

// Products scans raw engine output for FASTA-like records. A line starting
// with ">" opens a record; the record closes at the next ">", at a "--"
// block separator, or at end of input. Sequence lines in between are
// trimmed, concatenated and upper-cased, so wrapped amplicons are fine.
// Records that never see a sequence line are dropped.
//
// chatter is a set of lowercase substrings; any line containing one is
// discarded before scanning (engine banners, progress noise, etc.).
func Products(raw string, chatter []string) []string {
	lines := make([]string, 0, 64)
	for _, ln := range strings.Split(raw, "\n") {
		if isChatter(ln, chatter) {
			continue
		}
		lines = append(lines, ln)
	}

	var out []string
	i := 0
	for i < len(lines) {
		if !strings.HasPrefix(lines[i], ">") {
			i++
			continue
		}
		var parts []string
		i++
		for i < len(lines) &&
			!strings.HasPrefix(lines[i], ">") &&
			!strings.HasPrefix(lines[i], "--") {
			if s := strings.TrimSpace(lines[i]); s != "" {
				parts = append(parts, s)
			}
			i++
		}
		if len(parts) > 0 {
			out = append(out, strings.ToUpper(strings.Join(parts, "")))
		}
	}
	return out
}

func isChatter(line string, chatter []string) bool {
	if len(chatter) == 0 {
		return false
	}
	low := strings.ToLower(line)
	for _, c := range chatter {
		if c != "" && strings.Contains(low, c) {
			return true
		}
	}
	return false
}
