// internal/report/table.go
package report

import (
	"fmt"
	"regexp"
	"strings"
)

// Style selects the table border treatment.
type Style int

const (
	Plain Style = iota // no borders, pipe-separated
	Grid               // ASCII box drawing
)

var numRe = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d+)?|\.\d+)%?$`)

// Table renders headers+rows with aligned columns. Numeric columns are
// right-aligned, text left-aligned.
func Table(headers []string, rows [][]string, style Style) string {
	ncols := len(headers)
	widths := make([]int, ncols)
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < ncols && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	rightAlign := make([]bool, ncols)
	for i := range rightAlign {
		numeric := true
		for _, row := range rows {
			if i < len(row) && !numRe.MatchString(row[i]) {
				numeric = false
				break
			}
		}
		rightAlign[i] = numeric && len(rows) > 0
	}

	fmtRow := func(cells []string) string {
		var b strings.Builder
		b.WriteByte('|')
		for i := 0; i < ncols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if rightAlign[i] {
				fmt.Fprintf(&b, " %*s |", widths[i], cell)
			} else {
				fmt.Fprintf(&b, " %-*s |", widths[i], cell)
			}
		}
		return b.String()
	}

	var out []string
	if style == Grid {
		var sep strings.Builder
		sep.WriteByte('+')
		for _, w := range widths {
			sep.WriteString(strings.Repeat("-", w+2))
			sep.WriteByte('+')
		}
		out = append(out, sep.String(), fmtRow(headers), sep.String())
		for _, r := range rows {
			out = append(out, fmtRow(r))
		}
		out = append(out, sep.String())
	} else {
		out = append(out, fmtRow(headers))
		for _, r := range rows {
			out = append(out, fmtRow(r))
		}
	}
	return strings.Join(out, "\n")
}
