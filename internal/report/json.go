// internal/report/json.go
package report

import (
	"encoding/json"
	"io"
)

// WriteJSON emits the nested {species: {genome: [rows]}} shape, indented.
func WriteJSON(w io.Writer, rep AnalysisReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
