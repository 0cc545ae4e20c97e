// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"ampsim/core/dimer"
	"ampsim/core/sim"
	"ampsim/pkg/api"
)

// WriteJSON emits the v1 wire payload, indented, with a trailing newline.
func WriteJSON(w io.Writer, res *sim.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToResultV1(res))
}

// WriteDimersJSON emits a bare list of v1 dimer records.
func WriteDimersJSON(w io.Writer, dimers []dimer.Result) error {
	out := make([]api.DimerV1, 0, len(dimers))
	for _, d := range dimers {
		out = append(out, dimerV1(d))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
