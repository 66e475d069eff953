// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"warnmap/internal/output"
	"warnmap/internal/warnmap"
)

// MapPayload is what a map writer receives.
type MapPayload struct {
	Map         *warnmap.WarnMap
	StatusWidth int
}

// Writer registries (format → handler). Register in init() blocks.
var (
	ReportWriters = map[string]func(w io.Writer, r output.Report) error{}
	MapWriters    = map[string]func(w io.Writer, p MapPayload) error{}
)

// Register helpers (idempotent last-wins)
func RegisterReport(format string, fn func(io.Writer, output.Report) error) { ReportWriters[format] = fn }
func RegisterMap(format string, fn func(io.Writer, MapPayload) error)       { MapWriters[format] = fn }

// WriteReport dispatches to the report writer registered for format.
func WriteReport(format string, w io.Writer, r output.Report) error {
	fn, ok := ReportWriters[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, r)
}

// WriteMap dispatches to the map writer registered for format.
func WriteMap(format string, w io.Writer, p MapPayload) error {
	fn, ok := MapWriters[format]
	if !ok {
		return fmt.Errorf("unknown map format %q (no writer registered)", format)
	}
	return fn(w, p)
}

func init() {
	RegisterReport(output.FormatText, output.WriteText)
	RegisterReport(output.FormatJSON, output.WriteJSON)

	RegisterMap(output.FormatText, func(w io.Writer, p MapPayload) error {
		return warnmap.Write(w, p.Map, p.StatusWidth)
	})
	RegisterMap(output.FormatJSONL, writeMapJSONL)
}
