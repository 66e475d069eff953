// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

// WriteText prints the per-sector hot/dead lines, then the live lines, then
// the detector-wide live fraction.
func WriteText(w io.Writer, r Report) error {
	if _, err := fmt.Fprintln(w, ReportHeader); err != nil {
		return err
	}
	for _, s := range r.Summary.Sectors {
		if _, err := fmt.Fprintf(w, "sector: %d hot  fraction: %.2f  total:  %d\n", s.Sector, s.HotFraction(), s.Hot); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "sector: %d dead fraction: %.2f  total:  %d\n", s.Sector, s.DeadFraction(), s.Dead); err != nil {
			return err
		}
	}
	for _, s := range r.Summary.Sectors {
		if _, err := fmt.Fprintf(w, "sector: %d live fraction: %.2f  total:  %d\n", s.Sector, s.LiveFraction(), s.Live); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Calorimeter live fraction: %.3f\n", r.Summary.LiveFraction())
	return err
}
