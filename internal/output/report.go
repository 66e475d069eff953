package output

import (
	"warnmap/internal/coverage"
	"warnmap/internal/warnmap"
)

// Report is everything a report writer may print about one merge run.
type Report struct {
	Inputs   []string
	Output   string
	Strategy warnmap.Strategy
	Merged   *warnmap.WarnMap
	Summary  coverage.Summary
}
