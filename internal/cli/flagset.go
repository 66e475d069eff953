package cli

import (
	"flag"
	"fmt"

	"warnmap/internal/version"
)

// NewFlagSet returns a ContinueOnError FlagSet with the tool's usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: merge EMCal warnmaps and report per-sector coverage

Version: %s

Usage:
  %s [flags] [map files or globs...]
  %s --config warnmap.yaml --set minbias

Flags:
`, name, version.Version, name, name)
		fs.PrintDefaults()
	}
	return fs
}
