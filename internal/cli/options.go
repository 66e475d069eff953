// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"strings"

	"warnmap/internal/cliutil"
	"warnmap/internal/config"
)

// Options holds all CLI flags and arguments.
type Options struct {
	ConfigFile string
	Set        string
	Maps       []string

	Output        string
	Merge         string
	StatusWidth   int
	MapFormat     string
	ReportFormat  string
	Sort          bool
	CheckGeometry bool

	LogLevel string
	Quiet    bool
	Version  bool

	// given records which flags appeared on the command line.
	given map[string]bool
}

// Given reports whether flag name was set explicitly.
func (o Options) Given(name string) bool { return o.given[name] }

// ParseArgs registers and parses all flags, returns an Options struct.
// Positional arguments (and globs) are appended to Maps.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.ConfigFile, "config", "", "YAML run configuration")
	fs.StringVar(&opt.Set, "set", "", "named input set from the config (overrides select:)")
	var maps stringSlice
	fs.Var(&maps, "map", "warnmap file (repeatable; overrides the config set)")

	fs.StringVar(&opt.Output, "output", config.DefaultOutput, "merged warnmap output path")
	fs.StringVar(&opt.Output, "o", config.DefaultOutput, "alias of --output")
	fs.StringVar(&opt.Merge, "merge", "key", "merge strategy: key | position")
	fs.IntVar(&opt.StatusWidth, "status-width", 0, "right-align the merged map status column to this width (0 = unpadded)")
	fs.StringVar(&opt.MapFormat, "map-format", config.FormatText, "merged map format: text | jsonl")
	fs.StringVar(&opt.ReportFormat, "report", config.FormatText, "report format: text | json")
	fs.BoolVar(&opt.Sort, "sort", false, "write the merged map in (sector, iy, iz) order")
	fs.BoolVar(&opt.CheckGeometry, "check-geometry", false, "warn when rows disagree with the EMCal sector layout")

	fs.StringVar(&opt.LogLevel, "log-level", "", "log level: debug | info | warn | error")
	fs.BoolVar(&opt.Quiet, "quiet", false, "only log errors")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "h", false, "show this help message")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	opt.given = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opt.given[canonical(f.Name)] = true })

	exp, err := cliutil.ExpandPositionals(append(posArgs, fs.Args()...))
	if err != nil {
		return opt, err
	}
	opt.Maps = append([]string(maps), exp...)

	if opt.StatusWidth < 0 {
		return opt, errors.New("--status-width must be ≥ 0")
	}
	if opt.ConfigFile == "" && len(opt.Maps) == 0 {
		return opt, errors.New("provide map files or --config")
	}
	if opt.Set != "" && len(opt.Maps) > 0 {
		return opt, errors.New("--set conflicts with explicit map files")
	}
	return opt, nil
}

func canonical(name string) string {
	switch name {
	case "o":
		return "output"
	case "q":
		return "quiet"
	}
	return name
}

// Apply overlays explicitly given flags onto cfg.
func (o Options) Apply(cfg *config.Config) {
	if len(o.Maps) > 0 {
		cfg.Inputs = o.Maps
	}
	if o.Set != "" {
		cfg.Select = o.Set
		cfg.Inputs = nil
	}
	if o.Given("output") || o.ConfigFile == "" {
		cfg.Output = o.Output
	}
	if o.Given("merge") {
		cfg.Merge = o.Merge
	}
	if o.Given("status-width") {
		cfg.StatusWidth = o.StatusWidth
	}
	if o.Given("map-format") {
		cfg.MapFormat = o.MapFormat
	}
	if o.Given("report") {
		cfg.ReportFormat = o.ReportFormat
	}
	if o.Sort {
		cfg.Sort = true
	}
	if o.CheckGeometry {
		cfg.CheckGeometry = true
	}
	if o.LogLevel != "" {
		cfg.Logging.Level = o.LogLevel
	}
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
