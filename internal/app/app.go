// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	"warnmap/internal/cli"
	"warnmap/internal/cmdutil"
	"warnmap/internal/config"
	"warnmap/internal/coverage"
	"warnmap/internal/output"
	"warnmap/internal/version"
	"warnmap/internal/warnmap"
	"warnmap/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitInput    = 2
	ExitOutput   = 3
	ExitCanceled = 130
)

// RunContext parses argv, merges the selected warnmaps, prints the coverage
// report to stdout and writes the merged map. It returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("warnmap-merge")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		code := ExitInput
		if errors.Is(err, flag.ErrHelp) {
			code = ExitOK
		} else {
			_, _ = fmt.Fprintln(stderr, err)
		}
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return ExitOK
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return ExitOutput
		}
		return code
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "warnmap-merge version %s\n", version.Version)
		if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
			_, _ = fmt.Fprintln(stderr, e)
			return ExitOutput
		}
		return ExitOK
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitInput
	}
	opts.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, "config:", err)
		return ExitInput
	}

	log, err := cmdutil.NewLogger(stderr, cfg.Logging.Level, opts.Quiet)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitInput
	}
	defer func() { _ = log.Sync() }()

	return run(parent, cfg, outw, log)
}

func run(ctx context.Context, cfg *config.Config, outw *bufio.Writer, log *zap.Logger) int {
	inputs, err := cfg.ResolveInputs()
	if err != nil {
		log.Error("no inputs", zap.Error(err))
		return ExitInput
	}
	strategy, err := warnmap.ParseStrategy(cfg.Merge)
	if err != nil {
		log.Error("bad merge strategy", zap.Error(err))
		return ExitInput
	}

	maps, err := warnmap.LoadAll(ctx, inputs)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return ExitCanceled
		}
		log.Error("load failed", zap.Error(err))
		return ExitInput
	}
	for _, m := range maps {
		log.Debug("loaded warnmap", zap.String("path", m.Source), zap.Int("rows", m.Len()))
	}

	merged, stats, err := warnmap.Merge(maps, strategy)
	if err != nil {
		log.Error("merge failed", zap.Error(err))
		return ExitInput
	}
	log.Info("merged warnmaps",
		zap.Int("inputs", stats.Inputs),
		zap.Int("channels", merged.Len()),
		zap.Int("raised", stats.Raised),
		zap.String("strategy", string(strategy)))
	if stats.Misaligned > 0 {
		log.Warn("rows differ in channel identity at the same position; statuses were combined anyway",
			zap.Int("misaligned", stats.Misaligned))
	}
	if stats.Added > 0 {
		log.Info("channels missing from the first map were appended", zap.Int("added", stats.Added))
	}

	summary, err := coverage.Aggregate(merged, cfg.Sectors)
	if err != nil {
		log.Error("aggregate failed", zap.Error(err))
		return ExitInput
	}
	logSummaryGaps(log, summary)
	if cfg.CheckGeometry {
		logStructure(log, coverage.CheckStructure(merged, cfg.Sectors))
	}

	rep := output.Report{
		Inputs:   inputs,
		Output:   cfg.Output,
		Strategy: strategy,
		Merged:   merged,
		Summary:  summary,
	}
	if err := writers.WriteReport(cfg.ReportFormat, outw, rep); err != nil && !writers.IsBrokenPipe(err) {
		log.Error("report failed", zap.Error(err))
		return ExitOutput
	}
	if err := outw.Flush(); err != nil && !writers.IsBrokenPipe(err) {
		log.Error("report failed", zap.Error(err))
		return ExitOutput
	}

	if cfg.Sort {
		merged = warnmap.SortByChannel(merged)
	}
	payload := writers.MapPayload{Map: merged, StatusWidth: cfg.StatusWidth}
	if err := writers.SaveMap(cfg.Output, cfg.MapFormat, payload); err != nil {
		log.Error("save failed", zap.String("path", cfg.Output), zap.Error(err))
		return ExitOutput
	}
	log.Info("wrote merged warnmap", zap.String("path", cfg.Output), zap.String("format", cfg.MapFormat))
	return ExitOK
}

func logSummaryGaps(log *zap.Logger, s coverage.Summary) {
	if s.OutsideTable > 0 {
		log.Warn("records with a sector outside the totals table were not counted",
			zap.Int("records", s.OutsideTable))
	}
	for _, sec := range s.Sectors {
		if sec.Unclassified > 0 {
			log.Info("unclassified statuses (neither live, hot nor dead)",
				zap.Int("sector", sec.Sector), zap.Int("count", sec.Unclassified))
		}
	}
}

func logStructure(log *zap.Logger, st coverage.Structure) {
	for _, m := range st.RowMismatches {
		log.Warn("sector row count differs from tower total",
			zap.Int("sector", m.Sector), zap.Int("rows", m.Rows), zap.Int("total", m.Total))
	}
	if n := len(st.OffGrid); n > 0 {
		first := st.OffGrid[0]
		log.Warn("records outside the sector grid",
			zap.Int("count", n),
			zap.Int("first_sector", first.Sector), zap.Int("first_iy", first.IY), zap.Int("first_iz", first.IZ))
	}
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
