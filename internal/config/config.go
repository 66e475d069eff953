// Package config loads the YAML run configuration: which warnmap sets exist,
// which one is selected, and how the merged map is written.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"warnmap/internal/geometry"
	"warnmap/internal/warnmap"
)

// DefaultOutput is where the merged map goes when nothing else is configured.
const DefaultOutput = "warnmap-final/warnmap_merged_python.txt"

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Config holds one merge run.
type Config struct {
	// Sets maps a set name to its input files.
	Sets map[string][]string `yaml:"sets"`
	// Select names the active entry of Sets.
	Select string `yaml:"select"`
	// Inputs, when non-empty, overrides Sets/Select.
	Inputs []string `yaml:"inputs,omitempty"`

	Output       string `yaml:"output"`
	Merge        string `yaml:"merge"`        // key | position
	StatusWidth  int    `yaml:"status_width"` // 0 = unpadded
	MapFormat    string `yaml:"map_format"`   // text | jsonl
	ReportFormat string `yaml:"report"`       // text | json

	// Sort orders the merged map by (sector, iy, iz) before writing.
	Sort          bool `yaml:"sort"`
	CheckGeometry bool `yaml:"check_geometry"`

	// Sectors overrides the tower total per sector.
	Sectors geometry.Totals `yaml:"sectors,omitempty"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the stderr logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns a config with no inputs and default output settings.
func DefaultConfig() *Config {
	return &Config{
		Sets:         map[string][]string{},
		Output:       DefaultOutput,
		Merge:        string(warnmap.ByKey),
		MapFormat:    FormatText,
		ReportFormat: FormatText,
		Sectors:      geometry.DefaultTotals(),
		Logging:      LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML config from path on top of DefaultConfig.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := cfg.decode(data); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.resolvePaths(filepath.Dir(path))
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// resolvePaths makes relative input/output paths relative to the config file.
func (c *Config) resolvePaths(base string) {
	if base == "." || base == "" {
		return
	}
	rel := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	for name, files := range c.Sets {
		for i := range files {
			files[i] = rel(files[i])
		}
		c.Sets[name] = files
	}
	for i := range c.Inputs {
		c.Inputs[i] = rel(c.Inputs[i])
	}
	c.Output = rel(c.Output)
}

// SetNames returns the configured set names in sorted order.
func (c *Config) SetNames() []string {
	names := make([]string, 0, len(c.Sets))
	for n := range c.Sets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ResolveInputs returns the input list for this run: explicit Inputs win,
// otherwise the selected set.
func (c *Config) ResolveInputs() ([]string, error) {
	if len(c.Inputs) > 0 {
		return c.Inputs, nil
	}
	if c.Select == "" {
		return nil, errors.New("no inputs: give map files or select a set")
	}
	files, ok := c.Sets[c.Select]
	if !ok {
		return nil, fmt.Errorf("unknown set %q (have %v)", c.Select, c.SetNames())
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("set %q is empty", c.Select)
	}
	return files, nil
}

// Validate checks values that do not depend on the input files.
func (c *Config) Validate() error {
	if c.Output == "" {
		return errors.New("output path is empty")
	}
	if _, err := warnmap.ParseStrategy(c.Merge); err != nil {
		return err
	}
	if c.StatusWidth < 0 {
		return errors.New("status_width must be ≥ 0")
	}
	switch c.MapFormat {
	case FormatText, FormatJSONL:
	default:
		return fmt.Errorf("invalid map format %q", c.MapFormat)
	}
	switch c.ReportFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid report format %q", c.ReportFormat)
	}
	if err := c.Sectors.Validate(); err != nil {
		return err
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}
	return nil
}
