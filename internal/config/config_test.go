package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warnmap/internal/geometry"
)

const sampleYAML = `
select: minbias
sets:
  minbias:
    - warnmap-output/Warnmap_Run13pp510MinBias_ybins3to4_nsigma10_niter10.txt
    - warnmap-output/Warnmap_Run13pp510MinBias_ybins5to6_nsigma10_niter10.txt
  final:
    - /abs/Warnmap_Run13pp510MinBias_Final.txt
output: out/merged.txt
merge: position
status_width: 3
report: json
logging:
  level: debug
`

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "warnmap.yaml")
	require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
	return p
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warnmap-final/warnmap_merged_python.txt", cfg.Output)
	assert.Zero(t, cfg.StatusWidth, "status column unpadded by default")
	assert.Equal(t, "key", cfg.Merge)
	assert.Equal(t, geometry.DefaultTotals(), cfg.Sectors)
	assert.NoError(t, cfg.Validate())
}

func TestLoadYAML(t *testing.T) {
	p := writeConfig(t, sampleYAML)
	dir := filepath.Dir(p)

	cfg, err := Load(p)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "position", cfg.Merge)
	assert.Equal(t, 3, cfg.StatusWidth)
	assert.Equal(t, FormatJSON, cfg.ReportFormat)
	assert.Equal(t, FormatText, cfg.MapFormat, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, filepath.Join(dir, "out/merged.txt"), cfg.Output)
	assert.Equal(t, []string{"final", "minbias"}, cfg.SetNames())

	in, err := cfg.ResolveInputs()
	require.NoError(t, err)
	require.Len(t, in, 2)
	assert.Equal(t, filepath.Join(dir, "warnmap-output/Warnmap_Run13pp510MinBias_ybins3to4_nsigma10_niter10.txt"), in[0])
	assert.Equal(t, "/abs/Warnmap_Run13pp510MinBias_Final.txt", cfg.Sets["final"][0])
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "outptu: x.txt\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadEmptyFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "key", cfg.Merge)
}

func TestResolveInputs(t *testing.T) {
	t.Run("explicit inputs win", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Sets["a"] = []string{"x"}
		cfg.Select = "a"
		cfg.Inputs = []string{"y"}
		in, err := cfg.ResolveInputs()
		require.NoError(t, err)
		assert.Equal(t, []string{"y"}, in)
	})
	t.Run("nothing selected", func(t *testing.T) {
		_, err := DefaultConfig().ResolveInputs()
		assert.Error(t, err)
	})
	t.Run("unknown set", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Select = "ert"
		_, err := cfg.ResolveInputs()
		assert.ErrorContains(t, err, `unknown set "ert"`)
	})
	t.Run("empty set", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Sets["e"] = nil
		cfg.Select = "e"
		_, err := cfg.ResolveInputs()
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"empty output":   func(c *Config) { c.Output = "" },
		"bad merge":      func(c *Config) { c.Merge = "rows" },
		"negative width": func(c *Config) { c.StatusWidth = -1 },
		"bad map format": func(c *Config) { c.MapFormat = "csv" },
		"bad report":     func(c *Config) { c.ReportFormat = "xml" },
		"zero total":     func(c *Config) { c.Sectors = geometry.Totals{2592, 0} },
		"bad log level":  func(c *Config) { c.Logging.Level = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
