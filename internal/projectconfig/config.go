// Package projectconfig provides the ProjectConfig struct and loader for
// .benchdiff.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up by Load.
const FileName = ".benchdiff.yaml"

// Default values for project configuration. New() references them and no
// other code should duplicate them.
const (
	DefaultProfile = "current"
	DefaultIDMode  = "page-id"
	DefaultFormat  = "csv"

	DefaultBootstrapConfidence = 0.95
	DefaultBootstrapSeed       = -1

	maxSearchDepth = 10
)

// OutputConfig controls where and how the comparison report is written.
type OutputConfig struct {
	Format string `yaml:"format,omitempty"`
	// Dir receives generated report files. Empty means the system temp dir.
	Dir string `yaml:"dir,omitempty"`
}

// BootstrapConfig controls the optional bootstrap confidence intervals.
type BootstrapConfig struct {
	Enabled    *bool   `yaml:"enabled,omitempty"`
	Confidence float64 `yaml:"confidence,omitempty"`
	Seed       *int64  `yaml:"seed,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .benchdiff.yaml.
type ProjectConfig struct {
	Profile          string          `yaml:"profile,omitempty"`
	IDMode           string          `yaml:"id_mode,omitempty"`
	Output           OutputConfig    `yaml:"output,omitempty"`
	FailOnRegression *bool           `yaml:"fail_on_regression,omitempty"`
	Bootstrap        BootstrapConfig `yaml:"bootstrap,omitempty"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `yaml:"-"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Profile: DefaultProfile,
		IDMode:  DefaultIDMode,
		Output: OutputConfig{
			Format: DefaultFormat,
		},
		FailOnRegression: boolPtr(false),
		Bootstrap: BootstrapConfig{
			Enabled:    boolPtr(false),
			Confidence: DefaultBootstrapConfidence,
			Seed:       int64Ptr(DefaultBootstrapSeed),
		},
	}
}

// Load finds .benchdiff.yaml by walking up from startDir, unmarshals it, and
// fills in missing fields with defaults. If no config file is found it
// returns defaults with a nil error. Real I/O errors are returned.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	path, data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if c := fileCfg.Bootstrap.Confidence; c != 0 && (c <= 0 || c >= 1) {
		return nil, fmt.Errorf("parsing %s: bootstrap.confidence must be between 0 and 1, got %g", path, c)
	}

	mergeConfig(cfg, &fileCfg)
	cfg.Path = path
	return cfg, nil
}

// findConfigFile walks up from dir looking for .benchdiff.yaml. Returns
// os.ErrNotExist if no config file is found.
func findConfigFile(dir string) (string, []byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for range maxSearchDepth {
		p := filepath.Join(dir, FileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return p, data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if src.Profile != "" {
		dst.Profile = src.Profile
	}
	if src.IDMode != "" {
		dst.IDMode = src.IDMode
	}

	// Output
	if src.Output.Format != "" {
		dst.Output.Format = src.Output.Format
	}
	if src.Output.Dir != "" {
		dst.Output.Dir = src.Output.Dir
	}

	if src.FailOnRegression != nil {
		dst.FailOnRegression = src.FailOnRegression
	}

	// Bootstrap
	if src.Bootstrap.Enabled != nil {
		dst.Bootstrap.Enabled = src.Bootstrap.Enabled
	}
	if src.Bootstrap.Confidence != 0 {
		dst.Bootstrap.Confidence = src.Bootstrap.Confidence
	}
	if src.Bootstrap.Seed != nil {
		dst.Bootstrap.Seed = src.Bootstrap.Seed
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func int64Ptr(v int64) *int64 {
	return &v
}
