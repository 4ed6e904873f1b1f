package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/zetadsi/internal/analysis"
)

const (
	DefaultWorkers = 1
	DefaultDataDir = ".dsi"
)

type Config struct {
	Convergence  ConvergenceConfig  `yaml:"convergence"`
	Perturbation PerturbationConfig `yaml:"perturbation"`
	Reference    ReferenceConfig    `yaml:"reference"`
	DataDir      string             `yaml:"data_dir"`
}

type ConvergenceConfig struct {
	Sizes   []int `yaml:"sizes"`
	Workers int   `yaml:"workers"`
}

type PerturbationConfig struct {
	Deltas      []float64 `yaml:"deltas"`
	ShiftFactor float64   `yaml:"shift_factor"`
	BaseSize    int       `yaml:"base_size"`
	Selection   string    `yaml:"selection"`
	Seed        int64     `yaml:"seed"`
}

type ReferenceConfig struct {
	Samples int   `yaml:"samples"`
	Seed    int64 `yaml:"seed"`
}

func DefaultConfig() *Config {
	p := analysis.DefaultPerturbation()
	return &Config{
		Convergence: ConvergenceConfig{
			Sizes:   append([]int(nil), analysis.DefaultSizes...),
			Workers: DefaultWorkers,
		},
		Perturbation: PerturbationConfig{
			Deltas:      p.Deltas,
			ShiftFactor: p.ShiftFactor,
			BaseSize:    p.BaseSize,
			Selection:   string(p.Selection),
			Seed:        p.Seed,
		},
		Reference: ReferenceConfig{
			Samples: analysis.DefaultReferenceSamples,
			Seed:    analysis.DefaultSeed,
		},
		DataDir: DefaultDataDir,
	}
}

// Load reads a YAML file over DefaultConfig, so omitted keys keep their
// defaults. A list given in the file replaces the default list.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.LoadFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a YAML file over c. Keys absent from the file keep their
// current values, so a file can refine a preset.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// PerturbationParams converts the perturbation section into analyzer parameters.
func (c *Config) PerturbationParams() (analysis.PerturbationConfig, error) {
	sel, err := analysis.ParseSelection(c.Perturbation.Selection)
	if err != nil {
		return analysis.PerturbationConfig{}, err
	}
	return analysis.PerturbationConfig{
		Deltas:      append([]float64(nil), c.Perturbation.Deltas...),
		ShiftFactor: c.Perturbation.ShiftFactor,
		BaseSize:    c.Perturbation.BaseSize,
		Selection:   sel,
		Seed:        c.Perturbation.Seed,
	}, nil
}
