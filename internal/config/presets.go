package config

import "sort"

// Presets are named configurations for common runs.
var Presets = map[string]*Config{
	// paper reproduces Tables 5.1 and 5.2.
	"paper": DefaultConfig(),
	"quick": {
		Convergence: ConvergenceConfig{Sizes: []int{10, 100, 1_000, 10_000}, Workers: 1},
		Perturbation: PerturbationConfig{
			Deltas: []float64{0, 0.01, 0.05, 0.10}, ShiftFactor: 1.2, BaseSize: 1_000, Selection: "tail", Seed: 42,
		},
		Reference: ReferenceConfig{Samples: 10_000, Seed: 42},
		DataDir:   DefaultDataDir,
	},
	"sweep": {
		Convergence: ConvergenceConfig{
			Sizes:   []int{10, 100, 1_000, 10_000, 100_000, 1_000_000},
			Workers: 0,
		},
		Perturbation: PerturbationConfig{
			Deltas:      []float64{0, 0.01, 0.02, 0.04, 0.06, 0.08, 0.10, 0.12, 0.14},
			ShiftFactor: 1.2, BaseSize: 10_000, Selection: "tail", Seed: 42,
		},
		Reference: ReferenceConfig{Samples: 1_000_000, Seed: 42},
		DataDir:   DefaultDataDir,
	},
	// original scales a seeded random subset, as the published scripts did.
	"original": {
		Convergence: ConvergenceConfig{Sizes: []int{100, 1_000, 10_000, 100_000, 1_000_000}, Workers: 1},
		Perturbation: PerturbationConfig{
			Deltas:      []float64{0, 0.01, 0.02, 0.05, 0.10, 0.15, 0.20},
			ShiftFactor: 1.5, BaseSize: 10_000, Selection: "random", Seed: 42,
		},
		Reference: ReferenceConfig{Samples: 1_000_000, Seed: 42},
		DataDir:   DefaultDataDir,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	c.Convergence.Sizes = append([]int(nil), cfg.Convergence.Sizes...)
	c.Perturbation.Deltas = append([]float64(nil), cfg.Perturbation.Deltas...)
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
