package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jehanzebchaudhry/stoptime/internal/galerkin"
)

const (
	DefaultT0     = 0.0
	DefaultT1     = 10.0
	DefaultSteps  = 50
	DefaultDegree = 2
	DefaultTarget = 0.5
)

type Config struct {
	Problem       string   `yaml:"problem"`
	T0            float64  `yaml:"t0"`
	T1            float64  `yaml:"t1"`
	Steps         int      `yaml:"steps"`
	Degree        int      `yaml:"degree"`
	Y0            *float64 `yaml:"y0,omitempty"` // overrides the problem default when set
	Target        float64  `yaml:"target"`
	AdjointDegree int      `yaml:"adjoint_degree"`
	AdjointSteps  int      `yaml:"adjoint_steps"` // 0: reuse the truncated forward mesh
}

func DefaultConfig() *Config {
	return &Config{
		Problem:       "decay",
		T0:            DefaultT0,
		T1:            DefaultT1,
		Steps:         DefaultSteps,
		Degree:        DefaultDegree,
		Target:        DefaultTarget,
		AdjointDegree: DefaultDegree,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Mesh builds the uniform forward mesh described by the config.
func (c *Config) Mesh() galerkin.Mesh {
	return galerkin.Uniform(c.T0, c.T1, c.Steps)
}
