package hnsw

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config's tunable fields for YAML loading. Distance
// is not representable in YAML, so LoadConfigYAML always pairs the
// decoded fields with vector.EuclideanDistance; callers wanting a
// different metric should set cfg.Distance after loading.
type fileConfig struct {
	Dim             int  `yaml:"dim"`
	Layers          int  `yaml:"layers"`
	LevelMultiplier int  `yaml:"level_multiplier"`
	MaxIndexSearch  int  `yaml:"max_index_search"`
	MaxSearch       int  `yaml:"max_search"`
	Progress        bool `yaml:"progress"`
}

// LoadConfigYAML reads build parameters from a YAML file, for harnesses
// (the benchmarks package) that want declarative configuration instead
// of hardcoded constants. Unset fields fall back to DefaultConfig's
// values.
func LoadConfigYAML(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("hnsw: read config %s: %w", path, err)
	}

	fc := fileConfig{}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("hnsw: parse config %s: %w", path, err)
	}

	cfg := DefaultConfig(fc.Dim)
	if fc.Layers > 0 {
		cfg.Layers = fc.Layers
	}
	if fc.LevelMultiplier > 0 {
		cfg.LevelMultiplier = fc.LevelMultiplier
	}
	if fc.MaxIndexSearch > 0 {
		cfg.MaxIndexSearch = fc.MaxIndexSearch
	}
	if fc.MaxSearch > 0 {
		cfg.MaxSearch = fc.MaxSearch
	}
	cfg.Progress = fc.Progress

	return cfg, nil
}
