package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// profile is a benchmark run's settings, loaded from an optional YAML
// file so repeatable benchmark configurations don't have to live on the
// command line. This mirrors funvibe/funxy's own YAML-driven config
// loading.
type profile struct {
	Keys      int    `yaml:"keys"`
	ValueSize int    `yaml:"valueSize"`
	Seed      int64  `yaml:"seed"`
	Label     string `yaml:"label"`
}

func defaultProfile() profile {
	return profile{Keys: 100_000, ValueSize: 16, Seed: 1, Label: "default"}
}

func loadProfile(path string) (profile, error) {
	p := defaultProfile()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return profile{}, errors.Wrapf(err, "reading benchmark profile %q", path)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return profile{}, errors.Wrapf(err, "parsing benchmark profile %q", path)
	}
	return p, nil
}
