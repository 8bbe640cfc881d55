package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/csvy/hockey-elo/internal/core/elo"
)

// LoadModelParams reads a YAML parameter file and overlays it on the
// engine defaults, so a file only needs the keys it changes.
func LoadModelParams(path string) (elo.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return elo.Params{}, fmt.Errorf("read model params: %w", err)
	}

	params := elo.DefaultParams()
	if err := yaml.Unmarshal(data, &params); err != nil {
		return elo.Params{}, fmt.Errorf("parse model params: %w", err)
	}

	return params, nil
}
