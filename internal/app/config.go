package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	OutDir  string // base directory for generated structures and the run log
	Quiet   bool   // suppress console logging; the run log file is always written
	LogName string // run log file name; defaults to LOGFILE.txt
}

// Recipe is a non-interactive run description loaded from YAML. Flags set
// on the command line take precedence over recipe values.
type Recipe struct {
	Input     string  `yaml:"input"`
	Input2    string  `yaml:"input2,omitempty"`
	Family    string  `yaml:"family"`
	Wall      string  `yaml:"wall"`
	PolarAxis string  `yaml:"polar_axis,omitempty"`
	WallSize  int     `yaml:"wall_size"`
	Supercell [3]int  `yaml:"supercell,omitempty"`
	Cutoff    float64 `yaml:"cutoff"`

	// Manual orientation relationship; row-major 3x3 matrices.
	D1        *[9]float64 `yaml:"d1,omitempty"`
	D2        *[9]float64 `yaml:"d2,omitempty"`
	StackAxis *int        `yaml:"stack_axis,omitempty"`
}

// LoadRecipe parses a YAML recipe file.
func LoadRecipe(path string) (Recipe, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Recipe{}, err
	}
	var r Recipe
	if err := yaml.Unmarshal(raw, &r); err != nil {
		return Recipe{}, fmt.Errorf("parse recipe %s: %w", path, err)
	}
	return r, nil
}
