// Package tuning holds the operational knobs of the simulation, loadable
// from a YAML file with compiled-in defaults for every field.
package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning configures the simulation runtime. Gameplay balance numbers live
// in the catalog package; these are operational parameters only.
type Tuning struct {
	GridSize              int    `yaml:"grid_size"`
	TickIntervalMs        int    `yaml:"tick_interval_ms"`
	MaxOfflineSeconds     int    `yaml:"max_offline_seconds"`
	AutosaveIntervalTicks int    `yaml:"autosave_interval_ticks"`
	APIPort               int    `yaml:"api_port"`
	DBPath                string `yaml:"db_path"`
	SaveSlots             int    `yaml:"save_slots"`
	ActionsPerMinute      int    `yaml:"actions_per_minute"`
}

// Default returns the standard configuration.
func Default() Tuning {
	return Tuning{
		GridSize:              64,
		TickIntervalMs:        1000,
		MaxOfflineSeconds:     4 * 60 * 60,
		AutosaveIntervalTicks: 5,
		APIPort:               8080,
		DBPath:                "data/pixelcity.db",
		SaveSlots:             3,
		ActionsPerMinute:      120,
	}
}

// Load reads a YAML tuning file over the defaults. A missing path returns
// the defaults without error; a malformed file is an error.
func Load(path string) (Tuning, error) {
	t := Default()
	if path == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}
