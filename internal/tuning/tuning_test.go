package tuning

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.GridSize != 64 || cfg.TickIntervalMs != 1000 {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesSelectedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "grid_size: 32\napi_port: 9999\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GridSize != 32 || cfg.APIPort != 9999 {
		t.Errorf("cfg = %+v, want overridden grid size and port", cfg)
	}
	// Untouched fields keep their defaults.
	if cfg.MaxOfflineSeconds != 4*60*60 {
		t.Errorf("max offline = %d, want the default", cfg.MaxOfflineSeconds)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid_size: [not a number"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed yaml should error")
	}
}
