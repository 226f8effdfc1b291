package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/anders-th/solarloop/internal/plant"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.PanelCount != 1 {
		t.Errorf("expected 1 panel, got %d", cfg.PanelCount)
	}
	if cfg.IncidentEnergy != 1224 {
		t.Errorf("expected incident energy 1224, got %g", cfg.IncidentEnergy)
	}
	if cfg.TankCapacity != 500 || cfg.InitialVolume != 60 || cfg.InitialTemperature != 15 {
		t.Errorf("unexpected tank defaults: %+v", cfg)
	}
	if cfg.PumpRate != 1 {
		t.Errorf("expected pump rate 1, got %g", cfg.PumpRate)
	}
	if cfg.DurationSeconds != 3600 {
		t.Errorf("expected duration 3600 s, got %d", cfg.DurationSeconds)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solarloop.yaml")

	cfg := Default()
	cfg.PanelCount = 2
	cfg.PanelSpec = &PanelSpecConfig{Height: 2, Width: 1, Efficiency: 0.2}
	cfg.TargetTemperature = 40

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.PanelCount != 2 || loaded.TargetTemperature != 40 {
		t.Errorf("roundtrip lost fields: %+v", loaded)
	}
	if loaded.PanelSpec == nil || *loaded.PanelSpec != *cfg.PanelSpec {
		t.Errorf("roundtrip lost panel spec: %+v", loaded.PanelSpec)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBuildDefaults(t *testing.T) {
	ctrl, err := Default().Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if ctrl.TankTemperature() != 15 {
		t.Errorf("expected tank at 15 °C, got %g", ctrl.TankTemperature())
	}
	if ctrl.TankVolume() != 60 {
		t.Errorf("expected 60 L, got %g", ctrl.TankVolume())
	}
	if ctrl.TargetTemperature() != plant.DefaultMaxTemperature {
		t.Errorf("expected default target %g, got %g", plant.DefaultMaxTemperature, ctrl.TargetTemperature())
	}
}

func TestBuildTargetOverride(t *testing.T) {
	cfg := Default()
	cfg.TargetTemperature = 40

	ctrl, err := cfg.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if ctrl.TargetTemperature() != 40 {
		t.Errorf("expected target 40, got %g", ctrl.TargetTemperature())
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"no panels", func(c *Config) { c.PanelCount = 0 }, plant.ErrInvalidPanelCount},
		{"incomplete spec", func(c *Config) { c.PanelSpec = &PanelSpecConfig{Height: 2} }, ErrIncompletePanelSpec},
		{"bad efficiency", func(c *Config) {
			c.PanelSpec = &PanelSpecConfig{Height: 1, Width: 1, Efficiency: 2}
		}, plant.ErrInvalidPanelSpec},
		{"bad capacity", func(c *Config) { c.TankCapacity = -1 }, plant.ErrInvalidTankCapacity},
		{"overfull tank", func(c *Config) { c.InitialVolume = 600 }, plant.ErrInvalidTankVolume},
		{"bad rate", func(c *Config) { c.PumpRate = 0 }, plant.ErrNonPositiveRate},
		{"bad ceiling", func(c *Config) { c.MaxTemperature = -5 }, plant.ErrInvalidMaxTemperature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if _, err := cfg.Build(); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("dual-panel")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.PanelCount != 2 {
		t.Errorf("expected 2 panels, got %d", cfg.PanelCount)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestGetPresetReturnsCopy(t *testing.T) {
	cfg := GetPreset("dual-panel")
	cfg.PanelCount = 99
	cfg.PanelSpec.Height = 99

	fresh := GetPreset("dual-panel")
	if fresh.PanelCount != 2 || fresh.PanelSpec.Height != 2 {
		t.Errorf("preset table mutated through returned copy: %+v", fresh)
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	found := false
	for _, n := range names {
		if n == "reference" {
			found = true
		}
	}
	if !found {
		t.Error("expected reference preset in listing")
	}
}
