package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/anders-th/solarloop/internal/plant"
	"github.com/anders-th/solarloop/internal/sim"
)

const (
	DefaultPanelCount         = 1
	DefaultIncidentEnergy     = 1224.0 // kJ/h/m², hourly solar constant for 1 m²
	DefaultTankCapacity       = 500.0  // L
	DefaultInitialVolume      = 60.0   // L
	DefaultInitialTemperature = 15.0   // °C
	DefaultDurationSeconds    = 3600
)

var ErrIncompletePanelSpec = errors.New("config: custom panel spec needs height, width and efficiency")

// PanelSpecConfig is a uniform custom panel spec. All three fields are
// required when the block is present.
type PanelSpecConfig struct {
	Height     float64 `yaml:"height"`
	Width      float64 `yaml:"width"`
	Efficiency float64 `yaml:"efficiency"`
}

type Config struct {
	PanelCount         int              `yaml:"panel_count"`
	PanelSpec          *PanelSpecConfig `yaml:"panel_spec,omitempty"`
	IncidentEnergy     float64          `yaml:"incident_energy"`
	MaxTemperature     float64          `yaml:"max_temperature"`
	TankCapacity       float64          `yaml:"tank_capacity"`
	InitialVolume      float64          `yaml:"initial_volume"`
	InitialTemperature float64          `yaml:"initial_temperature"`
	PumpRate           float64          `yaml:"pump_rate"`
	// TargetTemperature 0 means "use the heater max".
	TargetTemperature float64 `yaml:"target_temperature,omitempty"`
	DurationSeconds   int     `yaml:"duration_seconds"`
}

func Default() *Config {
	return &Config{
		PanelCount:         DefaultPanelCount,
		IncidentEnergy:     DefaultIncidentEnergy,
		MaxTemperature:     plant.DefaultMaxTemperature,
		TankCapacity:       DefaultTankCapacity,
		InitialVolume:      DefaultInitialVolume,
		InitialTemperature: DefaultInitialTemperature,
		PumpRate:           plant.DefaultPumpRate,
		DurationSeconds:    DefaultDurationSeconds,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
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

// Build wires a controller from the config. Domain validation lives in the
// plant constructors; Build only translates fields.
func (c *Config) Build() (*sim.Controller, error) {
	var custom *plant.PanelSpec
	if c.PanelSpec != nil {
		if c.PanelSpec.Height == 0 || c.PanelSpec.Width == 0 {
			return nil, ErrIncompletePanelSpec
		}
		custom = &plant.PanelSpec{
			Height:     c.PanelSpec.Height,
			Width:      c.PanelSpec.Width,
			Efficiency: c.PanelSpec.Efficiency,
		}
	}

	heater, err := plant.NewPanelArray(c.PanelCount, custom)
	if err != nil {
		return nil, err
	}
	if c.MaxTemperature != 0 {
		if err := heater.SetMaxTemperature(c.MaxTemperature); err != nil {
			return nil, err
		}
	}
	heater.SetIncidentEnergy(c.IncidentEnergy)

	tank, err := plant.NewTank(c.TankCapacity, c.InitialVolume, c.InitialTemperature)
	if err != nil {
		return nil, err
	}

	pump, err := plant.NewCirculationPump(heater, tank, c.PumpRate)
	if err != nil {
		return nil, err
	}

	ctrl := sim.New(heater, tank, pump)
	if c.TargetTemperature != 0 {
		ctrl.SetTargetTemperature(c.TargetTemperature)
	}
	return ctrl, nil
}
