package config

func preset(mutate func(*Config)) *Config {
	cfg := Default()
	mutate(cfg)
	return cfg
}

// Presets are named starting configurations for the run and live commands.
var Presets = map[string]*Config{
	"reference": preset(func(c *Config) {}),
	"overcast": preset(func(c *Config) {
		c.IncidentEnergy = 300
	}),
	"dual-panel": preset(func(c *Config) {
		c.PanelCount = 2
		c.PanelSpec = &PanelSpecConfig{Height: 2, Width: 1, Efficiency: 0.2}
	}),
	"small-tank": preset(func(c *Config) {
		c.TankCapacity = 80
		c.InitialVolume = 20
	}),
	"to-forty": preset(func(c *Config) {
		c.TargetTemperature = 40
		c.DurationSeconds = 12 * 3600
	}),
}

// GetPreset returns a copy, so callers can layer flag overrides on top
// without mutating the shared table.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *cfg
	if cfg.PanelSpec != nil {
		spec := *cfg.PanelSpec
		cp.PanelSpec = &spec
	}
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
