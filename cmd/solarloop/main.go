package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/anders-th/solarloop/internal/config"
	"github.com/anders-th/solarloop/internal/export"
	"github.com/anders-th/solarloop/internal/metrics"
	"github.com/anders-th/solarloop/internal/sim"
	"github.com/anders-th/solarloop/internal/tui"
	"github.com/anders-th/solarloop/internal/viz"
)

var (
	configFile string
	preset     string
	verbose    bool

	panelCount      int
	panelHeight     float64
	panelWidth      float64
	panelEfficiency float64
	incidentEnergy  float64
	maxTemperature  float64
	tankCapacity    float64
	initialVolume   float64
	initialTemp     float64
	pumpRate        float64
	targetTemp      float64
	seconds         int
	hours           int
	csvOut          string

	// Live view pacing.
	speed     int
	frameRate int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "solarloop",
		Short: "closed-loop solar water heater simulation",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.WarnLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and report the result",
		RunE:  runSimulation,
	}
	addPlantFlags(runCmd)
	runCmd.Flags().StringVar(&csvOut, "csv", "", "write the per-second trace to this CSV file")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with a live terminal view",
		RunE:  runLive,
	}
	addPlantFlags(liveCmd)
	liveCmd.Flags().IntVar(&speed, "speed", 60, "simulated seconds per frame")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.Default())
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named starting configurations",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, initCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addPlantFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "named starting configuration")
	cmd.Flags().IntVar(&panelCount, "panels", config.DefaultPanelCount, "number of panels")
	cmd.Flags().Float64Var(&panelHeight, "panel-height", 1, "panel height (m)")
	cmd.Flags().Float64Var(&panelWidth, "panel-width", 1, "panel width (m)")
	cmd.Flags().Float64Var(&panelEfficiency, "panel-efficiency", 0.18, "panel efficiency [0,1]")
	cmd.Flags().Float64Var(&incidentEnergy, "incident", config.DefaultIncidentEnergy, "incident solar energy (kJ/h/m²)")
	cmd.Flags().Float64Var(&maxTemperature, "max-temp", 95, "heating ceiling (°C)")
	cmd.Flags().Float64Var(&tankCapacity, "capacity", config.DefaultTankCapacity, "tank capacity (L)")
	cmd.Flags().Float64Var(&initialVolume, "volume", config.DefaultInitialVolume, "initial water volume (L)")
	cmd.Flags().Float64Var(&initialTemp, "temp", config.DefaultInitialTemperature, "initial water temperature (°C)")
	cmd.Flags().Float64Var(&pumpRate, "rate", 1, "pump rate (L/s)")
	cmd.Flags().Float64Var(&targetTemp, "target", 0, "target temperature (°C, 0 = heating ceiling)")
	cmd.Flags().IntVar(&seconds, "seconds", 0, "simulation duration in seconds")
	cmd.Flags().IntVar(&hours, "hours", 1, "simulation duration in hours")
}

// buildConfig layers preset, config file and changed flags, in that order.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("panels") {
		cfg.PanelCount = panelCount
	}
	if cmd.Flags().Changed("panel-height") || cmd.Flags().Changed("panel-width") || cmd.Flags().Changed("panel-efficiency") {
		cfg.PanelSpec = &config.PanelSpecConfig{
			Height:     panelHeight,
			Width:      panelWidth,
			Efficiency: panelEfficiency,
		}
	}
	if cmd.Flags().Changed("incident") {
		cfg.IncidentEnergy = incidentEnergy
	}
	if cmd.Flags().Changed("max-temp") {
		cfg.MaxTemperature = maxTemperature
	}
	if cmd.Flags().Changed("capacity") {
		cfg.TankCapacity = tankCapacity
	}
	if cmd.Flags().Changed("volume") {
		cfg.InitialVolume = initialVolume
	}
	if cmd.Flags().Changed("temp") {
		cfg.InitialTemperature = initialTemp
	}
	if cmd.Flags().Changed("rate") {
		cfg.PumpRate = pumpRate
	}
	if cmd.Flags().Changed("target") {
		cfg.TargetTemperature = targetTemp
	}
	if cmd.Flags().Changed("seconds") {
		cfg.DurationSeconds = seconds
	} else if cmd.Flags().Changed("hours") {
		cfg.DurationSeconds = hours * sim.SecondsPerHour
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	ctrl, err := cfg.Build()
	if err != nil {
		return err
	}
	ctrl.AddMetric(metrics.NewTemperatureRise())
	ctrl.AddMetric(metrics.NewAbsorbedEnergy())

	result, err := ctrl.RunSeconds(context.Background(), cfg.DurationSeconds)
	if err != nil {
		return err
	}

	fmt.Print(viz.RenderReport(result))

	if csvOut != "" {
		if err := export.WriteTraceCSV(csvOut, result.Trace); err != nil {
			return fmt.Errorf("failed to write trace: %w", err)
		}
		fmt.Printf("trace written to %s\n", csvOut)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	ctrl, err := cfg.Build()
	if err != nil {
		return err
	}
	// The warning stream would fight the TUI for the terminal.
	quiet := log.New()
	quiet.SetLevel(log.ErrorLevel)
	ctrl.SetLogger(quiet)

	return tui.Run(ctrl, cfg.DurationSeconds, speed, frameRate)
}
