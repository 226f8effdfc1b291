// Package viz renders run results for the terminal.
package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"

	"github.com/anders-th/solarloop/internal/sim"
)

const (
	graphHeight = 10
	graphWidth  = 72
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(18)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).MarginTop(1)
)

// Temperatures extracts the temperature series from a trace.
func Temperatures(trace []sim.Sample) []float64 {
	temps := make([]float64, len(trace))
	for i, s := range trace {
		temps[i] = s.Temperature
	}
	return temps
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

// RenderReport builds the human-readable report of a finished run.
func RenderReport(result *sim.Result) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("solar water heater run"))
	b.WriteString("\n\n")
	b.WriteString(row("outcome", result.Outcome.String()) + "\n")
	b.WriteString(row("elapsed", fmt.Sprintf("%d s", result.Elapsed)) + "\n")
	b.WriteString(row("final temperature", fmt.Sprintf("%.2f °C", result.FinalTemperature)) + "\n")
	if result.StalledCycles > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("%-18s%d", "stalled cycles", result.StalledCycles)) + "\n")
	}
	for name, val := range result.Metrics {
		b.WriteString(row(name, fmt.Sprintf("%.3f", val)) + "\n")
	}

	temps := Temperatures(result.Trace)
	if len(temps) > 1 {
		b.WriteString(row("temperature range", fmt.Sprintf("%.2f to %.2f °C", floats.Min(temps), floats.Max(temps))) + "\n")
		graph := asciigraph.Plot(temps,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("tank temperature (°C) vs time (s)"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	return b.String()
}
