// Package tui provides a live terminal view of a running simulation.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/anders-th/solarloop/internal/sim"
)

const historyCapacity = 600

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps the controller on every frame tick and plots the recent tank
// temperature history.
type Model struct {
	ctrl     *sim.Controller
	duration int // seconds of simulated time to run
	speed    int // cycles per frame
	fps      int

	temps   []float64
	stalls  int
	paused  bool
	done    bool
	outcome sim.Outcome
	err     error
}

func NewModel(ctrl *sim.Controller, duration, speed, fps int) Model {
	return Model{
		ctrl:     ctrl,
		duration: duration,
		speed:    speed,
		fps:      fps,
		temps:    []float64{ctrl.TankTemperature()},
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		}
		return m, nil

	case TickMsg:
		if !m.paused && !m.done {
			m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) advance() {
	for i := 0; i < m.speed && !m.done; i++ {
		s, err := m.ctrl.Step()
		if err != nil {
			m.err = err
			m.done = true
			return
		}
		if s.Stalled {
			m.stalls++
		}
		m.temps = append(m.temps, s.Temperature)
		if len(m.temps) > historyCapacity {
			m.temps = m.temps[1:]
		}
		if m.ctrl.Converged() {
			m.outcome = sim.OutcomeConverged
			m.done = true
		} else if m.ctrl.Elapsed() >= m.duration {
			m.outcome = sim.OutcomeTimeExhausted
			m.done = true
		}
	}
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("solar water heater (live)"))
	b.WriteString("\n")
	b.WriteString(row("simulated", fmt.Sprintf("%d s / %d s", m.ctrl.Elapsed(), m.duration)) + "\n")
	b.WriteString(row("tank", fmt.Sprintf("%.2f °C, %.1f L", m.ctrl.TankTemperature(), m.ctrl.TankVolume())) + "\n")
	b.WriteString(row("target", fmt.Sprintf("%.1f °C", m.ctrl.TargetTemperature())) + "\n")
	if m.stalls > 0 {
		b.WriteString(row("stalled", fmt.Sprintf("%d cycles", m.stalls)) + "\n")
	}

	if len(m.temps) > 1 {
		graph := asciigraph.Plot(m.temps,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("tank temperature (°C)"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(pausedStyle.Render("error: "+m.err.Error()) + "\n")
	case m.done:
		b.WriteString(doneStyle.Render(m.outcome.String()) + "\n")
	case m.paused:
		b.WriteString(pausedStyle.Render("paused") + "\n")
	}

	b.WriteString(helpStyle.Render("space pause  q quit"))
	b.WriteString("\n")
	return b.String()
}

// Run drives the live view until the simulation finishes or the user quits.
func Run(ctrl *sim.Controller, duration, speed, fps int) error {
	p := tea.NewProgram(NewModel(ctrl, duration, speed, fps))
	_, err := p.Run()
	return err
}
