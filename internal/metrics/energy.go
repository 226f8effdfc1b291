// Package metrics provides run metrics for the simulation controller.
package metrics

import (
	"github.com/anders-th/solarloop/internal/plant"
	"github.com/anders-th/solarloop/internal/sim"
)

// TemperatureRise tracks the tank temperature gain over a run in °C.
type TemperatureRise struct {
	name    string
	samples int
	first   float64
	last    float64
}

func NewTemperatureRise() *TemperatureRise {
	return &TemperatureRise{name: "temperature_rise"}
}

func (m *TemperatureRise) Name() string { return m.name }

func (m *TemperatureRise) Observe(s sim.Sample) {
	if m.samples == 0 {
		m.first = s.Temperature
	}
	m.last = s.Temperature
	m.samples++
}

func (m *TemperatureRise) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.last - m.first
}

func (m *TemperatureRise) Reset() {
	m.samples = 0
	m.first = 0
	m.last = 0
}

// AbsorbedEnergy tracks the change in the tank's thermal energy over a run,
// in kJ relative to 0 °C. With heat loss ignored this is the energy the
// panels delivered, minus whatever spilled on clamped returns.
type AbsorbedEnergy struct {
	name    string
	fluid   plant.FluidProperties
	samples int
	first   float64
	last    float64
}

func NewAbsorbedEnergy() *AbsorbedEnergy {
	return &AbsorbedEnergy{name: "absorbed_energy_kj", fluid: plant.Water}
}

func (m *AbsorbedEnergy) Name() string { return m.name }

func (m *AbsorbedEnergy) Observe(s sim.Sample) {
	e := s.Volume * m.fluid.Density * m.fluid.SpecificHeatCapacity * s.Temperature
	if m.samples == 0 {
		m.first = e
	}
	m.last = e
	m.samples++
}

func (m *AbsorbedEnergy) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.last - m.first
}

func (m *AbsorbedEnergy) Reset() {
	m.samples = 0
	m.first = 0
	m.last = 0
}
