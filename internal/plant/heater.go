package plant

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// DefaultMaxTemperature is the heating ceiling in °C. With heat loss ignored
// the temperature would otherwise grow without bound.
const DefaultMaxTemperature = 95.0

// PanelArray aggregates panels into one solar collector. Each array owns its
// own panel slice, allocated at construction.
type PanelArray struct {
	fluid       FluidProperties
	panels      []*Panel
	incident    float64
	incidentSet bool
	maxTemp     float64
}

// NewPanelArray builds count panels. A nil custom spec means the default
// spec; a non-nil spec must be complete and valid and is applied uniformly.
func NewPanelArray(count int, custom *PanelSpec) (*PanelArray, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPanelCount, count)
	}
	spec := DefaultPanelSpec()
	if custom != nil {
		spec = *custom
	}
	panels := make([]*Panel, 0, count)
	for i := 0; i < count; i++ {
		p, err := NewPanel(spec)
		if err != nil {
			return nil, err
		}
		panels = append(panels, p)
	}
	return &PanelArray{
		fluid:   Water,
		panels:  panels,
		maxTemp: DefaultMaxTemperature,
	}, nil
}

func (a *PanelArray) PanelCount() int {
	return len(a.panels)
}

func (a *PanelArray) MaxTemperature() float64 {
	return a.maxTemp
}

func (a *PanelArray) SetMaxTemperature(v float64) error {
	if v <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidMaxTemperature, v)
	}
	a.maxTemp = v
	return nil
}

// SetIncidentEnergy stores the solar input in kJ per hour per m². Any
// magnitude is accepted here; validation happens when the value is read.
func (a *PanelArray) SetIncidentEnergy(v float64) {
	a.incident = v
	a.incidentSet = true
}

// IncidentEnergy returns the configured solar input. Reading before any
// value was stored fails, as does a stored negative value. Zero is a
// legitimate configuration.
func (a *PanelArray) IncidentEnergy() (float64, error) {
	if !a.incidentSet {
		return 0, ErrIncidentEnergyNotSet
	}
	if a.incident < 0 {
		return 0, fmt.Errorf("%w: got %g", ErrNegativeIncidentEnergy, a.incident)
	}
	return a.incident, nil
}

// SetSpecAt applies a partial spec update to the panel at index. An index
// beyond the array is an error, never a silent no-op.
func (a *PanelArray) SetSpecAt(index int, patch SpecPatch) error {
	if index < 0 || index >= len(a.panels) {
		return fmt.Errorf("%w: index %d, %d panels", ErrPanelIndexOutOfRange, index, len(a.panels))
	}
	return a.panels[index].SetSpec(patch)
}

// SpecAt returns the spec of the panel at index.
func (a *PanelArray) SpecAt(index int) (PanelSpec, error) {
	if index < 0 || index >= len(a.panels) {
		return PanelSpec{}, fmt.Errorf("%w: index %d, %d panels", ErrPanelIndexOutOfRange, index, len(a.panels))
	}
	return a.panels[index].Spec(), nil
}

// HeatWater passes volume liters at the inlet temperature through the array
// and returns the outlet temperature. The volume is split evenly across
// panels, every panel sees the same inlet temperature (uniform distribution,
// independent parallel flow paths), and the result is the mass-weighted
// average of the panel outlets.
//
// An inlet at or above the max temperature short-circuits to the max: an
// idealized thermostatic cutoff that truncates rather than plateaus.
func (a *PanelArray) HeatWater(volume, inlet float64) (float64, error) {
	if volume <= 0 {
		return 0, fmt.Errorf("%w: got %g L", ErrNonPositiveVolume, volume)
	}
	if inlet >= a.maxTemp {
		return a.maxTemp, nil
	}
	incident, err := a.IncidentEnergy()
	if err != nil {
		return 0, err
	}

	massPerPanel := volume / float64(len(a.panels)) * a.fluid.Density
	temps := make([]float64, len(a.panels))
	masses := make([]float64, len(a.panels))
	for i, p := range a.panels {
		out, err := p.OutletTemperature(incident, massPerPanel, inlet, a.fluid)
		if err != nil {
			return 0, err
		}
		temps[i] = out
		masses[i] = massPerPanel
	}

	totalMass := volume * a.fluid.Density
	return floats.Dot(temps, masses) / totalMass, nil
}
