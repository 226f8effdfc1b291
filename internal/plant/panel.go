package plant

const (
	DefaultPanelHeight     = 1.0  // m
	DefaultPanelWidth      = 1.0  // m
	DefaultPanelEfficiency = 0.18 // fraction of incident energy absorbed
)

// PanelSpec describes the geometry and conversion efficiency of one panel.
type PanelSpec struct {
	Height     float64 // m, > 0
	Width      float64 // m, > 0
	Efficiency float64 // within [0, 1]
}

// DefaultPanelSpec returns the spec panels are built with when no custom
// spec is supplied.
func DefaultPanelSpec() PanelSpec {
	return PanelSpec{
		Height:     DefaultPanelHeight,
		Width:      DefaultPanelWidth,
		Efficiency: DefaultPanelEfficiency,
	}
}

func (s PanelSpec) Validate() error {
	if s.Height <= 0 || s.Width <= 0 {
		return ErrInvalidPanelSpec
	}
	if s.Efficiency < 0 || s.Efficiency > 1 {
		return ErrInvalidPanelSpec
	}
	return nil
}

// Area returns the collecting surface in m².
func (s PanelSpec) Area() float64 {
	return s.Height * s.Width
}

// SpecPatch is a partial update to a panel spec. Nil fields keep their
// current value.
type SpecPatch struct {
	Height     *float64
	Width      *float64
	Efficiency *float64
}

func (p SpecPatch) applyTo(s PanelSpec) PanelSpec {
	if p.Height != nil {
		s.Height = *p.Height
	}
	if p.Width != nil {
		s.Width = *p.Width
	}
	if p.Efficiency != nil {
		s.Efficiency = *p.Efficiency
	}
	return s
}

// Panel converts incident solar energy into a temperature rise for a parcel
// of fluid passing through it.
type Panel struct {
	spec PanelSpec
}

func NewPanel(spec PanelSpec) (*Panel, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &Panel{spec: spec}, nil
}

func (p *Panel) Spec() PanelSpec {
	return p.spec
}

// SetSpec applies a partial update. The merged spec is validated before
// anything changes, so a rejected patch leaves the panel untouched.
func (p *Panel) SetSpec(patch SpecPatch) error {
	merged := patch.applyTo(p.spec)
	if err := merged.Validate(); err != nil {
		return err
	}
	p.spec = merged
	return nil
}

// OutletTemperature computes the temperature of a water parcel after one
// pass through the panel. The absorbed energy is
//
//	Q = incident × height × width × efficiency
//
// and the heat balance Q = m·c·ΔT gives T2 = Q/(m·c) + T1.
//
// incident is in kJ per hour per m² and must be non-negative; mass is in kg
// and must be positive.
func (p *Panel) OutletTemperature(incident, mass, inlet float64, fluid FluidProperties) (float64, error) {
	if incident < 0 {
		return 0, ErrNegativeIncidentEnergy
	}
	if mass <= 0 {
		return 0, ErrNonPositiveMass
	}
	q := incident * p.spec.Area() * p.spec.Efficiency
	return q/(mass*fluid.SpecificHeatCapacity) + inlet, nil
}
