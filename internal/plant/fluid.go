package plant

// FluidProperties holds the constant physical properties of the working
// fluid. Density changes with temperature are ignored.
type FluidProperties struct {
	SpecificHeatCapacity float64 // kJ/(kg·°C)
	Density              float64 // kg/m³
}

// Water is the only fluid the model circulates. Components receive it by
// value, so there is no mutation path to the shared constants.
var Water = FluidProperties{
	SpecificHeatCapacity: 4.2,
	Density:              980,
}
