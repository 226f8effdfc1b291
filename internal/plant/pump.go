package plant

import "fmt"

// DefaultPumpRate is the circulation rate in liters per second.
const DefaultPumpRate = 1.0

// CirculationPump moves fixed-rate parcels between a tank and a panel array.
// It holds non-owning references and only orchestrates transfers; a cycle is
// draw, then heat, then return, in that order.
type CirculationPump struct {
	heater *PanelArray
	tank   *Tank
	rate   float64 // L/s
}

func NewCirculationPump(heater *PanelArray, tank *Tank, rate float64) (*CirculationPump, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: got %g L/s", ErrNonPositiveRate, rate)
	}
	return &CirculationPump{heater: heater, tank: tank, rate: rate}, nil
}

func (p *CirculationPump) Rate() float64 {
	return p.rate
}

// SetRate changes the circulation rate. Permitted mid-run.
func (p *CirculationPump) SetRate(rate float64) error {
	if rate <= 0 {
		return fmt.Errorf("%w: got %g L/s", ErrNonPositiveRate, rate)
	}
	p.rate = rate
	return nil
}

// DrawFromTank releases one parcel from the tank. An insufficient stored
// volume propagates so the caller can stall the cycle.
func (p *CirculationPump) DrawFromTank() error {
	return p.tank.ReleaseWater(p.rate)
}

// FeedToHeater passes one parcel at the tank's current temperature through
// the panel array and returns the outlet temperature. The tank itself is not
// mutated.
func (p *CirculationPump) FeedToHeater() (float64, error) {
	return p.heater.HeatWater(p.rate, p.tank.Temperature())
}

// FeedToTank mixes one heated parcel back into the tank.
func (p *CirculationPump) FeedToTank(temperature float64) error {
	return p.tank.AddWater(p.rate, temperature)
}
