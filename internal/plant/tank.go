package plant

import "fmt"

// Tank stores a volume of water at a uniform temperature. Heat loss through
// the tank walls is ignored. The stored volume never leaves [0, capacity].
type Tank struct {
	capacity    float64 // L
	volume      float64 // L
	temperature float64 // °C
}

func NewTank(capacity, volume, temperature float64) (*Tank, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %g L", ErrInvalidTankCapacity, capacity)
	}
	if volume < 0 || volume > capacity {
		return nil, fmt.Errorf("%w: volume %g L, capacity %g L", ErrInvalidTankVolume, volume, capacity)
	}
	return &Tank{capacity: capacity, volume: volume, temperature: temperature}, nil
}

func (t *Tank) Capacity() float64    { return t.capacity }
func (t *Tank) Volume() float64      { return t.volume }
func (t *Tank) Temperature() float64 { return t.temperature }

// FreeCapacity returns the volume the tank can still accept.
func (t *Tank) FreeCapacity() float64 {
	return t.capacity - t.volume
}

// AddWater mixes an incoming parcel into the tank. A parcel larger than the
// free capacity is clamped: the accepted part is mixed and
// [ErrCapacityExceeded] is returned so the caller can report the spill. The
// capacity invariant holds after every call.
func (t *Tank) AddWater(volume, temperature float64) error {
	if volume <= 0 {
		return fmt.Errorf("%w: got %g L", ErrNonPositiveVolume, volume)
	}
	accepted := volume
	free := t.FreeCapacity()
	var err error
	if volume > free {
		accepted = free
		err = fmt.Errorf("%w: requested %g L, accepted %g L", ErrCapacityExceeded, volume, accepted)
	}
	if accepted > 0 {
		t.mix(accepted, temperature)
	}
	return err
}

// mix folds a parcel into the stored water. Both parcels are the same fluid,
// so conserving thermal energy reduces to the volume-weighted temperature
// average.
func (t *Tank) mix(volume, temperature float64) {
	t.temperature = (volume*temperature + t.volume*t.temperature) / (volume + t.volume)
	t.volume += volume
}

// ReleaseWater removes volume liters. Releasing more than is stored is
// refused with [ErrInsufficientVolume] and leaves the tank unchanged.
func (t *Tank) ReleaseWater(volume float64) error {
	if volume <= 0 {
		return fmt.Errorf("%w: got %g L", ErrNonPositiveVolume, volume)
	}
	if volume > t.volume {
		return fmt.Errorf("%w: requested %g L, stored %g L", ErrInsufficientVolume, volume, t.volume)
	}
	t.volume -= volume
	return nil
}
