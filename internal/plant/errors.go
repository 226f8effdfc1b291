package plant

import "errors"

var (
	// ErrInvalidPanelSpec indicates a panel spec outside its physical domain.
	ErrInvalidPanelSpec = errors.New("plant: panel height and width must be positive and efficiency within [0, 1]")

	// ErrInvalidPanelCount indicates an array with no panels.
	ErrInvalidPanelCount = errors.New("plant: panel array needs at least one panel")

	// ErrPanelIndexOutOfRange indicates a panel address beyond the array.
	ErrPanelIndexOutOfRange = errors.New("plant: panel index out of range")

	// ErrNonPositiveMass indicates a heat balance over no water.
	ErrNonPositiveMass = errors.New("plant: water mass must be positive")

	// ErrNonPositiveVolume indicates a transfer of no water.
	ErrNonPositiveVolume = errors.New("plant: water volume must be positive")

	// ErrNegativeIncidentEnergy indicates a negative solar input.
	ErrNegativeIncidentEnergy = errors.New("plant: incident energy must be non-negative")

	// ErrIncidentEnergyNotSet indicates the solar input was never configured.
	// Distinct from a legitimate zero-energy configuration.
	ErrIncidentEnergyNotSet = errors.New("plant: incident energy has not been set")

	// ErrInvalidMaxTemperature indicates a non-positive heating ceiling.
	ErrInvalidMaxTemperature = errors.New("plant: max temperature must be positive")

	// ErrInvalidTankCapacity indicates a non-positive tank capacity.
	ErrInvalidTankCapacity = errors.New("plant: tank capacity must be positive")

	// ErrInvalidTankVolume indicates an initial volume outside the tank.
	ErrInvalidTankVolume = errors.New("plant: tank volume must be within [0, capacity]")

	// ErrCapacityExceeded reports an add that was clamped to free capacity.
	// The mix of the accepted parcel still happened; the condition is
	// recoverable.
	ErrCapacityExceeded = errors.New("plant: tank capacity exceeded")

	// ErrInsufficientVolume reports a refused release; the tank is unchanged.
	ErrInsufficientVolume = errors.New("plant: not enough water stored")

	// ErrNonPositiveRate indicates an invalid pumping rate.
	ErrNonPositiveRate = errors.New("plant: pumping rate must be positive")
)
