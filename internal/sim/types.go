package sim

// Outcome says why a run terminated.
type Outcome int

const (
	OutcomeUnknown Outcome = iota
	// OutcomeConverged: tank temperature reached the target.
	OutcomeConverged
	// OutcomeTimeExhausted: the requested duration elapsed first.
	OutcomeTimeExhausted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConverged:
		return "converged"
	case OutcomeTimeExhausted:
		return "time exhausted"
	default:
		return "unknown"
	}
}

// Sample is the tank state after one cycle. Time is whole seconds since the
// run started; a stalled sample means the draw was refused and the cycle was
// a no-op heat pass.
type Sample struct {
	Time        int     `csv:"time_s"`
	Temperature float64 `csv:"tank_temperature_c"`
	Volume      float64 `csv:"tank_volume_l"`
	Stalled     bool    `csv:"stalled"`
}

// Result reports a finished run. FinalTemperature is in °C, Elapsed in whole
// seconds. Trace holds one sample per cycle plus the initial state, so any
// presentation layer can be built on top without parsing text.
type Result struct {
	Outcome          Outcome
	Elapsed          int
	FinalTemperature float64
	StalledCycles    int
	Trace            []Sample
	Metrics          map[string]float64
}

// Observer is notified after every cycle.
type Observer interface {
	OnCycle(s Sample)
}

// Metric accumulates a scalar over a run.
type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}
