package sim

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/anders-th/solarloop/internal/plant"
)

// SecondsPerHour fixes the time granularity: one cycle per second.
const SecondsPerHour = 3600

// ErrInvalidDuration indicates a run over a non-positive duration.
var ErrInvalidDuration = errors.New("sim: duration must be positive")

// Controller owns one panel array, one tank and one pump, and drives the
// circulation loop one second at a time. It is not safe for concurrent use;
// the loop is the sole caller of all mutating operations.
type Controller struct {
	heater *plant.PanelArray
	tank   *plant.Tank
	pump   *plant.CirculationPump

	target    float64
	logger    log.FieldLogger
	metrics   []Metric
	observers []Observer

	elapsed int
	stalled int
}

// New wires a controller. The target temperature defaults to the heater's
// max temperature.
func New(heater *plant.PanelArray, tank *plant.Tank, pump *plant.CirculationPump) *Controller {
	return &Controller{
		heater: heater,
		tank:   tank,
		pump:   pump,
		target: heater.MaxTemperature(),
		logger: log.StandardLogger(),
	}
}

func (c *Controller) SetTargetTemperature(v float64) { c.target = v }
func (c *Controller) TargetTemperature() float64     { return c.target }

func (c *Controller) SetLogger(l log.FieldLogger) { c.logger = l }

func (c *Controller) AddMetric(m Metric)     { c.metrics = append(c.metrics, m) }
func (c *Controller) AddObserver(o Observer) { c.observers = append(c.observers, o) }

func (c *Controller) Elapsed() int             { return c.elapsed }
func (c *Controller) TankTemperature() float64 { return c.tank.Temperature() }
func (c *Controller) TankVolume() float64      { return c.tank.Volume() }

// Converged reports whether the tank has reached the target temperature.
func (c *Controller) Converged() bool {
	return c.tank.Temperature() >= c.target
}

// Step runs one cycle: draw from tank, heat through the array, mix back.
// The order is fixed; later actions depend on earlier ones.
//
// A refused draw stalls the cycle: the second still elapses but no water
// moves. A clamped return mix is logged and the run continues. Anything
// else is a configuration error and aborts.
func (c *Controller) Step() (Sample, error) {
	c.elapsed++

	if err := c.pump.DrawFromTank(); err != nil {
		if !errors.Is(err, plant.ErrInsufficientVolume) {
			return Sample{}, err
		}
		c.stalled++
		c.logger.WithFields(log.Fields{
			"time_s":   c.elapsed,
			"volume_l": c.tank.Volume(),
			"rate_lps": c.pump.Rate(),
		}).Warn("cycle stalled: not enough water to draw")
		return c.sample(true), nil
	}

	outlet, err := c.pump.FeedToHeater()
	if err != nil {
		return Sample{}, err
	}

	if err := c.pump.FeedToTank(outlet); err != nil {
		if !errors.Is(err, plant.ErrCapacityExceeded) {
			return Sample{}, err
		}
		c.logger.WithFields(log.Fields{
			"time_s": c.elapsed,
			"detail": err.Error(),
		}).Warn("returned parcel clamped to tank capacity")
	}

	return c.sample(false), nil
}

func (c *Controller) sample(stalled bool) Sample {
	return Sample{
		Time:        c.elapsed,
		Temperature: c.tank.Temperature(),
		Volume:      c.tank.Volume(),
		Stalled:     stalled,
	}
}

// RunSeconds drives the loop for at most seconds cycles, stopping early once
// the tank temperature reaches the target. Elapsed and stall counters start
// from zero, so a controller describes one run at a time.
func (c *Controller) RunSeconds(ctx context.Context, seconds int) (*Result, error) {
	if seconds <= 0 {
		return nil, fmt.Errorf("%w: got %d s", ErrInvalidDuration, seconds)
	}

	c.elapsed = 0
	c.stalled = 0
	for _, m := range c.metrics {
		m.Reset()
	}

	trace := make([]Sample, 0, seconds+1)
	initial := c.sample(false)
	trace = append(trace, initial)
	for _, m := range c.metrics {
		m.Observe(initial)
	}

	outcome := OutcomeTimeExhausted
	for i := 0; i < seconds; i++ {
		select {
		case <-ctx.Done():
			return c.result(OutcomeUnknown, trace), ctx.Err()
		default:
		}

		s, err := c.Step()
		if err != nil {
			return nil, err
		}
		trace = append(trace, s)
		for _, m := range c.metrics {
			m.Observe(s)
		}
		for _, o := range c.observers {
			o.OnCycle(s)
		}

		if c.Converged() {
			outcome = OutcomeConverged
			break
		}
	}

	return c.result(outcome, trace), nil
}

// RunHours runs for whole hours at one cycle per second.
func (c *Controller) RunHours(ctx context.Context, hours int) (*Result, error) {
	if hours <= 0 {
		return nil, fmt.Errorf("%w: got %d h", ErrInvalidDuration, hours)
	}
	return c.RunSeconds(ctx, hours*SecondsPerHour)
}

func (c *Controller) result(outcome Outcome, trace []Sample) *Result {
	r := &Result{
		Outcome:          outcome,
		Elapsed:          c.elapsed,
		FinalTemperature: c.tank.Temperature(),
		StalledCycles:    c.stalled,
		Trace:            trace,
		Metrics:          make(map[string]float64, len(c.metrics)),
	}
	for _, m := range c.metrics {
		r.Metrics[m.Name()] = m.Value()
	}
	return r
}
