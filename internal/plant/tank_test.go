package plant

import (
	"errors"
	"math"
	"testing"
)

func newTank(t *testing.T, capacity, volume, temperature float64) *Tank {
	t.Helper()
	tank, err := NewTank(capacity, volume, temperature)
	if err != nil {
		t.Fatalf("new tank: %v", err)
	}
	return tank
}

func checkInvariant(t *testing.T, tank *Tank) {
	t.Helper()
	if tank.Volume() < 0 || tank.Volume() > tank.Capacity() {
		t.Fatalf("capacity invariant violated: volume %g, capacity %g", tank.Volume(), tank.Capacity())
	}
}

func TestNewTankValidation(t *testing.T) {
	tests := []struct {
		name                   string
		capacity, volume, temp float64
		want                   error
	}{
		{"zero capacity", 0, 0, 15, ErrInvalidTankCapacity},
		{"negative capacity", -10, 0, 15, ErrInvalidTankCapacity},
		{"negative volume", 100, -1, 15, ErrInvalidTankVolume},
		{"volume above capacity", 100, 101, 15, ErrInvalidTankVolume},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTank(tt.capacity, tt.volume, tt.temp); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestMixConservesEnergy(t *testing.T) {
	tests := []struct {
		name           string
		stored, tStore float64
		added, tAdd    float64
	}{
		{"equal volumes", 50, 10, 50, 30},
		{"small hot parcel", 59, 15, 1, 18.5},
		{"large cold parcel", 10, 80, 90, 20},
		{"same temperature", 60, 15, 1, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tank := newTank(t, 1000, tt.stored, tt.tStore)
			if err := tank.AddWater(tt.added, tt.tAdd); err != nil {
				t.Fatalf("add water: %v", err)
			}

			expected := (tt.added*tt.tAdd + tt.stored*tt.tStore) / (tt.added + tt.stored)
			if math.Abs(tank.Temperature()-expected) > 1e-9 {
				t.Errorf("expected %.9f, got %.9f", expected, tank.Temperature())
			}

			lo := math.Min(tt.tStore, tt.tAdd)
			hi := math.Max(tt.tStore, tt.tAdd)
			if tank.Temperature() < lo || tank.Temperature() > hi {
				t.Errorf("mixed temperature %g outside [%g, %g]", tank.Temperature(), lo, hi)
			}
			checkInvariant(t, tank)
		})
	}
}

func TestAddWaterClampsToCapacity(t *testing.T) {
	tank := newTank(t, 100, 90, 20)

	err := tank.AddWater(20, 50)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}

	if tank.Volume() != 100 {
		t.Errorf("expected clamped volume 100, got %g", tank.Volume())
	}
	// Only the accepted 10 L were mixed.
	expected := (10*50.0 + 90*20.0) / 100
	if math.Abs(tank.Temperature()-expected) > 1e-9 {
		t.Errorf("expected %.9f, got %.9f", expected, tank.Temperature())
	}
	checkInvariant(t, tank)
}

func TestAddWaterExactFill(t *testing.T) {
	tank := newTank(t, 100, 90, 20)

	if err := tank.AddWater(10, 50); err != nil {
		t.Fatalf("filling to exactly capacity should succeed: %v", err)
	}
	if tank.Volume() != 100 {
		t.Errorf("expected volume 100, got %g", tank.Volume())
	}
	checkInvariant(t, tank)
}

func TestAddWaterToFullTank(t *testing.T) {
	tank := newTank(t, 100, 100, 20)

	err := tank.AddWater(5, 50)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	if tank.Volume() != 100 || tank.Temperature() != 20 {
		t.Errorf("full tank mutated: volume %g, temperature %g", tank.Volume(), tank.Temperature())
	}
}

func TestReleaseWater(t *testing.T) {
	tank := newTank(t, 100, 60, 15)

	if err := tank.ReleaseWater(10); err != nil {
		t.Fatalf("release: %v", err)
	}
	if tank.Volume() != 50 {
		t.Errorf("expected 50 L, got %g", tank.Volume())
	}
	if tank.Temperature() != 15 {
		t.Errorf("release changed temperature: %g", tank.Temperature())
	}

	err := tank.ReleaseWater(51)
	if !errors.Is(err, ErrInsufficientVolume) {
		t.Fatalf("expected ErrInsufficientVolume, got %v", err)
	}
	if tank.Volume() != 50 {
		t.Errorf("refused release mutated volume: %g", tank.Volume())
	}

	if err := tank.ReleaseWater(50); err != nil {
		t.Fatalf("draining: %v", err)
	}
	if tank.Volume() != 0 {
		t.Errorf("expected empty tank, got %g", tank.Volume())
	}
	checkInvariant(t, tank)
}

func TestNonPositiveTransfers(t *testing.T) {
	tank := newTank(t, 100, 60, 15)

	for _, v := range []float64{0, -1} {
		if err := tank.AddWater(v, 20); !errors.Is(err, ErrNonPositiveVolume) {
			t.Errorf("add %g: expected ErrNonPositiveVolume, got %v", v, err)
		}
		if err := tank.ReleaseWater(v); !errors.Is(err, ErrNonPositiveVolume) {
			t.Errorf("release %g: expected ErrNonPositiveVolume, got %v", v, err)
		}
	}
}

func TestInvariantUnderSequences(t *testing.T) {
	tank := newTank(t, 100, 50, 15)

	ops := []struct {
		add    bool
		volume float64
		temp   float64
	}{
		{true, 30, 40},
		{true, 40, 60}, // clamps
		{false, 25, 0},
		{false, 90, 0}, // refused
		{true, 10, 5},
		{false, 85, 0},
		{true, 200, 90}, // clamps hard
		{false, 100, 0},
	}

	for i, op := range ops {
		if op.add {
			tank.AddWater(op.volume, op.temp)
		} else {
			tank.ReleaseWater(op.volume)
		}
		if tank.Volume() < 0 || tank.Volume() > tank.Capacity() {
			t.Fatalf("op %d: invariant violated, volume %g", i, tank.Volume())
		}
	}
}
