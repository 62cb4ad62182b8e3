package stage

import (
	"math"
	"testing"

	"raypipe/src/misc"
	"raypipe/src/pipeline"
)

func compositingRecord(color float64, sigma float64, delta float64, isLast bool) pipeline.CompositingRecord {
	record := pipeline.CompositingRecord{
		Sigma:  misc.Float64ToFixed(sigma),
		Delta:  misc.Float64ToFixed(delta),
		IsLast: isLast,
	}
	for i := 0; i < 3; i++ {
		record.EmittedC[i] = misc.Float64ToFixed(color)
	}
	return record
}

func TestCompositorAccumulation(t *testing.T) {
	t.Parallel()

	compositor := NewCompositor()

	first := compositingRecord(1.0, 2.0, 0.1, false)
	second := compositingRecord(1.0, 2.0, 0.1, false)

	alpha := 1.0 - math.Exp(-first.Sigma.Float64()*first.Delta.Float64())

	result := compositor.Composite(first)
	if diff := math.Abs(result.C[0].Float64() - alpha); diff > 1e-3 {
		t.Fatalf("first contribution = %f, want ~%f", result.C[0].Float64(), alpha)
	}

	// The second contribution is attenuated by the transmittance left behind
	// by the first.
	result = compositor.Composite(second)
	expected := (1.0 - alpha) * alpha
	if diff := math.Abs(result.C[0].Float64() - expected); diff > 1e-3 {
		t.Fatalf("second contribution = %f, want ~%f", result.C[0].Float64(), expected)
	}
}

func TestCompositorResetsOnLast(t *testing.T) {
	t.Parallel()

	compositor := NewCompositor()

	last := compositingRecord(1.0, 2.0, 0.1, true)
	next := compositingRecord(1.0, 2.0, 0.1, false)

	first := compositor.Composite(last)
	second := compositor.Composite(next)

	// The batch boundary restores full transmittance, so the first record of
	// the next batch contributes exactly as much as the first of the previous.
	if first.C[0] != second.C[0] {
		t.Fatalf("expected identical contributions across a batch boundary, got %f and %f",
			first.C[0].Float64(), second.C[0].Float64())
	}
}

func TestCompositorZeroDensity(t *testing.T) {
	t.Parallel()

	compositor := NewCompositor()

	result := compositor.Composite(compositingRecord(1.0, 0.0, 0.1, false))
	for i := 0; i < 3; i++ {
		if result.C[i] != misc.FixedZero {
			t.Fatalf("zero density must contribute no color")
		}
	}

	// Zero density also leaves the transmittance untouched.
	alpha := 1.0 - math.Exp(-misc.Float64ToFixed(2.0).Float64()*misc.Float64ToFixed(0.1).Float64())
	result = compositor.Composite(compositingRecord(1.0, 2.0, 0.1, false))
	if diff := math.Abs(result.C[0].Float64() - alpha); diff > 1e-3 {
		t.Fatalf("contribution after zero-density record = %f, want ~%f", result.C[0].Float64(), alpha)
	}
}
