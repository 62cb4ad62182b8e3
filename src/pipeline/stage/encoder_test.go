package stage

import (
	"math"
	"testing"

	"raypipe/src/misc"
	"raypipe/src/pipeline"
)

func TestFeatureEncoderExpand(t *testing.T) {
	t.Parallel()

	encoder := NewFeatureEncoder(2)
	encoder.Load(pipeline.MemLoadRecord{Index0: 0, Index1: 0, Value: misc.FixedOne, ForStageA: true})
	encoder.Load(pipeline.MemLoadRecord{Index0: 1, Index1: 1, Value: misc.Float64ToFixed(2.0), ForStageA: true})

	sample := pipeline.PositionSample{
		X:      misc.Float64ToFixed(math.Pi / 2),
		Y:      misc.Float64ToFixed(0.25),
		IsLast: true,
	}
	features := encoder.Expand(sample)

	if len(features.Values) != 4 {
		t.Fatalf("expected feature width 4, got %d", len(features.Values))
	}
	if !features.IsLast {
		t.Fatalf("IsLast flag dropped")
	}

	// Row 0 projects onto x, so theta_0 is roughly pi/2.
	if diff := math.Abs(features.Values[0].Float64() - 1.0); diff > 1e-3 {
		t.Fatalf("sin(theta_0) = %f, want ~1", features.Values[0].Float64())
	}
	if diff := math.Abs(features.Values[1].Float64()); diff > 1e-3 {
		t.Fatalf("cos(theta_0) = %f, want ~0", features.Values[1].Float64())
	}

	// Row 1 projects onto y with weight 2, so theta_1 is roughly 0.5.
	if diff := math.Abs(features.Values[2].Float64() - math.Sin(0.5)); diff > 1e-3 {
		t.Fatalf("sin(theta_1) = %f, want ~%f", features.Values[2].Float64(), math.Sin(0.5))
	}
	if diff := math.Abs(features.Values[3].Float64() - math.Cos(0.5)); diff > 1e-3 {
		t.Fatalf("cos(theta_1) = %f, want ~%f", features.Values[3].Float64(), math.Cos(0.5))
	}
}

func TestFeatureEncoderZeroTable(t *testing.T) {
	t.Parallel()

	// With an all-zero projection table every angle is zero, so the expansion
	// alternates sin(0) and cos(0) exactly.
	encoder := NewFeatureEncoder(3)
	features := encoder.Expand(pipeline.PositionSample{X: misc.FixedOne})

	for i := 0; i < 3; i++ {
		if features.Values[2*i] != misc.FixedZero {
			t.Fatalf("expected sin term %d to be zero", i)
		}
		if features.Values[2*i+1] != misc.FixedOne {
			t.Fatalf("expected cos term %d to be one", i)
		}
	}
}

func TestFeatureEncoderIgnoresOutOfRangeLoad(t *testing.T) {
	t.Parallel()

	encoder := NewFeatureEncoder(2)
	encoder.Load(pipeline.MemLoadRecord{Index0: 5, Index1: 0, Value: misc.FixedOne})
	encoder.Load(pipeline.MemLoadRecord{Index0: 0, Index1: 7, Value: misc.FixedOne})

	features := encoder.Expand(pipeline.PositionSample{X: misc.FixedOne})
	for i := 0; i < 2; i++ {
		if features.Values[2*i] != misc.FixedZero {
			t.Fatalf("out-of-range load must not alter the projection table")
		}
	}
}
