package misc

import (
	"math"
	"testing"
)

func TestFixedRoundTrip(t *testing.T) {
	t.Parallel()

	values := []float64{0, 1, -1, 0.5, -0.5, 0.1, 3.14159, -1234.5678, 32767.0}
	for _, value := range values {
		fixed := Float64ToFixed(value)
		if diff := math.Abs(fixed.Float64() - value); diff > 1.0/float64(int64(1)<<FixedFracBits) {
			t.Fatalf("round trip of %f drifted by %g", value, diff)
		}
	}
}

func TestFixedSaturation(t *testing.T) {
	t.Parallel()

	if Float64ToFixed(1e9) != FixedMax {
		t.Fatalf("expected positive overflow to saturate at FixedMax")
	}
	if Float64ToFixed(-1e9) != FixedMin {
		t.Fatalf("expected negative overflow to saturate at FixedMin")
	}

	if FixedAdd(FixedMax, FixedOne) != FixedMax {
		t.Fatalf("expected saturating add at FixedMax")
	}
	if FixedAdd(FixedMin, -FixedOne) != FixedMin {
		t.Fatalf("expected saturating add at FixedMin")
	}

	big := Float64ToFixed(30000)
	if FixedMul(big, big) != FixedMax {
		t.Fatalf("expected saturating multiply at FixedMax")
	}
}

func TestFixedMul(t *testing.T) {
	t.Parallel()

	a := Float64ToFixed(1.5)
	b := Float64ToFixed(-2.0)
	product := FixedMul(a, b)
	if diff := math.Abs(product.Float64() + 3.0); diff > 1e-4 {
		t.Fatalf("1.5 * -2.0 = %f, want -3.0", product.Float64())
	}

	if FixedMul(FixedOne, a) != a {
		t.Fatalf("multiplying by one should be exact")
	}
}

func TestStatFactory(t *testing.T) {
	t.Parallel()

	stats := new(StatFactory)
	stats.Init("test")
	stats.Increment("alpha", 2)
	stats.Increment("alpha", 3)
	stats.Increment("beta", 1)

	if stats.Value("alpha") != 5 {
		t.Fatalf("expected alpha = 5, got %d", stats.Value("alpha"))
	}
	if stats.Value("missing") != 0 {
		t.Fatalf("expected missing counter to read zero")
	}

	lines := stats.ToLines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 stat lines, got %d", len(lines))
	}
	if lines[0] != "test.alpha: 5" {
		t.Fatalf("unexpected first stat line %q", lines[0])
	}
}
