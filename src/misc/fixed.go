package misc

import "math"

// Fixed is a signed Q16.16 fixed-point scalar. All values carried on the
// pipeline links (positions, table entries, colors, densities) use this
// representation; stage arithmetic may widen internally but every link
// payload is quantized back to Q16.16.
type Fixed int32

const FixedFracBits = 16

const (
	FixedZero = Fixed(0)
	FixedOne  = Fixed(1 << FixedFracBits)
	FixedMax  = Fixed(math.MaxInt32)
	FixedMin  = Fixed(math.MinInt32)
)

// Float64ToFixed converts with round-to-nearest and saturation at the Q16.16
// range boundaries.
func Float64ToFixed(value float64) Fixed {
	scaled := value * float64(int64(1)<<FixedFracBits)

	if scaled >= float64(math.MaxInt32) {
		return FixedMax
	}
	if scaled <= float64(math.MinInt32) {
		return FixedMin
	}

	if scaled >= 0 {
		return Fixed(scaled + 0.5)
	}
	return Fixed(scaled - 0.5)
}

func (this Fixed) Float64() float64 {
	return float64(this) / float64(int64(1)<<FixedFracBits)
}

// FixedAdd saturates instead of wrapping on overflow.
func FixedAdd(a Fixed, b Fixed) Fixed {
	sum := int64(a) + int64(b)

	if sum > int64(FixedMax) {
		return FixedMax
	}
	if sum < int64(FixedMin) {
		return FixedMin
	}

	return Fixed(sum)
}

// FixedMul computes a*b in Q16.16 with a widened intermediate product and
// saturation on overflow.
func FixedMul(a Fixed, b Fixed) Fixed {
	product := (int64(a) * int64(b)) >> FixedFracBits

	if product > int64(FixedMax) {
		return FixedMax
	}
	if product < int64(FixedMin) {
		return FixedMin
	}

	return Fixed(product)
}
