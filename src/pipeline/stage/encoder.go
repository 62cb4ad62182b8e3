package stage

import (
	"math"

	"raypipe/src/misc"
	"raypipe/src/pipeline"
)

// FeatureEncoder implements the feature-expansion kernel. A rows×3 projection
// table multiplies the incoming position; the sine and cosine of each
// projection form the expanded feature vector, so the output width is twice
// the number of projection rows.
type FeatureEncoder struct {
	rows       int
	projection [][3]misc.Fixed
}

func NewFeatureEncoder(rows int) *FeatureEncoder {
	if rows < 1 {
		rows = 1
	}

	return &FeatureEncoder{
		rows:       rows,
		projection: make([][3]misc.Fixed, rows),
	}
}

// Load writes one projection-table entry. Out-of-range indices are dropped
// silently; a memory record can only ever update the table, never resize it.
func (this *FeatureEncoder) Load(record pipeline.MemLoadRecord) {
	if record.Index0 >= uint32(this.rows) || record.Index1 >= 3 {
		return
	}

	this.projection[record.Index0][record.Index1] = record.Value
}

// Expand computes theta_i = row_i · (x,y,z) in fixed point, then emits
// sin(theta_i), cos(theta_i) pairs quantized back to Q16.16.
func (this *FeatureEncoder) Expand(sample pipeline.PositionSample) pipeline.FeatureVector {
	coords := [3]misc.Fixed{sample.X, sample.Y, sample.Z}
	values := make([]misc.Fixed, 2*this.rows)

	for i := 0; i < this.rows; i++ {
		theta := misc.FixedZero
		for j := 0; j < 3; j++ {
			theta = misc.FixedAdd(theta, misc.FixedMul(this.projection[i][j], coords[j]))
		}

		angle := theta.Float64()
		values[2*i] = misc.Float64ToFixed(math.Sin(angle))
		values[2*i+1] = misc.Float64ToFixed(math.Cos(angle))
	}

	return pipeline.FeatureVector{Values: values, IsLast: sample.IsLast}
}
