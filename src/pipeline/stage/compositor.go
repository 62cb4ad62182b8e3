package stage

import (
	"math"

	"raypipe/src/misc"
	"raypipe/src/pipeline"
)

// Compositor implements the volume-rendering kernel. Each record contributes
// alpha = 1 - exp(-sigma*delta); the emitted color is weighted by the running
// transmittance times alpha, and the transmittance decays by (1 - alpha).
// IsLast closes the batch and resets the transmittance for the next one.
type Compositor struct {
	transmittance float64
}

func NewCompositor() *Compositor {
	return &Compositor{transmittance: 1.0}
}

func (this *Compositor) Composite(record pipeline.CompositingRecord) pipeline.FinalResult {
	sigma := record.Sigma.Float64()
	delta := record.Delta.Float64()
	alpha := 1.0 - math.Exp(-sigma*delta)
	weight := this.transmittance * alpha

	var result pipeline.FinalResult
	for i := 0; i < 3; i++ {
		result.C[i] = misc.Float64ToFixed(weight * record.EmittedC[i].Float64())
	}

	this.transmittance *= 1.0 - alpha
	if record.IsLast {
		this.transmittance = 1.0
	}

	return result
}
