package pipeline

import "raypipe/src/misc"

// OpMode selects the bulk behavior of one operation record.
type OpMode int

const (
	// OpWeightInit forwards Num memory-load records toward the router.
	OpWeightInit OpMode = iota
	// OpReadPos forwards Num position samples into the feature-expansion stage.
	OpReadPos
)

func (m OpMode) String() string {
	switch m {
	case OpWeightInit:
		return "weight_init"
	case OpReadPos:
		return "read_pos"
	default:
		return "unknown"
	}
}

// Operation is an externally submitted instruction. Num counts the downstream
// items the sequencer must forward before returning to idle.
type Operation struct {
	Mode OpMode
	Num  uint32
}

// PositionSample is one 3D sample point. IsLast marks the final sample of a
// batch; the control core forwards it untouched and never gates on it.
type PositionSample struct {
	X      misc.Fixed
	Y      misc.Fixed
	Z      misc.Fixed
	IsLast bool
}

// MemLoadRecord updates one entry of a stage-internal table. ForStageA routes
// the record to the feature-expansion stage; otherwise it goes to the network
// stage, where ForStageB0 selects the hidden-layer table over the output
// layer.
type MemLoadRecord struct {
	Index0     uint32
	Index1     uint32
	Value      misc.Fixed
	ForStageA  bool
	ForStageB0 bool
}

// FeatureVector is the feature-expansion stage's output.
type FeatureVector struct {
	Values []misc.Fixed
	IsLast bool
}

// NetworkOutput carries three color channels followed by the density value.
type NetworkOutput struct {
	Values [4]misc.Fixed
	IsLast bool
}

// CompositingRecord is the compositing stage's input shape: emitted color,
// density, and the integration step size along the ray.
type CompositingRecord struct {
	EmittedC [3]misc.Fixed
	Sigma    misc.Fixed
	Delta    misc.Fixed
	IsLast   bool
}

// FinalResult is one composited color contribution.
type FinalResult struct {
	C [3]misc.Fixed
}
