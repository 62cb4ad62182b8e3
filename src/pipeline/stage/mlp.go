package stage

import (
	"raypipe/src/misc"
	"raypipe/src/pipeline"
)

const networkOutputDim = 4

// Network implements the feed-forward kernel: a ReLU hidden layer of
// hiddenDim×featureDim weights followed by a linear 4×hiddenDim output layer.
// Configuration records tagged ForStageB0 update the hidden layer; untagged
// records update the output layer. Accumulation runs in double precision and
// is quantized back to Q16.16 at each layer boundary.
type Network struct {
	featureDim int
	hiddenDim  int
	hidden     [][]misc.Fixed
	output     [][]misc.Fixed
}

func NewNetwork(featureDim int, hiddenDim int) *Network {
	if featureDim < 1 {
		featureDim = 1
	}
	if hiddenDim < 1 {
		hiddenDim = 1
	}

	hidden := make([][]misc.Fixed, hiddenDim)
	for i := range hidden {
		hidden[i] = make([]misc.Fixed, featureDim)
	}

	output := make([][]misc.Fixed, networkOutputDim)
	for i := range output {
		output[i] = make([]misc.Fixed, hiddenDim)
	}

	return &Network{
		featureDim: featureDim,
		hiddenDim:  hiddenDim,
		hidden:     hidden,
		output:     output,
	}
}

func (this *Network) Load(record pipeline.MemLoadRecord) {
	if record.ForStageB0 {
		if record.Index0 >= uint32(this.hiddenDim) || record.Index1 >= uint32(this.featureDim) {
			return
		}
		this.hidden[record.Index0][record.Index1] = record.Value
		return
	}

	if record.Index0 >= uint32(networkOutputDim) || record.Index1 >= uint32(this.hiddenDim) {
		return
	}
	this.output[record.Index0][record.Index1] = record.Value
}

func (this *Network) Evaluate(features pipeline.FeatureVector) pipeline.NetworkOutput {
	width := this.featureDim
	if len(features.Values) < width {
		width = len(features.Values)
	}

	activations := make([]float64, this.hiddenDim)
	for i := 0; i < this.hiddenDim; i++ {
		acc := 0.0
		for j := 0; j < width; j++ {
			acc += this.hidden[i][j].Float64() * features.Values[j].Float64()
		}
		if acc < 0 {
			acc = 0
		}
		activations[i] = misc.Float64ToFixed(acc).Float64()
	}

	var result pipeline.NetworkOutput
	for i := 0; i < networkOutputDim; i++ {
		acc := 0.0
		for j := 0; j < this.hiddenDim; j++ {
			acc += this.output[i][j].Float64() * activations[j]
		}
		result.Values[i] = misc.Float64ToFixed(acc)
	}
	result.IsLast = features.IsLast

	return result
}
