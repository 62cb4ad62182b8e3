package pipeline

import "raypipe/src/misc"

// DefaultStepSize is the placeholder integration step size stamped onto every
// compositing record by the result relay. It is a constant stand-in for a
// value derived from actual sample spacing.
const DefaultStepSize = 0.1

// Config bundles the parameters required to construct the pipeline: FIFO
// depths for the bounded links and the table geometry of the two configurable
// stages. Depths are tunables, not correctness parameters.
type Config struct {
	MemReqFifoDepth     int
	StageBufferDepth    int
	ResultFifoDepth     int
	OpStreamDepth       int
	PositionStreamDepth int
	MemStreamDepth      int

	ProjectionRows int
	HiddenDim      int

	StepSize misc.Fixed
}

// LoadConfig pulls pipeline parameters from the shared ConfigLoader.
func LoadConfig(loader *misc.ConfigLoader) *Config {
	config := new(Config)

	config.MemReqFifoDepth = loader.PipelineMemReqFifoDepth()
	config.StageBufferDepth = loader.PipelineStageBufferDepth()
	config.ResultFifoDepth = loader.PipelineResultFifoDepth()
	config.OpStreamDepth = loader.PipelineOpStreamDepth()
	config.PositionStreamDepth = loader.PipelinePositionStreamDepth()
	config.MemStreamDepth = loader.PipelineMemStreamDepth()
	config.ProjectionRows = loader.PipelineProjectionRows()
	config.HiddenDim = loader.PipelineHiddenDim()
	config.StepSize = misc.Float64ToFixed(loader.PipelineStepSize())

	return config
}

// DefaultConfig returns a small configuration suitable for tests.
func DefaultConfig() *Config {
	return &Config{
		MemReqFifoDepth:     64,
		StageBufferDepth:    16,
		ResultFifoDepth:     16,
		OpStreamDepth:       4,
		PositionStreamDepth: 16,
		MemStreamDepth:      64,
		ProjectionRows:      8,
		HiddenDim:           16,
		StepSize:            misc.Float64ToFixed(DefaultStepSize),
	}
}

// FeatureDim returns the width of the expanded feature vector: one sine and
// one cosine term per projection row.
func (this *Config) FeatureDim() int {
	return 2 * this.ProjectionRows
}
