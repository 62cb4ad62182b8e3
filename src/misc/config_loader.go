package misc

import "strconv"

type pipelineRuntimeConfig struct {
	memReqFifoDepth     int
	stageBufferDepth    int
	resultFifoDepth     int
	opStreamDepth       int
	positionStreamDepth int
	memStreamDepth      int
	projectionRows      int
	hiddenDim           int
	stepSize            float64
	verbose             int
}

var globalPipelineConfig = pipelineRuntimeConfig{
	memReqFifoDepth:     1024,
	stageBufferDepth:    192,
	resultFifoDepth:     192,
	opStreamDepth:       4,
	positionStreamDepth: 192,
	memStreamDepth:      1024,
	projectionRows:      128,
	hiddenDim:           256,
	stepSize:            0.1,
	verbose:             0,
}

// ConfigureRuntime copies command-line parameters into the package-level
// runtime configuration. It must run before any ConfigLoader accessor.
func ConfigureRuntime(parser *CommandLineParser) {
	globalPipelineConfig.memReqFifoDepth = parser.IntParameter("memreq_fifo_depth")
	globalPipelineConfig.stageBufferDepth = parser.IntParameter("stage_buffer_depth")
	globalPipelineConfig.resultFifoDepth = parser.IntParameter("result_fifo_depth")
	globalPipelineConfig.opStreamDepth = parser.IntParameter("op_stream_depth")
	globalPipelineConfig.positionStreamDepth = parser.IntParameter("position_stream_depth")
	globalPipelineConfig.memStreamDepth = parser.IntParameter("mem_stream_depth")
	globalPipelineConfig.projectionRows = parser.IntParameter("encoder_projection_rows")
	globalPipelineConfig.hiddenDim = parser.IntParameter("network_hidden_dim")
	globalPipelineConfig.verbose = parser.IntParameter("verbose")

	step_size, err := strconv.ParseFloat(parser.StringParameter("step_size"), 64)
	if err != nil {
		panic(err)
	}
	globalPipelineConfig.stepSize = step_size
}

// ConfigLoader exposes the runtime configuration through accessor methods so
// that downstream packages do not read parser state directly.
type ConfigLoader struct{}

func (this *ConfigLoader) Init() {}

func (this *ConfigLoader) PipelineMemReqFifoDepth() int {
	return globalPipelineConfig.memReqFifoDepth
}

func (this *ConfigLoader) PipelineStageBufferDepth() int {
	return globalPipelineConfig.stageBufferDepth
}

func (this *ConfigLoader) PipelineResultFifoDepth() int {
	return globalPipelineConfig.resultFifoDepth
}

func (this *ConfigLoader) PipelineOpStreamDepth() int {
	return globalPipelineConfig.opStreamDepth
}

func (this *ConfigLoader) PipelinePositionStreamDepth() int {
	return globalPipelineConfig.positionStreamDepth
}

func (this *ConfigLoader) PipelineMemStreamDepth() int {
	return globalPipelineConfig.memStreamDepth
}

func (this *ConfigLoader) PipelineProjectionRows() int {
	return globalPipelineConfig.projectionRows
}

func (this *ConfigLoader) PipelineHiddenDim() int {
	return globalPipelineConfig.hiddenDim
}

func (this *ConfigLoader) PipelineStepSize() float64 {
	return globalPipelineConfig.stepSize
}

func (this *ConfigLoader) Verbose() int {
	return globalPipelineConfig.verbose
}
