package main

import (
	"fmt"
	"math"
	"os"

	"raypipe/src/misc"
	"raypipe/src/pipeline"
	"raypipe/src/simulator"
)

func main() {
	command_line_parser := InitCommandLineParser()
	command_line_parser.Parse(os.Args)

	if command_line_parser.IsArgSet("help") {
		fmt.Printf("%s", command_line_parser.StringifyHelpMsgs())
		return
	}

	command_line_validator := new(misc.CommandLineValidator)
	command_line_validator.Init(command_line_parser)
	command_line_validator.Validate()

	misc.ConfigureRuntime(command_line_parser)

	config_loader := new(misc.ConfigLoader)
	config_loader.Init()

	config := pipeline.LoadConfig(config_loader)
	sample_count := command_line_parser.IntParameter("sample_count")
	verbose := config_loader.Verbose()

	platform := new(simulator.Platform)
	platform.Init(config)
	platform.Start()

	weight_records := buildWeightRecords(config)
	fmt.Printf("[raypipe] weight init: %d records\n", len(weight_records))

	platform.Ops().Push(pipeline.Operation{Mode: pipeline.OpWeightInit, Num: uint32(len(weight_records))})
	platform.Ops().Push(pipeline.Operation{Mode: pipeline.OpReadPos, Num: uint32(sample_count)})

	for _, record := range weight_records {
		platform.MemLoads().Push(record)
	}

	fed := make(chan struct{})
	go func() {
		defer close(fed)
		for i := 0; i < sample_count; i++ {
			coord := misc.Float64ToFixed(float64(i) * 0.1)
			platform.Positions().Push(pipeline.PositionSample{
				X:      coord,
				Y:      coord,
				Z:      coord,
				IsLast: i == sample_count-1,
			})
		}
	}()

	for i := 0; i < sample_count; i++ {
		result, ok := platform.Results().Pop()
		if !ok {
			fmt.Println("[raypipe] result stream closed early")
			os.Exit(1)
		}
		if verbose > 0 {
			fmt.Printf("result[%d]: %.6f %.6f %.6f\n",
				i, result.C[0].Float64(), result.C[1].Float64(), result.C[2].Float64())
		}
	}
	fmt.Printf("[raypipe] collected %d results\n", sample_count)

	<-fed
	platform.Shutdown()

	for _, line := range platform.Stats().ToLines() {
		fmt.Println(line)
	}

	platform.Fini()
}

// buildWeightRecords assembles the bulk configuration load: the projection
// table for the feature stage and both weight layers for the network stage.
// The projection rows place scaled powers of two on a rotating coordinate so
// that successive rows sample increasing frequencies.
func buildWeightRecords(config *pipeline.Config) []pipeline.MemLoadRecord {
	records := make([]pipeline.MemLoadRecord, 0)

	for i := 0; i < config.ProjectionRows; i++ {
		for j := 0; j < 3; j++ {
			value := 0.0
			if j == i%3 {
				value = float64(int64(1)<<uint(i/3%15)) / math.Pi
			}
			records = append(records, pipeline.MemLoadRecord{
				Index0:    uint32(i),
				Index1:    uint32(j),
				Value:     misc.Float64ToFixed(value),
				ForStageA: true,
			})
		}
	}

	feature_dim := config.FeatureDim()
	for i := 0; i < config.HiddenDim; i++ {
		for j := 0; j < feature_dim; j++ {
			records = append(records, pipeline.MemLoadRecord{
				Index0:     uint32(i),
				Index1:     uint32(j),
				Value:      misc.Float64ToFixed(1.0 / float64(feature_dim)),
				ForStageB0: true,
			})
		}
	}

	for i := 0; i < 4; i++ {
		for j := 0; j < config.HiddenDim; j++ {
			records = append(records, pipeline.MemLoadRecord{
				Index0: uint32(i),
				Index1: uint32(j),
				Value:  misc.Float64ToFixed(0.001 * float64(i*config.HiddenDim+j)),
			})
		}
	}

	return records
}

func InitCommandLineParser() *misc.CommandLineParser {
	command_line_parser := new(misc.CommandLineParser)
	command_line_parser.Init()

	command_line_parser.AddOption(misc.INT, "help", "0", "print this help message")
	command_line_parser.AddOption(misc.INT, "verbose", "0", "verbosity of the pipeline run")

	command_line_parser.AddOption(misc.INT, "sample_count", "192", "number of position samples to stream")

	command_line_parser.AddOption(misc.INT, "memreq_fifo_depth", "1024",
		"depth of the routed memory-request FIFO")
	command_line_parser.AddOption(misc.INT, "stage_buffer_depth", "192",
		"depth of the feature buffer between the expansion and network stages")
	command_line_parser.AddOption(misc.INT, "result_fifo_depth", "192",
		"depth of the result sink buffer")
	command_line_parser.AddOption(misc.INT, "op_stream_depth", "4",
		"depth of the inbound operation stream")
	command_line_parser.AddOption(misc.INT, "position_stream_depth", "192",
		"depth of the inbound position stream")
	command_line_parser.AddOption(misc.INT, "mem_stream_depth", "1024",
		"depth of the inbound memory-load stream")

	command_line_parser.AddOption(misc.INT, "encoder_projection_rows", "128",
		"projection rows in the feature-expansion stage")
	command_line_parser.AddOption(misc.INT, "network_hidden_dim", "256",
		"hidden-layer width of the network stage")
	command_line_parser.AddOption(misc.STRING, "step_size", "0.1",
		"integration step size stamped onto compositing records")

	return command_line_parser
}
