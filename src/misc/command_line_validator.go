package misc

import (
	"errors"
	"strconv"
)

type CommandLineValidator struct {
	command_line_parser *CommandLineParser
}

func (this *CommandLineValidator) Init(command_line_parser *CommandLineParser) {
	this.command_line_parser = command_line_parser
}

func (this *CommandLineValidator) Validate() {
	if this.command_line_parser.IntParameter("sample_count") <= 0 {
		err := errors.New("sample_count <= 0")
		panic(err)
	}

	if this.command_line_parser.IntParameter("memreq_fifo_depth") <= 0 {
		err := errors.New("memreq_fifo_depth <= 0")
		panic(err)
	}

	if this.command_line_parser.IntParameter("stage_buffer_depth") <= 0 {
		err := errors.New("stage_buffer_depth <= 0")
		panic(err)
	}

	if this.command_line_parser.IntParameter("result_fifo_depth") <= 0 {
		err := errors.New("result_fifo_depth <= 0")
		panic(err)
	}

	if this.command_line_parser.IntParameter("op_stream_depth") <= 0 {
		err := errors.New("op_stream_depth <= 0")
		panic(err)
	}

	if this.command_line_parser.IntParameter("position_stream_depth") <= 0 {
		err := errors.New("position_stream_depth <= 0")
		panic(err)
	}

	if this.command_line_parser.IntParameter("mem_stream_depth") <= 0 {
		err := errors.New("mem_stream_depth <= 0")
		panic(err)
	}

	if this.command_line_parser.IntParameter("encoder_projection_rows") <= 0 {
		err := errors.New("encoder_projection_rows <= 0")
		panic(err)
	}

	if this.command_line_parser.IntParameter("network_hidden_dim") <= 0 {
		err := errors.New("network_hidden_dim <= 0")
		panic(err)
	}

	step_size, parse_err := strconv.ParseFloat(this.command_line_parser.StringParameter("step_size"), 64)
	if parse_err != nil {
		panic(parse_err)
	}
	if step_size <= 0 {
		err := errors.New("step_size <= 0")
		panic(err)
	}
}
