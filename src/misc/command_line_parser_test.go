package misc

import "testing"

func TestCommandLineParser(t *testing.T) {
	t.Parallel()

	parser := new(CommandLineParser)
	parser.Init()
	parser.AddOption(INT, "sample_count", "192", "number of samples")
	parser.AddOption(STRING, "step_size", "0.1", "ray step size")

	parser.Parse([]string{"raypipe", "--sample_count", "16", "--step_size=0.25"})

	if !parser.IsArgSet("sample_count") {
		t.Fatalf("expected sample_count to be set")
	}
	if parser.IntParameter("sample_count") != 16 {
		t.Fatalf("expected sample_count = 16, got %d", parser.IntParameter("sample_count"))
	}
	if parser.StringParameter("step_size") != "0.25" {
		t.Fatalf("expected step_size = 0.25, got %s", parser.StringParameter("step_size"))
	}
}

func TestCommandLineParserDefaults(t *testing.T) {
	t.Parallel()

	parser := new(CommandLineParser)
	parser.Init()
	parser.AddOption(INT, "verbose", "0", "verbosity level")

	parser.Parse([]string{"raypipe"})

	if parser.IsArgSet("verbose") {
		t.Fatalf("expected verbose to be unset")
	}
	if parser.IntParameter("verbose") != 0 {
		t.Fatalf("expected default verbose = 0, got %d", parser.IntParameter("verbose"))
	}
}
