package misc

import (
	"fmt"
	"strconv"
	"strings"
)

type OptionType int

const (
	INT OptionType = iota
	STRING
)

type option struct {
	option_type   OptionType
	name          string
	default_value string
	help_msg      string
	value         string
	is_set        bool
}

// CommandLineParser is a minimal option registry. Options are declared with
// AddOption and supplied on the command line as --name=value or --name value;
// a bare --name marks the argument as set with its default value.
type CommandLineParser struct {
	options map[string]*option
	order   []string
	args    []string
}

func (this *CommandLineParser) Init() {
	this.options = make(map[string]*option)
	this.order = make([]string, 0)
	this.args = make([]string, 0)
}

func (this *CommandLineParser) AddOption(
	option_type OptionType,
	name string,
	default_value string,
	help_msg string,
) {
	if _, ok := this.options[name]; ok {
		err := fmt.Errorf("option %s is already registered", name)
		panic(err)
	}

	this.options[name] = &option{
		option_type:   option_type,
		name:          name,
		default_value: default_value,
		help_msg:      help_msg,
		value:         default_value,
	}
	this.order = append(this.order, name)
}

func (this *CommandLineParser) Parse(args []string) {
	this.args = args

	for i := 1; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			err := fmt.Errorf("unexpected argument %s", arg)
			panic(err)
		}

		body := strings.TrimPrefix(arg, "--")
		name := body
		value := ""
		has_value := false

		if idx := strings.Index(body, "="); idx >= 0 {
			name = body[:idx]
			value = body[idx+1:]
			has_value = true
		}

		opt, ok := this.options[name]
		if !ok {
			err := fmt.Errorf("unknown option %s", name)
			panic(err)
		}

		if !has_value && i+1 < len(args) && !strings.HasPrefix(args[i+1], "--") {
			i++
			value = args[i]
			has_value = true
		}

		if has_value {
			opt.value = value
		}
		opt.is_set = true
	}
}

func (this *CommandLineParser) IsArgSet(name string) bool {
	opt, ok := this.options[name]
	if !ok {
		return false
	}
	return opt.is_set
}

func (this *CommandLineParser) IntParameter(name string) int {
	opt, ok := this.options[name]
	if !ok {
		err := fmt.Errorf("unknown option %s", name)
		panic(err)
	}
	if opt.option_type != INT {
		err := fmt.Errorf("option %s is not an int option", name)
		panic(err)
	}

	value, parse_err := strconv.Atoi(opt.value)
	if parse_err != nil {
		panic(parse_err)
	}
	return value
}

func (this *CommandLineParser) StringParameter(name string) string {
	opt, ok := this.options[name]
	if !ok {
		err := fmt.Errorf("unknown option %s", name)
		panic(err)
	}
	return opt.value
}

func (this *CommandLineParser) StringifyHelpMsgs() string {
	var builder strings.Builder
	for _, name := range this.order {
		opt := this.options[name]
		builder.WriteString(fmt.Sprintf("--%s (default: %s)\n    %s\n", opt.name, opt.default_value, opt.help_msg))
	}
	return builder.String()
}

func (this *CommandLineParser) StringifyArgs() string {
	return strings.Join(this.args, " ")
}

func (this *CommandLineParser) StringifyOptions() string {
	lines := make([]string, 0, len(this.order))
	for _, name := range this.order {
		lines = append(lines, fmt.Sprintf("%s=%s", name, this.options[name].value))
	}
	return strings.Join(lines, "\n")
}
