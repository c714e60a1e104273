package clap

import (
	"io"

	"github.com/napalu/clap/types"
)

// NewParserWith allows initialization of Parser using option functions. The caller should always test for error on
// return because Parser will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	parser, err := NewParserWith(
//		WithArgument(NewArg(
//			WithName("extensions"),
//			WithShort('e'),
//			WithType(String),
//			WithDescription("comma-separated list of extensions"))),
//		WithArgument(NewArg(
//			WithName("json"),
//			WithType(Bool))),
//		WithStderr(os.Stderr))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	parser := NewParser()

	var err error
	for _, config := range configs {
		config(parser, &err)
		if err != nil {
			return nil, err
		}
	}

	return parser, err
}

// WithArgument is a wrapper for AddArgument
func WithArgument(argument *Argument) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddArgument(argument)
	}
}

// WithArguments adds every argument of arguments in order, stopping at the first one which is rejected
func WithArguments(arguments ...*Argument) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		for _, argument := range arguments {
			if *err = parser.AddArgument(argument); *err != nil {
				return
			}
		}
	}
}

// WithStdout sets the writer help output goes to. Defaults to os.Stdout.
func WithStdout(writer io.Writer) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if writer == nil {
			*err = types.ErrNilArgument
			return
		}
		parser.stdout = writer
	}
}

// WithStderr sets the writer error messages go to. Defaults to os.Stderr.
func WithStderr(writer io.Writer) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if writer == nil {
			*err = types.ErrNilArgument
			return
		}
		parser.stderr = writer
	}
}

// WithExitFunc replaces os.Exit as the function called when parsing must terminate the process
func WithExitFunc(exit ExitFunc) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if exit == nil {
			*err = types.ErrNilArgument
			return
		}
		parser.exit = exit
	}
}

// WithRenderer replaces the DefaultRenderer used by PrintHelp
func WithRenderer(renderer Renderer) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if renderer == nil {
			*err = types.ErrNilArgument
			return
		}
		parser.renderer = renderer
	}
}
