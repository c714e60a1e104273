package clap

import (
	"github.com/napalu/clap/types"
)

// ArgType used to define the kind of value an Argument accepts
type ArgType = types.ArgType

const (
	// Bool denotes a flag which is set to true by its mere presence but may be followed by "true" or "false"
	Bool = types.Bool
	// Int denotes a flag expecting a base-10 integer which fits a signed 32-bit integer
	Int = types.Int
	// Float denotes a flag expecting a floating-point literal
	Float = types.Float
	// String denotes a flag expecting any value, taken verbatim
	String = types.String
)

// ConfigureParserFunc is used when defining Parser options
type ConfigureParserFunc func(parser *Parser, err *error)

// ConfigureArgumentFunc is used when defining Argument options
type ConfigureArgumentFunc func(argument *Argument, err *error)

// ExitFunc terminates the process with the given status. Defaults to os.Exit.
type ExitFunc func(status int)

// ArgumentSet is the ordered collection of arguments a Parser matches tokens against.
// When two arguments share a name the first one wins.
type ArgumentSet []*Argument

const (
	longPrefix   = "--"
	shortPrefix  = "-"
	terminator   = "--"
	minHelpWidth = 2
)
