package types

import (
	"errors"
)

// ArgType used to define the kind of value an Argument accepts (Bool, Int, Float, String)
type ArgType int

const (
	Bool   ArgType = iota // Bool denotes a flag which takes no value by default (presence means true)
	Int                   // Int denotes a flag accepting a base-10 integer in the range of a signed 32-bit integer
	Float                 // Float denotes a flag accepting a floating-point literal
	String                // String denotes a flag accepting any value verbatim
)

// String returns the string representation of an ArgType
func (t ArgType) String() string {
	switch t {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	default:
		return "invalid"
	}
}

// TakesValue returns true when a flag of this type consumes the following token
func (t ArgType) TakesValue() bool {
	return t != Bool
}

var (
	ErrUnknownArgument     = errors.New("unknown argument")
	ErrMissingValue        = errors.New("missing value for argument")
	ErrInvalidArgumentType = errors.New("invalid argument type")
	ErrValueOutOfRange     = errors.New("value out of range for argument")
	ErrEmptyFlag           = errors.New("argument needs a long or a short name")
	ErrNilArgument         = errors.New("can't add nil argument")
	ErrTypeMismatch        = errors.New("argument type mismatch")
	ErrValueNotSet         = errors.New("argument value not set")
	ErrUnsupportedShell    = errors.New("unsupported shell")
)

const (
	FmtErrorWithString = "%w: %s"
	FmtErrorWithQuoted = "%w '%s'"
)
