package clap

import (
	"fmt"
	"strings"

	"github.com/napalu/clap/types"
)

// Argument defines a command-line flag and holds its parsed value.
// A flag is matched as --Name when Name is not empty and as -Short when Short is not 0.
type Argument struct {
	Name        string
	Short       rune
	TypeOf      types.ArgType
	Description string
	// Required is informational only: Parse does not check that required arguments were supplied
	Required bool
	value    types.Value
}

// NewArgument convenience initialization method to describe flags. Alternatively, use NewArg to
// configure Argument using option functions.
func NewArgument(name string, short rune, typeOf types.ArgType, description string, required bool) *Argument {
	return &Argument{
		Name:        name,
		Short:       short,
		TypeOf:      typeOf,
		Description: description,
		Required:    required,
	}
}

// IsSet returns true when the argument holds a value
func (a *Argument) IsSet() bool {
	return a.value != nil
}

// Value returns the parsed value or nil when the argument was not set
func (a *Argument) Value() types.Value {
	return a.value
}

// GetBool returns the value of a Bool argument. An argument which was not set reads as false.
// Panics when the argument is not of type Bool.
func (a *Argument) GetBool() bool {
	a.mustBeOfType(types.Bool)
	if a.value == nil {
		return false
	}

	return bool(a.value.(types.BoolValue))
}

// GetInt returns the value of an Int argument. Panics when the argument is not of type Int or was not set.
func (a *Argument) GetInt() int {
	a.mustBeOfType(types.Int)
	a.mustBeSet()

	return int(a.value.(types.IntValue))
}

// GetFloat returns the value of a Float argument. Panics when the argument is not of type Float or was not set.
func (a *Argument) GetFloat() float64 {
	a.mustBeOfType(types.Float)
	a.mustBeSet()

	return float64(a.value.(types.FloatValue))
}

// GetString returns the value of a String argument. Panics when the argument is not of type String or was not set.
func (a *Argument) GetString() string {
	a.mustBeOfType(types.String)
	a.mustBeSet()

	return string(a.value.(types.StringValue))
}

// Clear releases the parsed value. Calling Clear on an argument which holds no value is a no-op.
// Name, Short, TypeOf and Description are left untouched.
func (a *Argument) Clear() {
	a.value = nil
}

// String returns a string representation of the Argument instance
func (a *Argument) String() string {
	return strings.TrimLeft(fmt.Sprintf("%s %s \"%s\" %s", a.names(), a.TypeOf, a.Description, a.required()), " ")
}

func (a *Argument) set(value types.Value) {
	if value.Type() != a.TypeOf {
		panic(fmt.Errorf("%w: %s holds %s, got %s", types.ErrTypeMismatch, a.displayName(), a.TypeOf, value.Type()))
	}
	a.value = value
}

func (a *Argument) mustBeOfType(typeOf types.ArgType) {
	if a.TypeOf != typeOf {
		panic(fmt.Errorf("%w: %s is %s, not %s", types.ErrTypeMismatch, a.displayName(), a.TypeOf, typeOf))
	}
}

func (a *Argument) mustBeSet() {
	if a.value == nil {
		panic(fmt.Errorf(types.FmtErrorWithString, types.ErrValueNotSet, a.displayName()))
	}
}

func (a *Argument) hasName() bool {
	return a.Name != "" || a.Short != 0
}

func (a *Argument) names() string {
	var names []string
	if a.Name != "" {
		names = append(names, longPrefix+a.Name)
	}
	if a.Short != 0 {
		names = append(names, shortPrefix+string(a.Short))
	}

	return strings.Join(names, ", ")
}

func (a *Argument) displayName() string {
	if a.Name != "" {
		return longPrefix + a.Name
	}
	if a.Short != 0 {
		return shortPrefix + string(a.Short)
	}

	return "<unnamed>"
}

func (a *Argument) required() string {
	if a.Required {
		return "(required)"
	}

	return "(optional)"
}
