package clap

import (
	"github.com/napalu/clap/types"
)

// NewArg convenience initialization method to configure flags
func NewArg(configs ...ConfigureArgumentFunc) *Argument {
	argument := &Argument{}
	for _, config := range configs {
		config(argument, nil)
	}

	return argument
}

// Set configures the Argument instance with the provided ConfigureArgumentFunc(s),
// and returns an error if a configuration results in an error.
//
// Usage example:
//
//	arg := &Argument{}
//	err := arg.Set(
//	    WithName("precision"),
//	    WithShort('p'),
//	    WithType(Int),
//	)
//	if err != nil {
//	    // handle error
//	}
func (a *Argument) Set(configs ...ConfigureArgumentFunc) error {
	var err error
	for _, config := range configs {
		config(a, &err)
		if err != nil {
			return err
		}
	}
	return nil
}

// WithName sets the long name, matched as --name on the command line
func WithName(name string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Name = name
	}
}

// WithShort sets the short name, matched as -c on the command line. Only the first character
// following a single '-' is compared, so "-cfoo" also matches 'c'.
func WithShort(short rune) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Short = short
	}
}

// WithDescription the description will be used in help output presented to the user
func WithDescription(description string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Description = description
	}
}

// WithType - one of four types:
//  1. Bool - a flag which is true when present; an immediately following "true" or "false" is consumed
//  2. Int - a flag which expects a base-10 integer
//  3. Float - a flag which expects a floating-point number
//  4. String - a flag which expects any value
func WithType(typeOf types.ArgType) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.TypeOf = typeOf
	}
}

// SetRequired marks the flag as required. The marker shows up in String() but is not enforced by Parse.
func SetRequired(required bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Required = required
	}
}
