package types

import (
	"strconv"
)

// Value holds the parsed value of an Argument. The concrete type is one of
// BoolValue, IntValue, FloatValue or StringValue and always matches Type().
// A nil Value denotes an argument which was not set.
type Value interface {
	Type() ArgType
	String() string
	isValue()
}

// BoolValue is the Value of a Bool argument
type BoolValue bool

// IntValue is the Value of an Int argument
type IntValue int32

// FloatValue is the Value of a Float argument
type FloatValue float64

// StringValue is the Value of a String argument
type StringValue string

func (BoolValue) Type() ArgType { return Bool }
func (IntValue) Type() ArgType { return Int }
func (FloatValue) Type() ArgType { return Float }
func (StringValue) Type() ArgType { return String }

func (v BoolValue) String() string { return strconv.FormatBool(bool(v)) }
func (v IntValue) String() string { return strconv.FormatInt(int64(v), 10) }
func (v FloatValue) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v StringValue) String() string { return string(v) }

func (BoolValue) isValue() {}
func (IntValue) isValue() {}
func (FloatValue) isValue() {}
func (StringValue) isValue() {}
