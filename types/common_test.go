package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgType_String(t *testing.T) {
	tests := []struct {
		typ      ArgType
		expected string
	}{
		{Bool, "bool"},
		{Int, "int"},
		{Float, "float"},
		{String, "string"},
		{ArgType(42), "invalid"},
		{ArgType(-1), "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.typ.String())
		})
	}
}

func TestArgType_TakesValue(t *testing.T) {
	assert.False(t, Bool.TakesValue())
	assert.True(t, Int.TakesValue())
	assert.True(t, Float.TakesValue())
	assert.True(t, String.TakesValue())
}

func TestValue_TypeMatchesVariant(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		typ      ArgType
		rendered string
	}{
		{"bool", BoolValue(true), Bool, "true"},
		{"int", IntValue(math.MinInt32), Int, "-2147483648"},
		{"float", FloatValue(2.5), Float, "2.5"},
		{"string", StringValue("c,h"), String, "c,h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.typ, tt.value.Type())
			assert.Equal(t, tt.rendered, tt.value.String())
		})
	}
}
