package clap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgumentConfigFuncs(t *testing.T) {
	tests := []struct {
		name    string
		configs []ConfigureArgumentFunc
		want    Argument
	}{
		{
			name:    "long name only",
			configs: []ConfigureArgumentFunc{WithName("json"), WithType(Bool)},
			want:    Argument{Name: "json", TypeOf: Bool},
		},
		{
			name: "all options",
			configs: []ConfigureArgumentFunc{
				WithName("precision"),
				WithShort('p'),
				WithType(Int),
				WithDescription("decimal places"),
				SetRequired(true),
			},
			want: Argument{Name: "precision", Short: 'p', TypeOf: Int, Description: "decimal places", Required: true},
		},
		{
			name:    "later option wins",
			configs: []ConfigureArgumentFunc{WithType(Int), WithType(Float), SetRequired(true), SetRequired(false)},
			want:    Argument{TypeOf: Float},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, *NewArg(tt.configs...))

			arg := &Argument{}
			assert.NoError(t, arg.Set(tt.configs...))
			assert.Equal(t, tt.want, *arg)
		})
	}
}

func TestArgument_SetStopsOnError(t *testing.T) {
	failing := func(argument *Argument, err *error) {
		*err = errors.New("boom")
	}

	arg := &Argument{}
	err := arg.Set(WithName("first"), failing, WithName("second"))
	assert.EqualError(t, err, "boom")
	assert.Equal(t, "first", arg.Name, "configs after the failing one should not run")
}
