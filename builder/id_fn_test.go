package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/crowd/builder"
)

func TestIDFns(t *testing.T) {
	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},
		{"SymbolIDFn_min", builder.SymbolIDFn, 0, "A", false},
		{"SymbolIDFn_max", builder.SymbolIDFn, 25, "Z", false},
		{"SymbolIDFn_tooHigh", builder.SymbolIDFn, 26, "", true},
		{"SymbolNumber_v7", builder.SymbolNumberIDFn("v"), 7, "v7", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

func TestWeightFns(t *testing.T) {
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, int64(4), builder.ConstantWeightFn(4)(nil))
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })

	u := builder.UniformWeightFn(2, 6)
	assert.Equal(t, builder.DefaultEdgeWeight, u(nil))
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		w := u(rng)
		assert.GreaterOrEqual(t, w, int64(2))
		assert.LessOrEqual(t, w, int64(6))
	}
}
