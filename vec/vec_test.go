package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec_Add(t *testing.T) {
	v := Vec{X: 4, Y: 3}
	w := Vec{X: 3, Y: 1}

	assert.Equal(t, Vec{X: 7, Y: 4}, v.Add(w))
	assert.Equal(t, v.Add(w), w.Add(v), "addition commutes")
	assert.Equal(t, v, v.Add(Vec{}), "zero vector is identity")
}

func TestVec_Scale(t *testing.T) {
	v := Vec{X: 4, Y: 3}

	assert.Equal(t, Vec{X: 12, Y: 9}, v.Scale(3))
	assert.Equal(t, Vec{}, v.Scale(0))
	assert.Equal(t, Vec{X: -4, Y: -3}, v.Scale(-1))
	assert.Equal(t, Vec{X: 2, Y: 1.5}, v.Scale(0.5))
}

func TestVec_Abs(t *testing.T) {
	tests := []struct {
		name string
		v    Vec
		want float64
	}{
		{"3-4-5 triangle", Vec{X: 4, Y: 3}, 5},
		{"zero vector", Vec{}, 0},
		{"axis aligned", Vec{X: 0, Y: -2}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Abs())
		})
	}
}

func TestVec_IsZero(t *testing.T) {
	assert.True(t, Vec{}.IsZero())
	assert.True(t, Vec{X: 0, Y: 0}.IsZero())
	assert.False(t, Vec{X: 0, Y: 0.0001}.IsZero())
	assert.False(t, Vec{X: -1}.IsZero())
}

func TestVec_String(t *testing.T) {
	tests := []struct {
		v    Vec
		want string
	}{
		{Vec{X: 7, Y: 4}, "Vector(7, 4)"},
		{Vec{}, "Vector(0, 0)"},
		{Vec{X: 2, Y: 1.5}, "Vector(2, 1.5)"},
		{Vec{X: -4, Y: -3}, "Vector(-4, -3)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}
