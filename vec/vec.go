// Package vec provides a 2-component planar vector value type.
package vec

import (
	"fmt"
	"math"
)

// Vec is an immutable planar vector. The zero value is the zero
// vector; operations return new values.
type Vec struct {
	X, Y float64
}

// Add returns the componentwise sum of v and w.
func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

// Scale returns v scaled by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Abs returns the Euclidean norm of v, always >= 0.
func (v Vec) Abs() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether v is the exact zero vector.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// String returns the vector as a string (e.g., "Vector(4, 3)")
func (v Vec) String() string {
	return fmt.Sprintf("Vector(%v, %v)", v.X, v.Y)
}
