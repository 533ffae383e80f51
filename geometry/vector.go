package geometry

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Vector is a 2D vector or point. Operations never mutate the receiver.
type Vector[T constraints.Float] struct {
	X T
	Y T
}

// Vec2d is a double precision vector.
type Vec2d = Vector[float64]

// Vec2f is a single precision vector.
type Vec2f = Vector[float32]

func (v Vector[T]) Add(other Vector[T]) Vector[T] {
	return Vector[T]{v.X + other.X, v.Y + other.Y}
}

func (v Vector[T]) Sub(other Vector[T]) Vector[T] {
	return Vector[T]{v.X - other.X, v.Y - other.Y}
}

func (v Vector[T]) Negate() Vector[T] {
	return Vector[T]{-v.X, -v.Y}
}

func (v Vector[T]) Scale(factor T) Vector[T] {
	return Vector[T]{v.X * factor, v.Y * factor}
}

// DotProduct calculates the dot product of two vectors
func (v Vector[T]) DotProduct(other Vector[T]) T {
	return v.X*other.X + v.Y*other.Y
}

// MagnitudeSquared is cheaper than Magnitude when only comparing lengths.
func (v Vector[T]) MagnitudeSquared() T {
	return v.X*v.X + v.Y*v.Y
}

// Magnitude calculates the magnitude (length) of a vector
func (v Vector[T]) Magnitude() T {
	return T(math.Sqrt(float64(v.MagnitudeSquared())))
}

// Normalize scales v to unit length. The zero vector has no direction and
// comes back with NaN components.
func (v Vector[T]) Normalize() Vector[T] {
	inverse := 1 / v.Magnitude()
	return Vector[T]{v.X * inverse, v.Y * inverse}
}

func (v Vector[T]) DistanceSquared(other Vector[T]) T {
	return v.Sub(other).MagnitudeSquared()
}

func (v Vector[T]) Distance(other Vector[T]) T {
	return T(math.Sqrt(float64(v.DistanceSquared(other))))
}

// Direction returns the unit vector pointing from v to target, or the zero
// vector when both points coincide.
func (v Vector[T]) Direction(target Vector[T]) Vector[T] {
	delta := target.Sub(v)
	distance := delta.Magnitude()
	if distance == 0 {
		return Vector[T]{}
	}
	inverse := 1 / distance
	return Vector[T]{delta.X * inverse, delta.Y * inverse}
}

// Lerp interpolates from v to target. f is expected in [0, 1] and is not clamped.
func (v Vector[T]) Lerp(target Vector[T], f T) Vector[T] {
	return Vector[T]{
		X: (target.X-v.X)*f + v.X,
		Y: (target.Y-v.Y)*f + v.Y,
	}
}

// Equals compares components exactly, without tolerance.
func (v Vector[T]) Equals(other Vector[T]) bool {
	return v.X == other.X && v.Y == other.Y
}

// reflected = incident - 2*(incident·normal)*normal
func (v Vector[T]) Reflect(normal Vector[T]) Vector[T] {
	dotProduct := v.DotProduct(normal)

	reflectedX := v.X - 2*dotProduct*normal.X
	reflectedY := v.Y - 2*dotProduct*normal.Y

	return Vector[T]{
		X: reflectedX,
		Y: reflectedY,
	}
}

// AngleTo calculates the angle between this vector and another vector in radians
func (v Vector[T]) AngleTo(other Vector[T]) float64 {
	dot := float64(v.DotProduct(other))
	magV := float64(v.Magnitude())
	magOther := float64(other.Magnitude())

	// Handle zero-length vectors
	if magV == 0 || magOther == 0 {
		return 0
	}

	// cos(θ) = (A · B) / (|A| * |B|)
	cosTheta := clampValue(dot/(magV*magOther), -1, 1)

	return math.Acos(cosTheta)
}

func (v Vector[T]) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
