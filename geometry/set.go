package geometry

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any numeric element type a vector can be filled from.
type Number interface {
	constraints.Integer | constraints.Float
}

// New returns a zero vector.
func New[T constraints.Float]() *Vector[T] {
	return &Vector[T]{}
}

func NewVec2d() *Vec2d {
	return New[float64]()
}

func NewVec2f() *Vec2f {
	return New[float32]()
}

// The setters below overwrite v and return it so calls can be chained.

func (v *Vector[T]) SetFromValues(x, y T) *Vector[T] {
	v.X = x
	v.Y = y
	return v
}

func (v *Vector[T]) SetFromVec2d(src Vec2d) *Vector[T] {
	v.X = T(src.X)
	v.Y = T(src.Y)
	return v
}

func (v *Vector[T]) SetFromVec2f(src Vec2f) *Vector[T] {
	v.X = T(src.X)
	v.Y = T(src.Y)
	return v
}

func (v *Vector[T]) SetFromSlice(src []T) *Vector[T] {
	return SetFromSequence(v, src)
}

// SetFromSequence copies the first two elements of src into v. Elements
// beyond the end of src are stored as NaN.
func SetFromSequence[T constraints.Float, N Number](v *Vector[T], src []N) *Vector[T] {
	v.X = sequenceElement[T](src, 0)
	v.Y = sequenceElement[T](src, 1)
	return v
}

func sequenceElement[T constraints.Float, N Number](src []N, i int) T {
	if i >= len(src) {
		return T(math.NaN())
	}
	return T(src[i])
}
