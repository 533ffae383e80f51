package geometry

import "golang.org/x/exp/constraints"

// These functions store their result in out and return it. Inputs are taken
// by value, so out may point at a variable that was also passed as an input.

func Add[T constraints.Float](a, b Vector[T], out *Vector[T]) *Vector[T] {
	*out = a.Add(b)
	return out
}

func Subtract[T constraints.Float](a, b Vector[T], out *Vector[T]) *Vector[T] {
	*out = a.Sub(b)
	return out
}

func Negate[T constraints.Float](a Vector[T], out *Vector[T]) *Vector[T] {
	*out = a.Negate()
	return out
}

func Scale[T constraints.Float](a Vector[T], factor T, out *Vector[T]) *Vector[T] {
	*out = a.Scale(factor)
	return out
}

func Normalize[T constraints.Float](a Vector[T], out *Vector[T]) *Vector[T] {
	*out = a.Normalize()
	return out
}

func Direction[T constraints.Float](from, to Vector[T], out *Vector[T]) *Vector[T] {
	*out = from.Direction(to)
	return out
}

func Lerp[T constraints.Float](a, b Vector[T], f T, out *Vector[T]) *Vector[T] {
	*out = a.Lerp(b, f)
	return out
}
