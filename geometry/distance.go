package geometry

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// DistanceToSegment calculates the shortest distance from a point to the line
// segment between start and end. A zero-length segment measures to start.
func DistanceToSegment[T constraints.Float](point, start, end Vector[T]) T {
	segment := end.Sub(start)
	lengthSquared := segment.MagnitudeSquared()
	if lengthSquared == 0 {
		return point.Distance(start)
	}

	// Position of the projected point along the segment, 0 at start and 1 at end
	t := clampValue(point.Sub(start).DotProduct(segment)/lengthSquared, 0, 1)
	return point.Distance(start.Lerp(end, t))
}

func clampValue[T cmp.Ordered](value T, min T, max T) T {
	if value > max {
		value = max
		return value
	}

	if value < min {
		value = min
	}

	return value
}
