package calc

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/meghashyamc/vec2d/geometry"
	"github.com/meghashyamc/vec2d/logger"
)

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrArgCount         = errors.New("wrong number of arguments")
	ErrParse            = errors.New("invalid operand")
)

type operation struct {
	vectors int
	scalars int
	usage   string
	eval    func(v []geometry.Vec2d, s []float64) Result
}

var operations = map[string]operation{
	"create": {0, 0, "create", func(_ []geometry.Vec2d, _ []float64) Result {
		return VectorResult(*geometry.NewVec2d())
	}},
	"set": {0, 2, "set X Y", func(_ []geometry.Vec2d, s []float64) Result {
		return VectorResult(*geometry.NewVec2d().SetFromValues(s[0], s[1]))
	}},
	"add": {2, 0, "add A B", func(v []geometry.Vec2d, _ []float64) Result {
		return VectorResult(*geometry.Add(v[0], v[1], &v[0]))
	}},
	"subtract": {2, 0, "subtract A B", func(v []geometry.Vec2d, _ []float64) Result {
		return VectorResult(*geometry.Subtract(v[0], v[1], &v[0]))
	}},
	"negate": {1, 0, "negate A", func(v []geometry.Vec2d, _ []float64) Result {
		return VectorResult(*geometry.Negate(v[0], &v[0]))
	}},
	"scale": {1, 1, "scale A K", func(v []geometry.Vec2d, s []float64) Result {
		return VectorResult(*geometry.Scale(v[0], s[0], &v[0]))
	}},
	"magnitude-squared": {1, 0, "magnitude-squared A", func(v []geometry.Vec2d, _ []float64) Result {
		return ScalarResult(v[0].MagnitudeSquared())
	}},
	"magnitude": {1, 0, "magnitude A", func(v []geometry.Vec2d, _ []float64) Result {
		return ScalarResult(v[0].Magnitude())
	}},
	"normalize": {1, 0, "normalize A", func(v []geometry.Vec2d, _ []float64) Result {
		return VectorResult(*geometry.Normalize(v[0], &v[0]))
	}},
	"dot": {2, 0, "dot A B", func(v []geometry.Vec2d, _ []float64) Result {
		return ScalarResult(v[0].DotProduct(v[1]))
	}},
	"distance-squared": {2, 0, "distance-squared A B", func(v []geometry.Vec2d, _ []float64) Result {
		return ScalarResult(v[0].DistanceSquared(v[1]))
	}},
	"distance": {2, 0, "distance A B", func(v []geometry.Vec2d, _ []float64) Result {
		return ScalarResult(v[0].Distance(v[1]))
	}},
	"direction": {2, 0, "direction FROM TO", func(v []geometry.Vec2d, _ []float64) Result {
		return VectorResult(*geometry.Direction(v[0], v[1], &v[0]))
	}},
	"lerp": {2, 1, "lerp A B F", func(v []geometry.Vec2d, s []float64) Result {
		return VectorResult(*geometry.Lerp(v[0], v[1], s[0], &v[0]))
	}},
	"equals": {2, 0, "equals A B", func(v []geometry.Vec2d, _ []float64) Result {
		return BoolResult(v[0].Equals(v[1]))
	}},
	"angle": {2, 0, "angle A B", func(v []geometry.Vec2d, _ []float64) Result {
		return ScalarResult(v[0].AngleTo(v[1]))
	}},
	"reflect": {2, 0, "reflect A NORMAL", func(v []geometry.Vec2d, _ []float64) Result {
		return VectorResult(v[0].Reflect(v[1]))
	}},
	"segment-distance": {3, 0, "segment-distance P START END", func(v []geometry.Vec2d, _ []float64) Result {
		return ScalarResult(geometry.DistanceToSegment(v[0], v[1], v[2]))
	}},
}

// Operations returns the usage line of every operation, sorted by name.
func Operations() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)

	usages := make([]string, 0, len(names))
	for _, name := range names {
		usages = append(usages, operations[name].usage)
	}
	return usages
}

type Calculator struct {
	logger logger.Logger
}

func New(log logger.Logger) *Calculator {
	return &Calculator{logger: log}
}

// Evaluate runs the named operation. Vector operands come first, written as
// "x,y", followed by any scalar operands.
func (c *Calculator) Evaluate(name string, args []string) (Result, error) {
	op, ok := operations[name]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	if len(args) != op.vectors+op.scalars {
		return Result{}, fmt.Errorf("%w: usage: %s", ErrArgCount, op.usage)
	}

	vectors := make([]geometry.Vec2d, op.vectors)
	for i := range vectors {
		v, err := ParseVector(args[i])
		if err != nil {
			return Result{}, err
		}
		vectors[i] = v
	}

	scalars := make([]float64, op.scalars)
	for i := range scalars {
		s, err := parseScalar(args[op.vectors+i])
		if err != nil {
			return Result{}, err
		}
		scalars[i] = s
	}

	result := op.eval(vectors, scalars)
	c.logger.Debug("operation evaluated", "operation", name, "args", args, "result", result.Format(-1))
	return result, nil
}

// ParseVector reads "x,y", optionally wrapped in parentheses.
func ParseVector(s string) (geometry.Vec2d, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimSuffix(strings.TrimPrefix(trimmed, "("), ")")

	parts := strings.Split(trimmed, ",")
	if len(parts) != 2 {
		return geometry.Vec2d{}, fmt.Errorf("%w: %q is not a vector, expected x,y", ErrParse, s)
	}

	components := make([]float64, 0, 2)
	for _, part := range parts {
		f, err := parseScalar(part)
		if err != nil {
			return geometry.Vec2d{}, err
		}
		components = append(components, f)
	}

	return *geometry.NewVec2d().SetFromSlice(components), nil
}

func parseScalar(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrParse, s)
	}
	return f, nil
}
