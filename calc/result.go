package calc

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/meghashyamc/vec2d/geometry"
)

type Kind int

const (
	KindVector Kind = iota
	KindScalar
	KindBool
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Result struct {
	Kind   Kind
	Vector geometry.Vec2d
	Scalar float64
	Bool   bool
}

func VectorResult(v geometry.Vec2d) Result {
	return Result{Kind: KindVector, Vector: v}
}

func ScalarResult(s float64) Result {
	return Result{Kind: KindScalar, Scalar: s}
}

func BoolResult(b bool) Result {
	return Result{Kind: KindBool, Bool: b}
}

// Format renders the result as text. precision is the number of digits after
// the decimal point, or -1 for the shortest exact form.
func (r Result) Format(precision int) string {
	switch r.Kind {
	case KindVector:
		return fmt.Sprintf("(%s, %s)", formatFloat(r.Vector.X, precision), formatFloat(r.Vector.Y, precision))
	case KindScalar:
		return formatFloat(r.Scalar, precision)
	default:
		return strconv.FormatBool(r.Bool)
	}
}

func (r Result) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case KindVector:
		return json.Marshal(struct {
			X jsonFloat `json:"x"`
			Y jsonFloat `json:"y"`
		}{jsonFloat(r.Vector.X), jsonFloat(r.Vector.Y)})
	case KindScalar:
		return json.Marshal(jsonFloat(r.Scalar))
	default:
		return json.Marshal(r.Bool)
	}
}

// Write prints r to w in the given format, followed by a newline.
func Write(w io.Writer, r Result, format string, precision int) error {
	switch format {
	case FormatText, "":
		_, err := fmt.Fprintln(w, r.Format(precision))
		return err
	case FormatJSON:
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// jsonFloat encodes NaN and infinities as strings, which plain JSON numbers cannot hold.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return json.Marshal(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return json.Marshal(v)
}

func formatFloat(f float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', precision, 64)
}
