// Package moremath holds small numeric helpers that mgl32/mgl64 do not cover.
package moremath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RoundDownToMultiple floors value to the nearest multiple of denominator.
// A zero denominator yields NaN.
func RoundDownToMultiple(value, denominator float64) float64 {
	return math.Floor(value/denominator) * denominator
}

// RoundDownToMultiple32 is the float32 variant of RoundDownToMultiple.
func RoundDownToMultiple32(value, denominator float32) float32 {
	return float32(math.Floor(float64(value/denominator))) * denominator
}

// minSide replaces zero-length sides so the ratios stay finite.
const minSide = 0.00001

// RightAngledTriangle is the horizontal triangle spanned by two points.
//
//	          end
//	         /|
//	      h / | o
//	       /  |
//	start /___|
//	        a
//
// The opposite side runs along X, the adjacent side along Z. Y is ignored.
type RightAngledTriangle struct {
	hypotenuse float64
	opposite   float64
	adjacent   float64
}

func NewRightAngledTriangle(start, end mgl64.Vec3) RightAngledTriangle {
	o := clampSide(end.X() - start.X())
	a := clampSide(end.Z() - start.Z())
	return RightAngledTriangle{
		hypotenuse: math.Sqrt(o*o + a*a),
		opposite:   o,
		adjacent:   a,
	}
}

func clampSide(v float64) float64 {
	if v == 0 {
		return minSide
	}
	return v
}

func (t RightAngledTriangle) Hypotenuse() float64 { return t.hypotenuse }
func (t RightAngledTriangle) Opposite() float64   { return t.opposite }
func (t RightAngledTriangle) Adjacent() float64   { return t.adjacent }

func (t RightAngledTriangle) Cos() float64 {
	return t.adjacent / t.hypotenuse
}

func (t RightAngledTriangle) Sin() float64 {
	return t.opposite / t.hypotenuse
}

func (t RightAngledTriangle) Tan() float64 {
	return t.Sin() / t.Cos()
}
