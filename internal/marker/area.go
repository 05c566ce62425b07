// Package marker moves player markers around the field.
package marker

import "math"

type Point struct {
	X float64
	Y float64
}

type Size struct {
	Width  float64
	Height float64
}

// Area is a rectangle on the field, top-left origin.
type Area struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// FieldArea is the whole field of the given size.
func FieldArea(field Size) Area {
	return Area{Width: field.Width, Height: field.Height}
}

// Clamp returns the top-left position closest to p at which an object of
// size obj stays entirely inside a. Objects larger than a pin to its
// top-left corner.
func (a Area) Clamp(p Point, obj Size) Point {
	return Point{
		X: clampAxis(p.X, a.X, a.X+a.Width-obj.Width),
		Y: clampAxis(p.Y, a.Y, a.Y+a.Height-obj.Height),
	}
}

func clampAxis(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
