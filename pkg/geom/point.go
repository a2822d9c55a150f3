// Package geom provides integer 2D geometry for slicing cross-sections.
//
// Coordinates are in microns and stored as int64, so a full build plate
// (hundreds of millimeters) fits with room to spare and equality is exact.
// Squared lengths are used for tolerance comparisons wherever possible to
// avoid the square root.
package geom

import (
	"fmt"
	"math"
)

// Point is a position or displacement in micron coordinates.
type Point struct {
	X int64
	Y int64
}

// Pt returns the point (x, y).
func Pt(x, y int64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the displacement p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dot returns the dot product of p and q taken as vectors.
func (p Point) Dot(q Point) int64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product of p and q taken as vectors.
func (p Point) Cross(q Point) int64 {
	return p.X*q.Y - p.Y*q.X
}

// Size2 returns the squared length of p taken as a vector.
func (p Point) Size2() int64 {
	return p.X*p.X + p.Y*p.Y
}

// Size returns the length of p taken as a vector, rounded to the
// nearest micron.
func (p Point) Size() int64 {
	return int64(math.Round(math.Sqrt(float64(p.Size2()))))
}

// Less orders points lexicographically by X, then Y. It provides the
// deterministic tie-break used when geometry alone cannot decide.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// ShorterThan reports whether vector v is strictly shorter than l.
// The comparison is done on squared lengths.
func ShorterThan(v Point, l int64) bool {
	return v.Size2() < l*l
}

// Dist returns the distance between a and b, rounded to the nearest micron.
func Dist(a, b Point) int64 {
	return b.Sub(a).Size()
}
