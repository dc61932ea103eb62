package point

import "math"

// Point is a 2-D point or vector with float64 components.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point {
	return Point{p.X * k, p.Y * k}
}

// Magnitude returns the Euclidean length of p treated as a vector.
func (p Point) Magnitude() float64 {
	return math.Hypot(p.X, p.Y)
}

// Round returns p with each component rounded to the nearest integer.
func (p Point) Round() Point {
	return Point{math.Round(p.X), math.Round(p.Y)}
}

// FromPolar builds the vector of the given length at the given angle
// (radians), used by the smoother to generate random offsets.
func FromPolar(length, angle float64) Point {
	return Point{length * math.Cos(angle), length * math.Sin(angle)}
}
