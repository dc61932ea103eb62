package latcoord

import "fmt"

// quarterUnit is the fixed-point denominator: every lattice coordinate lies
// on a 1/4 grid, so representing each axis as an integer count of quarters
// keeps equality and hashing exact.
const quarterUnit = 4

// Axis is one coordinate axis expressed as an integer part plus a quarter
// step numerator in [0,3]; its value is Int + Q/4.
type Axis struct {
	Int int
	Q   int8
}

// axisFromQuarters normalizes a raw quarter count (which may be negative or
// ≥4) into the canonical (Int, Q) form.
func axisFromQuarters(quarters int) Axis {
	i := quarters / quarterUnit
	q := quarters % quarterUnit
	if q < 0 {
		q += quarterUnit
		i--
	}
	return Axis{Int: i, Q: int8(q)}
}

// quarters returns the axis value as a raw count of quarters.
func (a Axis) quarters() int {
	return a.Int*quarterUnit + int(a.Q)
}

// Float returns the axis as a float64.
func (a Axis) Float() float64 {
	return float64(a.Int) + float64(a.Q)/quarterUnit
}

// Offset shifts the axis by delta, which must be a multiple of 0.25 (true
// of every offset the grid deformer computes). Any other delta panics,
// since it would silently lose precision — a programmer error, not a
// runtime condition callers need to handle.
func (a Axis) Offset(delta float64) Axis {
	scaled := delta * quarterUnit
	q := int(scaled)
	if float64(q) != scaled {
		panic(fmt.Sprintf("latcoord: offset %v is not a multiple of 0.25", delta))
	}
	return axisFromQuarters(a.quarters() + q)
}

// Coord is an exact lattice-corner coordinate: a pair of Axis values.
type Coord struct {
	X, Y Axis
}

// FromInt builds the integer lattice coordinate (x,y).
func FromInt(x, y int) Coord {
	return Coord{X: Axis{Int: x}, Y: Axis{Int: y}}
}

// Offset returns c shifted by (dx, dy), each a multiple of 0.25.
func (c Coord) Offset(dx, dy float64) Coord {
	return Coord{X: c.X.Offset(dx), Y: c.Y.Offset(dy)}
}

// Less reports whether c sorts lexicographically before o (X first, then
// Y), matching Python tuple comparison semantics used by the original
// implementation's min(nodes) selection.
func (c Coord) Less(o Coord) bool {
	cx, ox := c.X.quarters(), o.X.quarters()
	if cx != ox {
		return cx < ox
	}
	return c.Y.quarters() < o.Y.quarters()
}

// Equal reports exact equality; also usable via == since Coord is a plain
// comparable struct, but Equal reads better at call sites.
func (c Coord) Equal(o Coord) bool {
	return c == o
}

// Float returns the coordinate as a (x,y) float64 pair.
func (c Coord) Float() (x, y float64) {
	return c.X.Float(), c.Y.Float()
}

// String renders the coordinate in "(x, y)" decimal form, trimming quarter
// steps to their decimal equivalent for readability in error messages.
func (c Coord) String() string {
	return fmt.Sprintf("(%g, %g)", c.X.Float(), c.Y.Float())
}

// Min returns the lexicographically smaller of a and b.
func Min(a, b Coord) Coord {
	if a.Less(b) {
		return a
	}
	return b
}
