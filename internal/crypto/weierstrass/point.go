package weierstrass

import (
	"fmt"
	"math/big"
)

// Point is an immutable point on a short-Weierstrass curve: either the
// point at infinity (the group identity) or an affine coordinate pair.
//
// The identity carries an explicit tag rather than a sentinel coordinate
// value, so it can never be confused with a genuine point at the origin.
type Point struct {
	x, y *big.Int
	inf  bool
}

// Infinity returns the point at infinity.
func Infinity() Point {
	return Point{inf: true}
}

// NewPoint returns the affine point (x, y). The coordinates are copied.
func NewPoint(x, y *big.Int) Point {
	return Point{
		x: new(big.Int).Set(x),
		y: new(big.Int).Set(y),
	}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.inf
}

// X returns the affine x coordinate, or nil for the point at infinity.
func (p Point) X() *big.Int {
	if p.inf {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Y returns the affine y coordinate, or nil for the point at infinity.
func (p Point) Y() *big.Int {
	if p.inf {
		return nil
	}
	return new(big.Int).Set(p.y)
}

// Equal reports whether p and q represent the same point.
func (p Point) Equal(q Point) bool {
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

func (p Point) String() string {
	if p.inf {
		return "(infinity)"
	}
	return fmt.Sprintf("(%s, %s)", p.x.Text(16), p.y.Text(16))
}
