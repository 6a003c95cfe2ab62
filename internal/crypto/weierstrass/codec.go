package weierstrass

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidEncoding is returned by DecodePoint for anything that is not
// a well-formed SEC1 uncompressed hex encoding of a point on the curve.
var ErrInvalidEncoding = errors.New("weierstrass: invalid point encoding")

const uncompressedPrefix = "04"

// EncodePoint serializes an affine point as a SEC1 uncompressed hex
// string: the "04" marker followed by x and y, each zero-padded to the
// byte width of the field prime. The point at infinity has no
// uncompressed encoding and is rejected.
func (c *Curve) EncodePoint(p Point) (string, error) {
	if p.IsInfinity() {
		return "", fmt.Errorf("%w: the point at infinity cannot be encoded", ErrInvalidEncoding)
	}

	width := 2 * c.FieldBytes()
	return fmt.Sprintf("%s%0*x%0*x", uncompressedPrefix, width, p.x, width, p.y), nil
}

// DecodePoint parses a SEC1 uncompressed hex string into a point and
// verifies the result lies on the curve. Compressed markers ("02"/"03")
// and any other prefix are rejected, as are encodings whose coordinate
// halves are uneven or not valid hex.
func (c *Curve) DecodePoint(s string) (Point, error) {
	if len(s) < 2 || s[:2] != uncompressedPrefix {
		return Point{}, fmt.Errorf("%w: missing uncompressed-point prefix", ErrInvalidEncoding)
	}

	rest := s[2:]
	if len(rest) == 0 || len(rest)%2 != 0 {
		return Point{}, fmt.Errorf("%w: coordinates do not split evenly", ErrInvalidEncoding)
	}

	half := len(rest) / 2
	x, ok := new(big.Int).SetString(rest[:half], 16)
	if !ok {
		return Point{}, fmt.Errorf("%w: x coordinate is not valid hex", ErrInvalidEncoding)
	}
	y, ok := new(big.Int).SetString(rest[half:], 16)
	if !ok {
		return Point{}, fmt.Errorf("%w: y coordinate is not valid hex", ErrInvalidEncoding)
	}

	if x.Sign() < 0 || y.Sign() < 0 || x.Cmp(c.P) >= 0 || y.Cmp(c.P) >= 0 {
		return Point{}, fmt.Errorf("%w: coordinate outside the field", ErrInvalidEncoding)
	}

	p := Point{x: x, y: y}
	if !c.IsOnCurve(p) {
		return Point{}, fmt.Errorf("%w: point is not on %s", ErrInvalidEncoding, c.Name)
	}
	return p, nil
}
