package weierstrass

import (
	"math/big"

	"github.com/smallyu/go-ecdh/internal/crypto/primefield"
)

var three = big.NewInt(3)

// Add returns p + q under the curve group law.
//
// The identity cases are handled first; two affine points sharing an x
// coordinate are either the same point (delegated to Double) or mutual
// inverses (summing to the identity).
func (c *Curve) Add(p, q Point) (Point, error) {
	if p.IsInfinity() {
		return q, nil
	}
	if q.IsInfinity() {
		return p, nil
	}

	if p.x.Cmp(q.x) == 0 {
		if p.y.Cmp(q.y) == 0 {
			return c.Double(p)
		}
		// q = -p, the x coordinates match and the y coordinates are
		// additive inverses mod P.
		return Infinity(), nil
	}

	// s = (Py - Qy) / (Px - Qx)
	s, err := primefield.Div(
		primefield.Sub(p.y, q.y, c.P),
		primefield.Sub(p.x, q.x, c.P),
		c.P,
	)
	if err != nil {
		return Point{}, err
	}

	// Rx = s^2 - Px - Qx
	rx := primefield.Sub(
		primefield.Square(s, c.P),
		primefield.Add(p.x, q.x, c.P),
		c.P,
	)

	// Ry = s*(Px - Rx) - Py
	ry := primefield.Sub(
		primefield.Mul(s, primefield.Sub(p.x, rx, c.P), c.P),
		p.y,
		c.P,
	)

	return Point{x: rx, y: ry}, nil
}

// Double returns 2p under the curve group law. Doubling the identity, or
// a point with a vertical tangent (y = 0), yields the identity.
func (c *Curve) Double(p Point) (Point, error) {
	if p.IsInfinity() {
		return Infinity(), nil
	}
	if p.y.Sign() == 0 {
		return Infinity(), nil
	}

	// s = (3*Px^2 + a) / (2*Py)
	s, err := primefield.Div(
		primefield.Add(
			primefield.Mul(three, primefield.Square(p.x, c.P), c.P),
			c.A,
			c.P,
		),
		primefield.Add(p.y, p.y, c.P),
		c.P,
	)
	if err != nil {
		return Point{}, err
	}

	// Rx = s^2 - 2*Px
	rx := primefield.Sub(
		primefield.Square(s, c.P),
		primefield.Add(p.x, p.x, c.P),
		c.P,
	)

	// Ry = s*(Px - Rx) - Py
	ry := primefield.Sub(
		primefield.Mul(s, primefield.Sub(p.x, rx, c.P), c.P),
		p.y,
		c.P,
	)

	return Point{x: rx, y: ry}, nil
}

// ScalarMult returns k*p computed with the double-and-add method: the
// bits of k are consumed from least to most significant while a running
// point doubles through P, 2P, 4P, ... and is folded into the accumulator
// for every set bit. The scalar is reduced mod N first; every registered
// curve has cofactor 1, so N is the order of any curve point and the
// reduction never changes the result. k = 0 yields the identity.
//
// Cost is O(bitlen(k)) group operations. Not constant-time.
func (c *Curve) ScalarMult(p Point, k *big.Int) (Point, error) {
	k = new(big.Int).Mod(k, c.N)

	acc := Infinity()
	running := p
	var err error

	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			acc, err = c.Add(acc, running)
			if err != nil {
				return Point{}, err
			}
		}
		running, err = c.Double(running)
		if err != nil {
			return Point{}, err
		}
	}
	return acc, nil
}

// ScalarBaseMult returns k*G.
func (c *Curve) ScalarBaseMult(k *big.Int) (Point, error) {
	return c.ScalarMult(c.G, k)
}
