// Package weierstrass implements the group of points on named
// short-Weierstrass curves y^2 = x^3 + a*x + b over prime fields, built
// from first principles on top of the primefield package.
//
// Curves are constructed once through the registry and shared read-only;
// points are immutable values. Nothing here is constant-time.
package weierstrass

import (
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/smallyu/go-ecdh/internal/crypto/primefield"
)

// ErrUnknownCurve is returned by ByName for a curve the registry does not
// carry.
var ErrUnknownCurve = errors.New("weierstrass: unknown curve")

// Curve holds the domain parameters of a named curve. A Curve is immutable
// after construction and safe to share between goroutines.
type Curve struct {
	Name string

	P *big.Int // field prime
	A *big.Int // curve coefficient a
	B *big.Int // curve coefficient b
	G Point    // generator
	N *big.Int // order of G
	H *big.Int // cofactor

	// KeySizeBits is the number of random bits drawn for a private key.
	// It is kept below the bit length of N for every shipped curve so a
	// freshly drawn scalar is always already reduced mod N.
	KeySizeBits int
}

// curveSpec is a registry entry: raw hex literals straight out of the
// SEC 2 document (https://www.secg.org/sec2-v2.pdf).
type curveSpec struct {
	p, a, b     string
	g           string // SEC1 uncompressed generator encoding
	n, h        string
	keySizeBits int
}

var registry = map[string]curveSpec{
	"secp192k1": {
		p: "fffffffffffffffffffffffffffffffffffffffeffffee37",
		a: "0",
		b: "3",
		g: "04" +
			"db4ff10ec057e9ae26b07d0280b7f4341da5d1b1eae06c7d" +
			"9b2f2f6d9c5628a7844163d015be86344082aa88d95e2f9d",
		n:           "fffffffffffffffffffffffe26f2fc170f69466a74defd8d",
		h:           "1",
		keySizeBits: 160,
	},
	"secp192r1": {
		p: "fffffffffffffffffffffffffffffffeffffffffffffffff",
		a: "fffffffffffffffffffffffffffffffefffffffffffffffc",
		b: "64210519e59c80e70fa7e9ab72243049feb8deecc146b9b1",
		g: "04" +
			"188da80eb03090f67cbf20eb43a18800f4ff0afd82ff1012" +
			"07192b95ffc8da78631011ed6b24cdd573f977a11e794811",
		n:           "ffffffffffffffffffffffff99def836146bc9b1b4d22831",
		h:           "1",
		keySizeBits: 160,
	},
	"secp256k1": {
		p: "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f",
		a: "0",
		b: "7",
		g: "04" +
			"79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
			"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
		n:           "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141",
		h:           "1",
		keySizeBits: 224,
	},
	"secp256r1": {
		p: "ffffffff00000001000000000000000000000000ffffffffffffffffffffffff",
		a: "ffffffff00000001000000000000000000000000fffffffffffffffffffffffc",
		b: "5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b",
		g: "04" +
			"6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296" +
			"4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5",
		n:           "ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551",
		h:           "1",
		keySizeBits: 224,
	},
}

// Names returns the identifiers of all registered curves, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName constructs the named curve from its registered parameters. It
// returns ErrUnknownCurve for an unregistered name, and a construction
// error when a literal is malformed or the parameters fail validation
// (unreachable for the shipped curves, reachable for ones added later).
func ByName(name string) (*Curve, error) {
	spec, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
	return newCurve(name, spec)
}

func newCurve(name string, spec curveSpec) (*Curve, error) {
	p, err := parseHex(name, "p", spec.p)
	if err != nil {
		return nil, err
	}
	a, err := parseHex(name, "a", spec.a)
	if err != nil {
		return nil, err
	}
	b, err := parseHex(name, "b", spec.b)
	if err != nil {
		return nil, err
	}
	n, err := parseHex(name, "n", spec.n)
	if err != nil {
		return nil, err
	}
	h, err := parseHex(name, "h", spec.h)
	if err != nil {
		return nil, err
	}

	c := &Curve{
		Name:        name,
		P:           p,
		A:           a,
		B:           b,
		N:           n,
		H:           h,
		KeySizeBits: spec.keySizeBits,
	}

	g, err := c.DecodePoint(spec.g)
	if err != nil {
		return nil, fmt.Errorf("weierstrass: curve %s: generator: %w", name, err)
	}
	c.G = g

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func parseHex(curve, field, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("weierstrass: curve %s: malformed hex literal for %s", curve, field)
	}
	return v, nil
}

// validate checks the structural invariants of the parameter set: the
// discriminant 4a^3 + 27b^2 must be nonzero mod p and the generator must
// lie on the curve. Primality of P and the order of G are assumed correct
// for registered curves and not verified here.
func (c *Curve) validate() error {
	a3 := primefield.Mul(primefield.Square(c.A, c.P), c.A, c.P)
	disc := primefield.Add(
		primefield.Mul(big.NewInt(4), a3, c.P),
		primefield.Mul(big.NewInt(27), primefield.Square(c.B, c.P), c.P),
		c.P,
	)
	if disc.Sign() == 0 {
		return fmt.Errorf("weierstrass: curve %s is singular", c.Name)
	}

	if c.G.IsInfinity() || !c.IsOnCurve(c.G) {
		return fmt.Errorf("weierstrass: curve %s: generator is not on the curve", c.Name)
	}
	return nil
}

// IsOnCurve reports whether p satisfies y^2 = x^3 + a*x + b mod P. The
// point at infinity is on every curve.
func (c *Curve) IsOnCurve(p Point) bool {
	if p.IsInfinity() {
		return true
	}
	lhs := primefield.Square(p.y, c.P)
	rhs := primefield.Add(
		primefield.Mul(primefield.Square(p.x, c.P), p.x, c.P),
		primefield.Add(primefield.Mul(c.A, p.x, c.P), c.B, c.P),
		c.P,
	)
	return lhs.Cmp(rhs) == 0
}

// FieldBytes returns the byte length of the field prime, which is the
// fixed width each coordinate is padded to in the SEC1 encoding.
func (c *Curve) FieldBytes() int {
	return (c.P.BitLen() + 7) / 8
}
