// Package primefield implements modular arithmetic over a prime modulus.
//
// Every operation expects its operands to already be reduced into [0, p)
// and guarantees the result is reduced into [0, p). The modulus p must be
// prime for Inverse and Div to be total on nonzero inputs.
package primefield

import (
	"errors"
	"math/big"
)

var one = big.NewInt(1)

// ErrNoInverse is returned when the requested modular inverse does not
// exist, i.e. gcd(b, p) != 1. With a prime modulus this only happens for
// b = 0 (or a multiple of p, which a reduced operand never is).
var ErrNoInverse = errors.New("primefield: no modular inverse")

// Add returns (a + b) mod p.
func Add(a, b, p *big.Int) *big.Int {
	res := new(big.Int).Add(a, b)
	if res.Cmp(p) >= 0 {
		res.Sub(res, p)
	}
	return res
}

// Sub returns (a - b) mod p.
func Sub(a, b, p *big.Int) *big.Int {
	res := new(big.Int).Sub(a, b)
	if res.Sign() < 0 {
		res.Add(res, p)
	}
	return res
}

// Mul returns (a * b) mod p.
//
// This uses an exact big-integer multiply followed by a single reduction.
func Mul(a, b, p *big.Int) *big.Int {
	res := new(big.Int).Mul(a, b)
	return res.Mod(res, p)
}

// Square returns a^2 mod p.
func Square(a, p *big.Int) *big.Int {
	return Mul(a, a, p)
}

// Inverse returns b^-1 mod p, computed with the extended Euclidean
// algorithm. It returns ErrNoInverse when gcd(b, p) != 1, which includes
// b = 0. The computation is independent of any dividend; callers that
// divide should call Inverse once and multiply.
func Inverse(b, p *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, ErrNoInverse
	}

	// Invariant: old_s*b + old_t*p = old_r throughout the loop.
	oldR, r := new(big.Int).Set(b), new(big.Int).Set(p)
	oldS, s := big.NewInt(1), big.NewInt(0)

	for r.Sign() != 0 {
		q, rem := new(big.Int).QuoRem(oldR, r, new(big.Int))
		oldR, r = r, rem

		tmp := new(big.Int).Mul(q, s)
		oldS, s = s, tmp.Sub(oldS, tmp)
	}

	// gcd(b, p) ended up in oldR.
	if oldR.Cmp(one) != 0 {
		return nil, ErrNoInverse
	}

	if oldS.Sign() < 0 {
		oldS.Add(oldS, p)
	}
	return oldS, nil
}

// Div returns a * b^-1 mod p, or ErrNoInverse when b has no inverse mod p.
func Div(a, b, p *big.Int) (*big.Int, error) {
	inv, err := Inverse(b, p)
	if err != nil {
		return nil, err
	}
	return Mul(a, inv, p), nil
}
