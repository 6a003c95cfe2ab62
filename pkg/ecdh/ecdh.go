// Package ecdh implements Elliptic Curve Diffie-Hellman key exchange over
// the named short-Weierstrass curves in the weierstrass registry.
//
// A party generates a KeyPair, publishes the encoded public key, and
// derives the shared secret from the peer's encoded public key. The
// secret is the full SEC1 encoding of the derived point; both parties
// obtain the same value because scalar multiplication commutes:
// dA*(dB*G) = dB*(dA*G).
package ecdh

import (
	"fmt"
	"io"
	"math/big"

	"github.com/smallyu/go-ecdh/internal/crypto/weierstrass"
)

// KeyPair is a private scalar together with the public point Q = d*G and
// the curve both live on. A KeyPair is immutable after generation.
type KeyPair struct {
	Private *big.Int          // private scalar d
	Public  weierstrass.Point // public point Q = d*G

	// PublicHex is the SEC1 uncompressed encoding of Public, the form a
	// peer consumes.
	PublicHex string

	Curve *weierstrass.Curve
}

// GenerateKeyPair draws a private scalar from random and computes the
// matching public point on curve.
//
// The scalar is read as curve.KeySizeBits/8 big-endian bytes. KeySizeBits
// is below the bit length of the group order for every registered curve,
// so the scalar is always already reduced; a zero draw is redrawn. A
// short or failed read reports ErrEntropy.
func GenerateKeyPair(random io.Reader, curve *weierstrass.Curve) (*KeyPair, error) {
	buf := make([]byte, curve.KeySizeBits/8)

	d := new(big.Int)
	for {
		if _, err := io.ReadFull(random, buf); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEntropy, err)
		}
		d.SetBytes(buf)
		if d.Sign() != 0 {
			break
		}
	}

	public, err := curve.ScalarBaseMult(d)
	if err != nil {
		return nil, err
	}

	encoded, err := curve.EncodePoint(public)
	if err != nil {
		return nil, err
	}

	return &KeyPair{
		Private:   d,
		Public:    public,
		PublicHex: encoded,
		Curve:     curve,
	}, nil
}

// SharedSecret derives the shared secret from the peer's encoded public
// key: it decodes the peer point, multiplies it by the local private
// scalar, and returns the SEC1 encoding of the result.
func (kp *KeyPair) SharedSecret(peerPublic string) (string, error) {
	peer, err := kp.Curve.DecodePoint(peerPublic)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPeerKey, err)
	}

	secret, err := kp.Curve.ScalarMult(peer, kp.Private)
	if err != nil {
		return "", err
	}

	return kp.Curve.EncodePoint(secret)
}
