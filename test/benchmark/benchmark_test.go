package benchmark

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/smallyu/go-ecdh/internal/crypto/primefield"
	"github.com/smallyu/go-ecdh/internal/crypto/weierstrass"
	"github.com/smallyu/go-ecdh/pkg/ecdh"
)

func mustCurve(b *testing.B, name string) *weierstrass.Curve {
	b.Helper()
	c, err := weierstrass.ByName(name)
	if err != nil {
		b.Fatal(err)
	}
	return c
}

func benchmarkScalarMult(b *testing.B, name string) {
	c := mustCurve(b, name)
	k, err := rand.Int(rand.Reader, c.N)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := c.ScalarBaseMult(k); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScalarMultSecp192k1(b *testing.B) { benchmarkScalarMult(b, "secp192k1") }
func BenchmarkScalarMultSecp192r1(b *testing.B) { benchmarkScalarMult(b, "secp192r1") }
func BenchmarkScalarMultSecp256k1(b *testing.B) { benchmarkScalarMult(b, "secp256k1") }
func BenchmarkScalarMultSecp256r1(b *testing.B) { benchmarkScalarMult(b, "secp256r1") }

func BenchmarkGenerateKeyPair(b *testing.B) {
	c := mustCurve(b, "secp192r1")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := ecdh.GenerateKeyPair(rand.Reader, c); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSharedSecret(b *testing.B) {
	c := mustCurve(b, "secp192r1")

	alice, err := ecdh.GenerateKeyPair(rand.Reader, c)
	if err != nil {
		b.Fatal(err)
	}
	bob, err := ecdh.GenerateKeyPair(rand.Reader, c)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := alice.SharedSecret(bob.PublicHex); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFieldInverse(b *testing.B) {
	c := mustCurve(b, "secp256k1")
	v, err := rand.Int(rand.Reader, c.P)
	if err != nil {
		b.Fatal(err)
	}
	if v.Sign() == 0 {
		v = big.NewInt(1)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := primefield.Inverse(v, c.P); err != nil {
			b.Fatal(err)
		}
	}
}
