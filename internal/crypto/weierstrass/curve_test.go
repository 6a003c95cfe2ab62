package weierstrass

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByNameKnownCurves(t *testing.T) {
	for _, name := range Names() {
		c, err := ByName(name)
		require.NoError(t, err, "curve %s", name)
		assert.Equal(t, name, c.Name)
		assert.True(t, c.IsOnCurve(c.G), "generator of %s must lie on the curve", name)
		assert.Equal(t, big.NewInt(1), c.H)

		// Private keys drawn by bit length must always be below the
		// group order.
		assert.Less(t, c.KeySizeBits, c.N.BitLen(), "curve %s", name)
	}
}

func TestByNameUnknown(t *testing.T) {
	_, err := ByName("secp521r1")
	assert.ErrorIs(t, err, ErrUnknownCurve)
}

func TestGeneratorHasOrderN(t *testing.T) {
	for _, name := range Names() {
		c, err := ByName(name)
		require.NoError(t, err)

		nG, err := c.ScalarBaseMult(new(big.Int).Sub(c.N, big.NewInt(1)))
		require.NoError(t, err)

		// (N-1)*G + G = N*G = identity.
		sum, err := c.Add(nG, c.G)
		require.NoError(t, err)
		assert.True(t, sum.IsInfinity(), "N*G must be the identity on %s", name)
	}
}

func TestConstructionRejectsMalformedLiteral(t *testing.T) {
	spec := registry["secp192k1"]
	spec.n = "not-hex"
	_, err := newCurve("broken", spec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed hex literal")
}

func TestConstructionRejectsSingularCurve(t *testing.T) {
	// a = 0, b = 0 gives discriminant 0. (0, 0) satisfies y^2 = x^3, so
	// the generator decode succeeds and the singularity check fires.
	spec := registry["secp192k1"]
	spec.b = "0"
	spec.g = "04" + strings.Repeat("0", 96)
	_, err := newCurve("singular", spec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "singular")
}

func TestIsOnCurve(t *testing.T) {
	c, err := ByName("secp192r1")
	require.NoError(t, err)

	assert.True(t, c.IsOnCurve(Infinity()))
	assert.True(t, c.IsOnCurve(c.G))

	// Nudge the generator off the curve.
	bad := NewPoint(c.G.X(), new(big.Int).Add(c.G.Y(), big.NewInt(1)))
	assert.False(t, c.IsOnCurve(bad))
}

func TestFieldBytes(t *testing.T) {
	c192, err := ByName("secp192k1")
	require.NoError(t, err)
	assert.Equal(t, 24, c192.FieldBytes())

	c256, err := ByName("secp256k1")
	require.NoError(t, err)
	assert.Equal(t, 32, c256.FieldBytes())
}
