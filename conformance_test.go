package kzg

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	gnarkkzg "github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"
	"github.com/stretchr/testify/require"
)

// TestGnarkConformance checks that commitments and opening proofs match
// gnark-crypto's BLS12-381 KZG for the same toxic waste
func TestGnarkConformance(t *testing.T) {
	const (
		n     = 8
		alpha = 12345678
	)

	curve := NewBLS12381Curve()

	srs, err := gnarkkzg.NewSRS(n, big.NewInt(alpha))
	require.NoError(t, err)

	pp, err := SetupFromSecret(curve, n, ScalarFromInt64(curve, alpha))
	require.NoError(t, err)

	t.Run("Parameters", func(t *testing.T) {
		for i, p := range pp.G1Powers() {
			want := srs.Pk.G1[i].Bytes()
			require.Equal(t, want[:], p.Bytes(), "G1 power %d", i)
		}
		for i := 0; i < 2; i++ {
			want := srs.Vk.G2[i].Bytes()
			require.Equal(t, want[:], pp.G2Powers()[i].Bytes(), "G2 power %d", i)
		}
	})

	coeffs := make([]fr.Element, n)
	scalars := make([]Scalar, n)
	for i := range coeffs {
		_, err := coeffs[i].SetRandom()
		require.NoError(t, err)

		b := coeffs[i].Bytes()
		scalars[i], err = curve.ScalarFromBytes(b[:])
		require.NoError(t, err)
	}
	poly, err := NewPolynomial(curve, scalars)
	require.NoError(t, err)

	digest, err := gnarkkzg.Commit(append([]fr.Element(nil), coeffs...), srs.Pk)
	require.NoError(t, err)

	commitment, err := Commit(pp, poly)
	require.NoError(t, err)

	t.Run("Commitment", func(t *testing.T) {
		want := digest.Bytes()
		require.Equal(t, want[:], commitment.Bytes())
	})

	t.Run("Opening", func(t *testing.T) {
		var point fr.Element
		point.SetUint64(424242)

		proof, err := gnarkkzg.Open(append([]fr.Element(nil), coeffs...), point, srs.Pk)
		require.NoError(t, err)
		require.NoError(t, gnarkkzg.Verify(&digest, &proof, point, srs.Vk))

		witness, err := CreateWitness(pp, poly, curve.ScalarFromUint64(424242))
		require.NoError(t, err)

		wantH := proof.H.Bytes()
		require.Equal(t, wantH[:], witness.Point.Bytes())

		wantY := proof.ClaimedValue.Bytes()
		require.Equal(t, wantY[:], witness.Y.Bytes())

		ok, err := Verify(pp, witness, commitment)
		require.NoError(t, err)
		require.True(t, ok)
	})
}
