package kzg

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupParameterShape(t *testing.T) {
	for _, curve := range allCurves() {
		t.Run(curve.Name(), func(t *testing.T) {
			for _, n := range []int{1, 2, 5, 17} {
				pp, err := Setup(curve, n, nil)
				require.NoError(t, err)
				require.NoError(t, pp.Validate())

				require.Equal(t, n, pp.N())
				require.Len(t, pp.G1Powers(), n)
				require.Len(t, pp.G2Powers(), n)
				require.True(t, pp.G1Powers()[0].Equal(curve.G1Generator()))
				require.True(t, pp.G2Powers()[0].Equal(curve.G2Generator()))
			}
		})
	}
}

func TestSetupRejectsBadInput(t *testing.T) {
	curve := NewBLS12381Curve()

	for _, n := range []int{0, -1} {
		_, err := Setup(curve, n, nil)
		require.ErrorIs(t, err, ErrInvalidParameters)
	}

	_, err := Setup(nil, 4, nil)
	require.ErrorIs(t, err, ErrInvalidCurve)

	_, err = SetupFromSecret(curve, 4, nil)
	require.ErrorIs(t, err, ErrInvalidParameters)
}

func TestSetupRandomnessFailure(t *testing.T) {
	curve := NewBN254Curve()

	// Too few bytes for one scalar
	_, err := Setup(curve, 4, bytes.NewReader([]byte{1, 2, 3}))
	require.ErrorIs(t, err, ErrRandomnessGeneration)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.True(t, IsErrorSeverity(err, ErrorSeverityCritical))
	require.False(t, IsRecoverableError(err))
}

func TestSetupFromSecret(t *testing.T) {
	for _, curve := range allCurves() {
		t.Run(curve.Name(), func(t *testing.T) {
			secret := ScalarFromInt64(curve, 1234567)
			pp, err := SetupFromSecret(curve, 4, secret)
			require.NoError(t, err)

			// the caller's secret is left intact
			require.True(t, secret.Equal(ScalarFromInt64(curve, 1234567)))

			s := curve.ScalarOne()
			for i := 0; i < 4; i++ {
				g1, err := pp.G1Power(i)
				require.NoError(t, err)
				g2, err := pp.G2Power(i)
				require.NoError(t, err)

				require.True(t, g1.Equal(curve.G1Generator().Mul(s)), "G1 power %d", i)
				require.True(t, g2.Equal(curve.G2Generator().Mul(s)), "G2 power %d", i)
				s = s.Mul(secret)
			}

			_, err = pp.G1Power(4)
			require.ErrorIs(t, err, ErrInvalidParameters)
			_, err = pp.G2Power(-1)
			require.ErrorIs(t, err, ErrInvalidParameters)
		})
	}
}

func TestDeterministicSetup(t *testing.T) {
	for _, curve := range allCurves() {
		t.Run(curve.Name(), func(t *testing.T) {
			digests := make(map[HashAlgorithm][32]byte)
			for _, alg := range []HashAlgorithm{SHA256_HKDF, BLAKE2B, SHAKE256} {
				first, err := NewDeterministicSource([]byte("fixture"), alg)
				require.NoError(t, err)
				second, err := NewDeterministicSource([]byte("fixture"), alg)
				require.NoError(t, err)

				pp1, err := Setup(curve, 4, first)
				require.NoError(t, err)
				pp2, err := Setup(curve, 4, second)
				require.NoError(t, err)

				require.Equal(t, pp1.Digest(), pp2.Digest(), "%s setup not reproducible", alg)
				digests[alg] = pp1.Digest()
			}

			require.NotEqual(t, digests[SHA256_HKDF], digests[BLAKE2B])
			require.NotEqual(t, digests[BLAKE2B], digests[SHAKE256])
			require.NotEqual(t, digests[SHA256_HKDF], digests[SHAKE256])
		})
	}
}

func TestParamsAccessorsReturnCopies(t *testing.T) {
	curve := NewBLS12381Curve()
	pp := seededParams(t, curve, 3)
	before := pp.Digest()

	powers := pp.G1Powers()
	powers[1] = curve.G1Identity()
	g2 := pp.G2Powers()
	g2[2] = curve.G2Identity()

	require.Equal(t, before, pp.Digest())
	require.NoError(t, pp.Validate())
}

func TestParamsDigest(t *testing.T) {
	curve := NewBLS12381Curve()

	a, err := SetupFromSecret(curve, 4, ScalarFromInt64(curve, 5))
	require.NoError(t, err)
	b, err := SetupFromSecret(curve, 4, ScalarFromInt64(curve, 5))
	require.NoError(t, err)
	c, err := SetupFromSecret(curve, 4, ScalarFromInt64(curve, 6))
	require.NoError(t, err)
	d, err := SetupFromSecret(curve, 5, ScalarFromInt64(curve, 5))
	require.NoError(t, err)

	require.Equal(t, a.Digest(), b.Digest())
	require.NotEqual(t, a.Digest(), c.Digest())
	require.NotEqual(t, a.Digest(), d.Digest())
	require.Contains(t, a.String(), "bls12-381")
}

func TestNewPublicParams(t *testing.T) {
	curve := NewBN254Curve()
	source := seededParams(t, curve, 4)

	t.Run("WrapsTranscript", func(t *testing.T) {
		pp, err := NewPublicParams(curve, source.G1Generator(), source.G2Generator(), source.G1Powers(), source.G2Powers())
		require.NoError(t, err)
		require.Equal(t, source.Digest(), pp.Digest())

		poly := ints(t, curve, 1, 2, 3, 4)
		c, err := Commit(pp, poly)
		require.NoError(t, err)
		w, err := CreateWitness(source, poly, ScalarFromInt64(curve, 8))
		require.NoError(t, err)
		ok, err := Verify(pp, w, c)
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("RejectsUnevenLadders", func(t *testing.T) {
		_, err := NewPublicParams(curve, source.G1Generator(), source.G2Generator(), source.G1Powers(), source.G2Powers()[:3])
		require.ErrorIs(t, err, ErrInvalidParameters)
	})

	t.Run("RejectsEmptyLadders", func(t *testing.T) {
		_, err := NewPublicParams(curve, source.G1Generator(), source.G2Generator(), nil, nil)
		require.ErrorIs(t, err, ErrInvalidParameters)
	})

	t.Run("RejectsSwappedGroups", func(t *testing.T) {
		g1 := source.G1Powers()
		g1[2] = source.G2Powers()[2]
		_, err := NewPublicParams(curve, source.G1Generator(), source.G2Generator(), g1, source.G2Powers())
		require.ErrorIs(t, err, ErrInvalidParameters)
	})

	t.Run("RejectsWrongStart", func(t *testing.T) {
		g1 := source.G1Powers()
		g1[0] = g1[1]
		_, err := NewPublicParams(curve, source.G1Generator(), source.G2Generator(), g1, source.G2Powers())
		require.ErrorIs(t, err, ErrInvalidParameters)
	})

	t.Run("NilCurve", func(t *testing.T) {
		_, err := NewPublicParams(nil, source.G1Generator(), source.G2Generator(), source.G1Powers(), source.G2Powers())
		require.True(t, errors.Is(err, ErrInvalidParameters))
	})
}

func TestParamsValidator(t *testing.T) {
	levels := map[string]SecurityLevel{
		string(BLS12381):   SecurityLevelHigh,
		string(BN254):      SecurityLevelMedium,
		string(BN256Kyber): SecurityLevelMedium,
	}

	for _, curve := range allCurves() {
		t.Run(curve.Name(), func(t *testing.T) {
			pp := seededParams(t, curve, 6)
			validator := &ParamsValidator{}

			result := validator.ValidatePublicParams(pp)
			require.True(t, result.Valid, "errors: %v", result.Errors)
			require.Equal(t, levels[curve.Name()], result.SecurityLevel)

			// Replace one G1 power with an unrelated point
			g1 := pp.G1Powers()
			g1[3] = g1[3].Add(curve.G1Generator())
			broken, err := NewPublicParams(curve, pp.G1Generator(), pp.G2Generator(), g1, pp.G2Powers())
			require.NoError(t, err)
			result = validator.ValidatePublicParams(broken)
			require.False(t, result.Valid)
			require.Equal(t, SecurityLevelLow, result.SecurityLevel)

			// G2 ladder from a different secret
			other, err := SetupFromSecret(curve, 6, ScalarFromInt64(curve, 77))
			require.NoError(t, err)
			g2 := other.G2Powers()
			g2[1] = pp.G2Powers()[1]
			mixed, err := NewPublicParams(curve, pp.G1Generator(), pp.G2Generator(), pp.G1Powers(), g2)
			require.NoError(t, err)
			require.False(t, validator.ValidatePublicParams(mixed).Valid)

			trivial, err := SetupFromSecret(curve, 3, curve.ScalarOne())
			require.NoError(t, err)
			require.False(t, validator.ValidatePublicParams(trivial).Valid)
		})
	}
}

func TestParamsValidatorSampling(t *testing.T) {
	curve := NewBLS12381Curve()
	pp := seededParams(t, curve, 10)

	result := (&ParamsValidator{SampleSize: 2}).ValidatePublicParams(pp)
	require.True(t, result.Valid)
	require.NotEmpty(t, result.Warnings)

	short := seededParams(t, curve, 1)
	result = NewDefaultParamsValidator().ValidatePublicParams(short)
	require.True(t, result.Valid)
	require.NotEmpty(t, result.Warnings)
}
