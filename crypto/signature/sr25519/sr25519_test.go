package sr25519

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ZigaMr/sapphire-precompiles/crypto/signature"
)

func TestSr25519Equal(t *testing.T) {
	require := require.New(t)

	pk1 := NewPublicKey("ljm9ZwdAldhlyWM2B4C+3gQZis+ceaxnt6QA4rOcP0k=")
	pk2 := NewPublicKey("0MHrNhjVTOFWmsOgpWcC3L8jIX3ZatKr0/yxMPtwckc=")
	pk3 := NewPublicKey("ljm9ZwdAldhlyWM2B4C+3gQZis+ceaxnt6QA4rOcP0k=")

	require.True(pk1.Equal(pk1)) //nolint: gocritic
	require.True(pk1.Equal(&pk1))
	require.True(pk1.Equal(pk3))
	require.True(pk1.Equal(&pk3))
	require.True(pk3.Equal(pk3)) //nolint: gocritic
	require.True(pk3.Equal(&pk3))
	require.True(pk3.Equal(pk1))
	require.True(pk3.Equal(&pk1))

	require.False(pk1.Equal(pk2))
	require.False(pk1.Equal(&pk2))
}

func TestSr25519SignAndVerify(t *testing.T) {
	require := require.New(t)

	seed := make([]byte, 32)
	seed[0] = 0x42
	s, err := NewSignerFromSeed(seed)
	require.NoError(err, "NewSignerFromSeed")

	s2, err := NewSignerFromSeed(seed)
	require.NoError(err, "NewSignerFromSeed")
	require.True(s.Public().Equal(s2.Public()), "seed expansion should be deterministic")

	ctx := []byte("sr25519 ctx")
	msg := []byte("sr25519 msg")
	sig, err := s.ContextSign(ctx, msg)
	require.NoError(err, "ContextSign")
	require.NoError(ValidateSignature(sig))

	pk := s.Public()
	require.True(pk.Verify(ctx, msg, sig))
	require.False(pk.Verify([]byte("other ctx"), msg, sig))
	require.False(pk.Verify(ctx, []byte("other msg"), sig))

	tampered := append([]byte{}, sig...)
	tampered[0] ^= 0x01
	require.False(pk.Verify(ctx, msg, tampered))
	require.False(pk.Verify(ctx, msg, sig[:63]))
	require.ErrorIs(ValidateSignature(sig[:63]), signature.ErrMalformedSignature)

	// The serialized secret key round trips into an equivalent signer.
	raw := s.UnsafeBytes()
	require.Len(raw, 64)
	s3, err := NewSigner(raw)
	require.NoError(err, "NewSigner")
	require.True(pk.Equal(s3.Public()))
	sig3, err := s3.ContextSign(ctx, msg)
	require.NoError(err, "ContextSign")
	require.True(pk.Verify(ctx, msg, sig3))

	_, err = NewSignerFromSeed(seed[:31])
	require.ErrorIs(err, signature.ErrMalformedPrivateKey)
	_, err = NewSigner(raw[:63])
	require.ErrorIs(err, signature.ErrMalformedPrivateKey)

	var upk PublicKey
	require.ErrorIs(upk.UnmarshalBinary([]byte("short")), signature.ErrMalformedPublicKey)
	require.False(upk.Verify(ctx, msg, sig), "empty public key should not verify")
}
