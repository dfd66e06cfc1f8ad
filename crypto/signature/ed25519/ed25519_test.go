package ed25519

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEd25519Equal(t *testing.T) {
	require := require.New(t)

	pk1 := NewPublicKey("YgkEiVSR4SMQdfXw+ppuFYlqH0seutnCKk8KG8PyAx0=")
	pk2 := NewPublicKey("NcPzNW3YU2T+ugNUtUWtoQnRvbOL9dYSaBfbjHLP1pE=")
	pk3 := NewPublicKey("YgkEiVSR4SMQdfXw+ppuFYlqH0seutnCKk8KG8PyAx0=")

	require.True(pk1.Equal(pk1)) //nolint: gocritic
	require.True(pk1.Equal(&pk1))
	require.True(pk1.Equal(pk3))
	require.True(pk1.Equal(&pk3))
	require.True(pk3.Equal(pk1))

	require.False(pk1.Equal(pk2))
	require.False(pk1.Equal(&pk2))
	require.False(pk1.Equal((*PublicKey)(nil)))
}

func TestEd25519RFC8032(t *testing.T) {
	require := require.New(t)

	// RFC 8032, section 7.1, TEST 1.
	seed, _ := hex.DecodeString("9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")
	signer, err := NewSigner(seed)
	require.NoError(err, "NewSigner")

	pk, err := signer.Public().MarshalBinary()
	require.NoError(err)
	require.Equal("d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a", hex.EncodeToString(pk))
	require.Equal(seed, signer.UnsafeBytes())

	sig, err := signer.SignRaw(nil)
	require.NoError(err, "SignRaw")
	require.Equal(
		"e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b",
		hex.EncodeToString(sig),
	)
	require.True(signer.Public().(PublicKey).VerifyRaw(nil, sig))
}

func TestEd25519SignAndVerify(t *testing.T) {
	require := require.New(t)

	signer, err := NewSigner(make([]byte, 32))
	require.NoError(err)
	pk := signer.Public().(PublicKey)

	sig, err := signer.ContextSign([]byte("ctx1"), []byte("msg1"))
	require.NoError(err, "ContextSign")
	require.NoError(ValidateSignature(sig))
	require.True(pk.Verify([]byte("ctx1"), []byte("msg1"), sig))
	require.False(pk.Verify([]byte("ctx2"), []byte("msg1"), sig))
	require.False(pk.Verify([]byte("ctx1"), []byte("msg2"), sig))
	require.False(pk.VerifyRaw([]byte("msg1"), sig), "context signature must not verify as pure")

	digest := sha512.Sum512([]byte("prehashed"))
	sig, err = signer.SignPrehashed([]byte("ph ctx"), digest[:])
	require.NoError(err, "SignPrehashed")
	require.True(pk.VerifyPrehashed([]byte("ph ctx"), digest[:], sig))
	require.False(pk.VerifyPrehashed([]byte("other"), digest[:], sig))
	require.False(pk.VerifyPrehashed([]byte("ph ctx"), digest[:32], sig))

	_, err = signer.SignPrehashed(nil, digest[:32])
	require.Error(err, "short digest should be rejected")
}

func TestEd25519Malformed(t *testing.T) {
	require := require.New(t)

	_, err := NewSigner(make([]byte, 31))
	require.Error(err)

	var pk PublicKey
	require.Error(pk.UnmarshalBinary(make([]byte, 33)))
	require.Error(ValidateSignature(make([]byte, 63)))
}
