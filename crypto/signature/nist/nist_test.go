package nist

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ZigaMr/sapphire-precompiles/crypto/signature"
)

func mustDecode(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestP256Rfc6979(t *testing.T) {
	require := require.New(t)

	// RFC 6979 A.2.5, SHA-256, message "sample".
	s, err := NewSigner(P256, mustDecode(t, "c9afa9d845ba75166b5c215767b1d6934e50c3db36e89b127b8a622b120f6721"))
	require.NoError(err, "NewSigner")

	pk, err := s.Public().MarshalBinary()
	require.NoError(err)
	require.Equal("0360fed4ba255a9d31c961eb74c6356d68c049b8923b61fa6ce669622e60f29fb6", hex.EncodeToString(pk))

	digest := sha256.Sum256([]byte("sample"))
	sig, err := s.ContextSign(nil, digest[:])
	require.NoError(err, "ContextSign")
	require.Equal(
		"3046"+
			"022100efd48b2aacb6a8fd1140dd9cd45e81d69d2c877b56aaf991c34d0ea84eaf3716"+
			"022100f7cb1c942d657c41d436c7a1b6e29f65f3e900dbb9aff4064dc4ab2f843acda8",
		hex.EncodeToString(sig),
	)
	require.NoError(ValidateSignature(sig))
	require.True(s.Public().Verify(nil, digest[:], sig))

	other := sha256.Sum256([]byte("test"))
	require.False(s.Public().Verify(nil, other[:], sig))
	require.False(s.Public().Verify([]byte("ctx"), digest[:], sig))
}

func TestP384SignAndVerify(t *testing.T) {
	require := require.New(t)

	scalar := make([]byte, 48)
	scalar[47] = 7
	s, err := NewSigner(P384, scalar)
	require.NoError(err, "NewSigner")
	require.Equal(scalar, s.UnsafeBytes())

	pkBytes, err := s.Public().MarshalBinary()
	require.NoError(err)
	require.Len(pkBytes, 49)

	pk, err := NewPublicKey(P384, pkBytes)
	require.NoError(err, "NewPublicKey")
	require.True(pk.Equal(s.Public()))

	digest := sha512.Sum384([]byte("message"))
	sig, err := s.SignDigest(digest[:])
	require.NoError(err, "SignDigest")
	sig2, err := s.SignDigest(digest[:])
	require.NoError(err, "SignDigest")
	require.Equal(sig, sig2, "signatures should be deterministic")
	require.True(pk.Verify(nil, digest[:], sig))

	_, err = s.SignDigest(digest[:32])
	require.ErrorIs(err, signature.ErrInvalidArgument)
	_, err = s.ContextSign([]byte("ctx"), digest[:])
	require.ErrorIs(err, signature.ErrInvalidArgument)
}

func TestNewSignerInvalid(t *testing.T) {
	require := require.New(t)

	_, err := NewSigner(P256, make([]byte, 32))
	require.ErrorIs(err, signature.ErrMalformedPrivateKey, "zero scalar")
	_, err = NewSigner(P256, make([]byte, 48))
	require.ErrorIs(err, signature.ErrMalformedPrivateKey, "wrong size")

	order := mustDecode(t, "ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551")
	_, err = NewSigner(P256, order)
	require.ErrorIs(err, signature.ErrMalformedPrivateKey, "scalar equal to group order")
}

func TestNewPublicKey(t *testing.T) {
	require := require.New(t)

	_, err := NewPublicKey(P256, []byte{0x02})
	require.ErrorIs(err, signature.ErrMalformedPublicKey)
	_, err = NewPublicKey(P256, append([]byte{0x05}, make([]byte, 32)...))
	require.ErrorIs(err, signature.ErrMalformedPublicKey)

	// Uncompressed encodings are accepted and re-encoded compressed.
	uncompressed := mustDecode(t, "04"+
		"60fed4ba255a9d31c961eb74c6356d68c049b8923b61fa6ce669622e60f29fb6"+
		"7903fe1008b8bc99a41ae9e95628bc64f2f1b20c2d7e9f5177a3c294d4462299")
	pk, err := NewPublicKey(P256, uncompressed)
	require.NoError(err)
	compressed, err := pk.MarshalBinary()
	require.NoError(err)
	require.Equal("0360fed4ba255a9d31c961eb74c6356d68c049b8923b61fa6ce669622e60f29fb6", hex.EncodeToString(compressed))

	pk384, err := NewPublicKey(P384, append([]byte{0x02}, make([]byte, 48)...))
	if err == nil {
		require.False(pk384.Equal(pk), "curves differ")
	}
}

func TestValidateSignature(t *testing.T) {
	require := require.New(t)

	require.ErrorIs(ValidateSignature(nil), signature.ErrMalformedSignature)
	require.ErrorIs(ValidateSignature(make([]byte, 64)), signature.ErrMalformedSignature)
	require.ErrorIs(ValidateSignature(mustDecode(t, "3006020101020101ff")), signature.ErrMalformedSignature, "trailing data")
	require.ErrorIs(ValidateSignature(mustDecode(t, "3006020100020101")), signature.ErrMalformedSignature, "zero r")
	require.NoError(ValidateSignature(mustDecode(t, "3006020101020101")))
}
