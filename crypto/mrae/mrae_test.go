package mrae

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oasisprotocol/curve25519-voi/primitives/x25519"
	mraeDeoxysii "github.com/oasisprotocol/oasis-core/go/common/crypto/mrae/deoxysii"
)

func testKeyPair(seed string) (pk, sk [32]byte) {
	sk = sha512.Sum512_256([]byte(seed))
	pk = ComputePublic(&sk)
	return
}

func TestComputePublic(t *testing.T) {
	require := require.New(t)

	// RFC 7748 section 6.1, Alice.
	raw, err := hex.DecodeString("77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a")
	require.NoError(err)
	var sk [32]byte
	copy(sk[:], raw)

	pk := ComputePublic(&sk)
	require.Equal("8520f0098930a754748b7ddcb43ef75a0dbf3a0d26381af4eba4a98eaa9b4e6a", hex.EncodeToString(pk[:]))
	require.Equal(pk, ComputePublic(&sk), "public key computation should be deterministic")
}

func TestDeriveSymmetricKey(t *testing.T) {
	require := require.New(t)

	pkA, skA := testKeyPair("mrae test: a")
	pkB, skB := testKeyPair("mrae test: b")

	kAB := DeriveSymmetricKey(&pkB, &skA)
	kBA := DeriveSymmetricKey(&pkA, &skB)
	require.Equal(kAB, kBA, "derived keys should be symmetric")

	pkC, _ := testKeyPair("mrae test: c")
	require.NotEqual(kAB, DeriveSymmetricKey(&pkC, &skA))
}

func TestSealOpen(t *testing.T) {
	require := require.New(t)

	key := make([]byte, KeySize)
	nonce := make([]byte, NonceSize)
	for i := range key {
		key[i] = byte(i)
	}

	sealed, err := Seal(key, nonce, []byte("hello"), nil)
	require.NoError(err, "Seal")
	require.Len(sealed, 5+TagSize)

	again, err := Seal(key, nonce, []byte("hello"), nil)
	require.NoError(err, "Seal")
	require.Equal(sealed, again, "sealing should be deterministic")

	pt, err := Open(key, nonce, sealed, nil)
	require.NoError(err, "Open")
	require.Equal([]byte("hello"), pt)

	ad := []byte("additional data")
	sealed, err = Seal(key, nonce, []byte("hello"), ad)
	require.NoError(err, "Seal")
	_, err = Open(key, nonce, sealed, []byte("other data"))
	require.ErrorIs(err, ErrOpen)

	for i := range sealed {
		tampered := append([]byte{}, sealed...)
		tampered[i] ^= 0x01
		pt, err = Open(key, nonce, tampered, ad)
		require.ErrorIs(err, ErrOpen, "bit flip at %d", i)
		require.Nil(pt)
	}

	_, err = Open(key, nonce, sealed[:TagSize-1], ad)
	require.ErrorIs(err, ErrOpen)

	empty, err := Seal(key, nonce, nil, nil)
	require.NoError(err)
	require.Len(empty, TagSize)
	pt, err = Open(key, nonce, empty, nil)
	require.NoError(err)
	require.Empty(pt)
}

func TestSealBadSizes(t *testing.T) {
	require := require.New(t)

	_, err := Seal(make([]byte, 16), make([]byte, NonceSize), nil, nil)
	require.Error(err)
	_, err = Seal(make([]byte, KeySize), make([]byte, 32), nil, nil)
	require.Error(err)
	_, err = Open(make([]byte, KeySize), make([]byte, 14), nil, nil)
	require.Error(err)
	require.NotErrorIs(err, ErrOpen)
}

func TestBoxCompatibility(t *testing.T) {
	require := require.New(t)

	pkA, skA := testKeyPair("mrae test: a")
	pkB, skB := testKeyPair("mrae test: b")
	nonce := make([]byte, NonceSize)
	msg := []byte("confidential call")

	key := DeriveSymmetricKey(&pkB, &skA)
	sealed, err := Seal(key[:], nonce, msg, nil)
	require.NoError(err, "Seal")

	boxed := mraeDeoxysii.Box.Seal(nil, nonce, msg, nil, (*x25519.PublicKey)(&pkB), (*x25519.PrivateKey)(&skA))
	require.Equal(boxed, sealed, "sealing with a derived key should match the MRAE box")

	pt, err := mraeDeoxysii.Box.Open(nil, nonce, sealed, nil, (*x25519.PublicKey)(&pkA), (*x25519.PrivateKey)(&skB))
	require.NoError(err, "Box.Open")
	require.Equal(msg, pt)
}

func TestDeriveSymmetricKeyVector(t *testing.T) {
	require := require.New(t)

	// RFC 7748 section 6.1 key pairs.
	alicePriv, err := hex.DecodeString("77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a")
	require.NoError(err)
	bobPub, err := hex.DecodeString("de9edb7d7b7dc1b4d35b61c2ece435373f8343c85b78674dadfc7e146f882b4f")
	require.NoError(err)
	var sk, pk [32]byte
	copy(sk[:], alicePriv)
	copy(pk[:], bobPub)

	var expected [KeySize]byte
	mraeDeoxysii.Box.DeriveSymmetricKey(expected[:], (*x25519.PublicKey)(&pk), (*x25519.PrivateKey)(&sk))

	key := DeriveSymmetricKey(&pk, &sk)
	require.Equal(expected, key)
	require.NotEqual([KeySize]byte{}, key)

	// Low-order public keys are not rejected.
	var zero [32]byte
	require.Equal(DeriveSymmetricKey(&zero, &sk), DeriveSymmetricKey(&zero, &pk))
}
