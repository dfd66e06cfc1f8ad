package memory_test

import (
	"crypto/sha256"
	"crypto/sha512"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/ZigaMr/sapphire-precompiles/crypto/signature"
	"github.com/ZigaMr/sapphire-precompiles/crypto/signature/memory"
	sdkTesting "github.com/ZigaMr/sapphire-precompiles/testing"
)

func seedFor(t signature.Type) []byte {
	if t == signature.Secp384r1PrehashedSha384 {
		return sdkTesting.Ivan.Seed
	}
	return sdkTesting.Alice.Seed
}

func otherSeedFor(t signature.Type) []byte {
	if t == signature.Secp384r1PrehashedSha384 {
		h := sha512.Sum384([]byte("other seed"))
		return h[:]
	}
	return sdkTesting.Bob.Seed
}

// messageFor returns a context and message acceptable for the signature type.
func messageFor(t signature.Type, data string) ([]byte, []byte) {
	switch t {
	case signature.Ed25519PrehashedSha512:
		h := sha512.Sum512([]byte(data))
		return []byte("ph context"), h[:]
	case signature.Secp256k1PrehashedKeccak256:
		h := sha3.NewLegacyKeccak256()
		h.Write([]byte(data))
		return nil, h.Sum(nil)
	case signature.Secp256k1PrehashedSha256, signature.Secp256r1PrehashedSha256:
		h := sha256.Sum256([]byte(data))
		return nil, h[:]
	case signature.Secp384r1PrehashedSha384:
		h := sha512.Sum384([]byte(data))
		return nil, h[:]
	case signature.Ed25519Pure:
		return nil, []byte(data)
	default:
		return []byte("test context"), []byte(data)
	}
}

func TestSignAndVerify(t *testing.T) {
	for _, st := range signature.Types() {
		t.Run(st.String(), func(t *testing.T) {
			require := require.New(t)

			signer, err := memory.NewFromSeed(st, seedFor(st))
			require.NoError(err, "NewFromSeed")
			again, err := memory.NewFromSeed(st, seedFor(st))
			require.NoError(err, "NewFromSeed")
			require.Equal(signer.UnsafeBytes(), again.UnsafeBytes(), "derivation should be deterministic")

			pk, err := signer.Public().MarshalBinary()
			require.NoError(err)

			ctx, msg := messageFor(st, "hello")
			sig, err := memory.Sign(st, signer.UnsafeBytes(), ctx, msg)
			require.NoError(err, "Sign")

			ok, err := memory.Verify(st, pk, ctx, msg, sig)
			require.NoError(err, "Verify")
			require.True(ok, "signature should verify")

			_, otherMsg := messageFor(st, "olleh")
			ok, err = memory.Verify(st, pk, ctx, otherMsg, sig)
			require.NoError(err, "Verify")
			require.False(ok, "signature over a different message should not verify")

			ok, err = memory.Verify(st, pk, append(ctx, 'x'), msg, sig)
			require.NoError(err, "Verify")
			require.False(ok, "signature under a different context should not verify")

			other, err := memory.NewFromSeed(st, otherSeedFor(st))
			require.NoError(err)
			otherPk, err := other.Public().MarshalBinary()
			require.NoError(err)
			ok, err = memory.Verify(st, otherPk, ctx, msg, sig)
			require.NoError(err, "Verify")
			require.False(ok, "signature should not verify under another key")
		})
	}
}

func TestSignInvalidArguments(t *testing.T) {
	require := require.New(t)

	ed := sdkTesting.Alice.SecretKey
	_, err := memory.Sign(signature.Ed25519Pure, ed, []byte("ctx"), []byte("msg"))
	require.ErrorIs(err, signature.ErrInvalidArgument)
	_, err = memory.Sign(signature.Ed25519PrehashedSha512, ed, nil, []byte("not a digest"))
	require.ErrorIs(err, signature.ErrInvalidArgument)
	_, err = memory.Sign(signature.Ed25519PrehashedSha512, ed, make([]byte, 256), make([]byte, 64))
	require.ErrorIs(err, signature.ErrInvalidArgument)

	k1 := sdkTesting.Dave.SecretKey
	_, err = memory.Sign(signature.Secp256k1PrehashedSha256, k1, []byte("ctx"), make([]byte, 32))
	require.ErrorIs(err, signature.ErrInvalidArgument)
	_, err = memory.Sign(signature.Secp256k1PrehashedKeccak256, k1, nil, make([]byte, 31))
	require.ErrorIs(err, signature.ErrInvalidArgument)

	_, err = memory.Sign(signature.Secp256r1PrehashedSha256, sdkTesting.Heidi.SecretKey, []byte("ctx"), make([]byte, 32))
	require.ErrorIs(err, signature.ErrInvalidArgument)
	_, err = memory.Sign(signature.Secp384r1PrehashedSha384, sdkTesting.Ivan.SecretKey, nil, make([]byte, 32))
	require.ErrorIs(err, signature.ErrInvalidArgument)

	_, err = memory.Sign(signature.Ed25519Oasis, ed[:31], nil, nil)
	require.ErrorIs(err, signature.ErrMalformedPrivateKey)
	_, err = memory.Sign(signature.Sr25519, sdkTesting.Frank.SecretKey[:32], nil, nil)
	require.ErrorIs(err, signature.ErrMalformedPrivateKey)
	_, err = memory.Sign(signature.Type(9), ed, nil, nil)
	require.ErrorIs(err, signature.ErrUnsupportedType)
}

func TestVerifyMalformed(t *testing.T) {
	require := require.New(t)

	for _, tk := range []sdkTesting.TestKey{sdkTesting.Alice, sdkTesting.Dave, sdkTesting.Frank, sdkTesting.Heidi, sdkTesting.Ivan} {
		ctx, msg := messageFor(tk.Type, "hello")
		sig, err := memory.Sign(tk.Type, tk.SecretKey, ctx, msg)
		require.NoError(err, "Sign %s", tk.Type)

		_, err = memory.Verify(tk.Type, tk.PublicKey[1:], ctx, msg, sig)
		require.ErrorIs(err, signature.ErrMalformedPublicKey, "truncated public key %s", tk.Type)

		_, err = memory.Verify(tk.Type, tk.PublicKey, ctx, msg, sig[:len(sig)-1])
		require.ErrorIs(err, signature.ErrMalformedSignature, "truncated signature %s", tk.Type)
	}

	// Digest schemes reject a context when verifying instead of failing with an error.
	ctx, msg := messageFor(signature.Secp256k1PrehashedSha256, "hello")
	sig, err := memory.Sign(signature.Secp256k1PrehashedSha256, sdkTesting.Dave.SecretKey, ctx, msg)
	require.NoError(err)
	ok, err := memory.Verify(signature.Secp256k1PrehashedSha256, sdkTesting.Dave.PublicKey, []byte("ctx"), msg, sig)
	require.NoError(err)
	require.False(ok)
}

func TestNewFromSeedPublicKeySizes(t *testing.T) {
	require := require.New(t)

	require.Len(sdkTesting.Alice.PublicKey, 32)
	require.Len(sdkTesting.Dave.PublicKey, 33)
	require.Len(sdkTesting.Frank.PublicKey, 32)
	require.Len(sdkTesting.Frank.SecretKey, 64)
	require.Len(sdkTesting.Heidi.PublicKey, 33)
	require.Len(sdkTesting.Ivan.PublicKey, 49)
	require.Len(sdkTesting.Ivan.SecretKey, 48)
	require.NotEqual(make([]byte, 20), sdkTesting.Dave.EthAddress[:])
}

func TestPrepareMessage(t *testing.T) {
	require := require.New(t)

	for _, st := range signature.Types() {
		wantCtx, wantMsg := messageFor(st, "data")
		ctx, msg := memory.PrepareMessage(st, []byte("test context"), []byte("data"))
		require.Equal(wantMsg, msg, st.String())
		if wantCtx == nil {
			require.Nil(ctx, st.String())
		} else {
			require.Equal([]byte("test context"), ctx, st.String())
		}

		signer, err := memory.NewFromSeed(st, seedFor(st))
		require.NoError(err)
		pk, err := signer.Public().MarshalBinary()
		require.NoError(err)
		sig, err := memory.Sign(st, signer.UnsafeBytes(), ctx, msg)
		require.NoError(err, st.String())
		ok, err := memory.Verify(st, pk, ctx, msg, sig)
		require.NoError(err)
		require.True(ok, st.String())
	}
}
