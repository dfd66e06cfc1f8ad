// Package memory provides in-memory signers and verifiers selected by signature type.
package memory

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/ZigaMr/sapphire-precompiles/crypto/signature"
	"github.com/ZigaMr/sapphire-precompiles/crypto/signature/ed25519"
	"github.com/ZigaMr/sapphire-precompiles/crypto/signature/nist"
	"github.com/ZigaMr/sapphire-precompiles/crypto/signature/secp256k1"
	"github.com/ZigaMr/sapphire-precompiles/crypto/signature/sr25519"
)

func nistCurve(t signature.Type) nist.Curve {
	if t == signature.Secp384r1PrehashedSha384 {
		return nist.P384
	}
	return nist.P256
}

// NewFromSeed deterministically derives a signer of the given type from a seed.
//
// Ed25519 and Sr25519 seeds are 32 bytes (Sr25519 uses Ed25519-style expansion), ECDSA seeds
// are the private scalar itself.
func NewFromSeed(t signature.Type, seed []byte) (signature.UnsafeSigner, error) {
	if t != signature.Sr25519 {
		return NewFromBytes(t, seed)
	}
	return unsafeSigner(sr25519.NewSignerFromSeed(seed))
}

// NewFromBytes creates a signer of the given type from serialized private key bytes as
// returned by UnsafeBytes.
func NewFromBytes(t signature.Type, sk []byte) (signature.UnsafeSigner, error) {
	switch {
	case t.IsEd25519Variant():
		return unsafeSigner(ed25519.NewSigner(sk))
	case t.IsSecp256k1Variant():
		return unsafeSigner(secp256k1.NewSigner(sk))
	case t == signature.Sr25519:
		return unsafeSigner(sr25519.NewSigner(sk))
	case t == signature.Secp256r1PrehashedSha256, t == signature.Secp384r1PrehashedSha384:
		return unsafeSigner(nist.NewSigner(nistCurve(t), sk))
	default:
		return nil, fmt.Errorf("%w: %d", signature.ErrUnsupportedType, uint8(t))
	}
}

func unsafeSigner[S signature.UnsafeSigner](s S, err error) (signature.UnsafeSigner, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Sign signs the context and message with the given private key using the message
// preparation rules of the signature type.
func Sign(t signature.Type, sk, context, message []byte) ([]byte, error) {
	signer, err := NewFromBytes(t, sk)
	if err != nil {
		return nil, err
	}
	defer signer.Reset()

	switch t {
	case signature.Ed25519Oasis, signature.Secp256k1Oasis, signature.Sr25519,
		signature.Secp256r1PrehashedSha256, signature.Secp384r1PrehashedSha384:
		return signer.ContextSign(context, message)
	case signature.Ed25519Pure:
		if len(context) != 0 {
			return nil, fmt.Errorf("%w: %s: context must be empty", signature.ErrInvalidArgument, t)
		}
		return signer.(*ed25519.Signer).SignRaw(message)
	case signature.Ed25519PrehashedSha512:
		return signer.(*ed25519.Signer).SignPrehashed(context, message)
	case signature.Secp256k1PrehashedKeccak256, signature.Secp256k1PrehashedSha256:
		if len(context) != 0 {
			return nil, fmt.Errorf("%w: %s: context must be empty", signature.ErrInvalidArgument, t)
		}
		return signer.(*secp256k1.Signer).SignDigest(message)
	default:
		return nil, fmt.Errorf("%w: %d", signature.ErrUnsupportedType, uint8(t))
	}
}

// NewPublicKey decodes a public key of the given signature type.
func NewPublicKey(t signature.Type, data []byte) (signature.PublicKey, error) {
	switch {
	case t.IsEd25519Variant():
		var pk ed25519.PublicKey
		if err := pk.UnmarshalBinary(data); err != nil {
			return nil, err
		}
		return pk, nil
	case t.IsSecp256k1Variant():
		var pk secp256k1.PublicKey
		if err := pk.UnmarshalBinary(data); err != nil {
			return nil, err
		}
		return pk, nil
	case t == signature.Sr25519:
		var pk sr25519.PublicKey
		if err := pk.UnmarshalBinary(data); err != nil {
			return nil, err
		}
		return pk, nil
	case t == signature.Secp256r1PrehashedSha256, t == signature.Secp384r1PrehashedSha384:
		return nist.NewPublicKey(nistCurve(t), data)
	default:
		return nil, fmt.Errorf("%w: %d", signature.ErrUnsupportedType, uint8(t))
	}
}

// ValidateSignature checks the encoding of a signature of the given type.
func ValidateSignature(t signature.Type, sig []byte) error {
	switch {
	case t.IsEd25519Variant():
		return ed25519.ValidateSignature(sig)
	case t.IsSecp256k1Variant():
		return secp256k1.ValidateSignature(sig)
	case t == signature.Sr25519:
		return sr25519.ValidateSignature(sig)
	case t == signature.Secp256r1PrehashedSha256, t == signature.Secp384r1PrehashedSha384:
		return nist.ValidateSignature(sig)
	default:
		return fmt.Errorf("%w: %d", signature.ErrUnsupportedType, uint8(t))
	}
}

// Verify checks a signature of the given type over the context and message.
//
// A malformed public key or signature encoding is an error, any other mismatch (including a
// context or digest the scheme does not accept) yields false.
func Verify(t signature.Type, publicKey, context, message, sig []byte) (bool, error) {
	pk, err := NewPublicKey(t, publicKey)
	if err != nil {
		return false, err
	}
	if err = ValidateSignature(t, sig); err != nil {
		return false, err
	}

	switch t {
	case signature.Ed25519Pure:
		if len(context) != 0 {
			return false, nil
		}
		return pk.(ed25519.PublicKey).VerifyRaw(message, sig), nil
	case signature.Ed25519PrehashedSha512:
		return pk.(ed25519.PublicKey).VerifyPrehashed(context, message, sig), nil
	case signature.Secp256k1PrehashedKeccak256, signature.Secp256k1PrehashedSha256:
		if len(context) != 0 || len(message) != secp256k1.DigestSize {
			return false, nil
		}
		return pk.(secp256k1.PublicKey).VerifyDigest(message, sig), nil
	default:
		return pk.Verify(context, message, sig), nil
	}
}

// PrepareMessage turns a context and data into arguments accepted by Sign and Verify for the
// signature type: prehashed schemes receive the digest of data, and schemes that do not take
// a context have it dropped.
func PrepareMessage(t signature.Type, context, data []byte) ([]byte, []byte) {
	switch t {
	case signature.Ed25519Pure:
		return nil, data
	case signature.Ed25519PrehashedSha512:
		h := sha512.Sum512(data)
		return context, h[:]
	case signature.Secp256k1PrehashedKeccak256:
		h := sha3.NewLegacyKeccak256()
		h.Write(data)
		return nil, h.Sum(nil)
	case signature.Secp256k1PrehashedSha256, signature.Secp256r1PrehashedSha256:
		h := sha256.Sum256(data)
		return nil, h[:]
	case signature.Secp384r1PrehashedSha384:
		h := sha512.Sum384(data)
		return nil, h[:]
	default:
		return context, data
	}
}
