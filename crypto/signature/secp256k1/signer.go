package secp256k1

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/ZigaMr/sapphire-precompiles/crypto/signature"
)

// DigestSize is the size of the digests accepted by the prehashed variants.
const DigestSize = 32

// Signer is an in-memory Secp256k1 signer producing deterministic (RFC 6979) signatures.
type Signer struct {
	privateKey *btcec.PrivateKey
}

// Public returns the public key corresponding to the signer.
func (s *Signer) Public() signature.PublicKey {
	return PublicKey(*s.privateKey.PubKey())
}

// ContextSign signs SHA-512/256(context || message).
func (s *Signer) ContextSign(context, message []byte) ([]byte, error) {
	return s.SignDigest(PrepareSignerMessage(context, message))
}

// SignDigest signs a 32-byte digest and returns the DER-encoded signature.
func (s *Signer) SignDigest(digest []byte) ([]byte, error) {
	if len(digest) != DigestSize {
		return nil, fmt.Errorf("%w: secp256k1: bad digest size %d", signature.ErrInvalidArgument, len(digest))
	}
	sig := ecdsa.Sign(s.privateKey, digest)
	return sig.Serialize(), nil
}

// UnsafeBytes returns the 32-byte private scalar.
func (s *Signer) UnsafeBytes() []byte {
	return s.privateKey.Serialize()
}

// String returns the string representation of the signer.
func (s *Signer) String() string {
	return s.Public().String()
}

// Reset tears down the signer.
func (s *Signer) Reset() {
	s.privateKey.Zero()
}

// NewSigner creates a new Secp256k1 signer using the given 32-byte private scalar, which must
// be in the range [1, n-1].
func NewSigner(pk []byte) (*Signer, error) {
	if len(pk) != btcec.PrivKeyBytesLen {
		return nil, fmt.Errorf("%w: secp256k1: bad private key size %d", signature.ErrMalformedPrivateKey, len(pk))
	}
	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(pk); overflow || scalar.IsZero() {
		return nil, fmt.Errorf("%w: secp256k1: private key out of range", signature.ErrMalformedPrivateKey)
	}
	return &Signer{privateKey: btcec.PrivKeyFromScalar(&scalar)}, nil
}

// PrepareSignerMessage prepares a context and message for signing by a Signer.
func PrepareSignerMessage(context, message []byte) []byte {
	return signature.PrepareSignerMessage(context, message)
}

var _ signature.UnsafeSigner = (*Signer)(nil)
