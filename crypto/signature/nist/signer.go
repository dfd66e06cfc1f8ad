package nist

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ZigaMr/sapphire-precompiles/crypto/signature"
)

// Signer is an in-memory deterministic (RFC 6979) ECDSA signer on a NIST curve.
type Signer struct {
	curve      Curve
	privateKey *ecdsa.PrivateKey
}

// Public returns the public key corresponding to the signer.
func (s *Signer) Public() signature.PublicKey {
	return PublicKey{
		curve: s.curve,
		inner: &s.privateKey.PublicKey,
	}
}

// ContextSign signs a prehashed digest. The context must be empty.
func (s *Signer) ContextSign(context, digest []byte) ([]byte, error) {
	if len(context) != 0 {
		return nil, fmt.Errorf("%w: %s: context must be empty", signature.ErrInvalidArgument, s.curve)
	}
	return s.SignDigest(digest)
}

// SignDigest signs a digest of the curve's hash size and returns the DER-encoded signature.
func (s *Signer) SignDigest(digest []byte) ([]byte, error) {
	if len(digest) != s.curve.DigestSize() {
		return nil, fmt.Errorf("%w: %s: bad digest size %d", signature.ErrInvalidArgument, s.curve, len(digest))
	}
	// A nil random source selects RFC 6979 nonce generation.
	return s.privateKey.Sign(nil, digest, s.curve.hash())
}

// UnsafeBytes returns the big-endian private scalar.
func (s *Signer) UnsafeBytes() []byte {
	return s.privateKey.D.FillBytes(make([]byte, s.curve.ScalarSize()))
}

// String returns the string representation of the signer.
func (s *Signer) String() string {
	return s.curve.String() + " signer: " + s.Public().String()
}

// Reset tears down the signer.
func (s *Signer) Reset() {
	s.privateKey.D.SetInt64(0)
}

// NewSigner creates a new signer from a big-endian private scalar in [1, n-1].
func NewSigner(curve Curve, scalar []byte) (*Signer, error) {
	if len(scalar) != curve.ScalarSize() {
		return nil, fmt.Errorf("%w: %s: bad private key size %d", signature.ErrMalformedPrivateKey, curve, len(scalar))
	}
	// crypto/ecdh rejects zero and out of range scalars.
	ecdhKey, err := curve.ecdh().NewPrivateKey(scalar)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", signature.ErrMalformedPrivateKey, curve, err)
	}
	pk, err := NewPublicKey(curve, ecdhKey.PublicKey().Bytes())
	if err != nil {
		return nil, err
	}

	return &Signer{
		curve: curve,
		privateKey: &ecdsa.PrivateKey{
			PublicKey: *pk.inner,
			D:         new(big.Int).SetBytes(scalar),
		},
	}, nil
}

var _ signature.UnsafeSigner = (*Signer)(nil)
