package ed25519

import (
	"crypto"
	"fmt"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/ZigaMr/sapphire-precompiles/crypto/signature"
)

// Signer is an in-memory Ed25519 signer.
type Signer struct {
	privateKey ed25519.PrivateKey
}

// Public returns the public key corresponding to the signer.
func (s *Signer) Public() signature.PublicKey {
	var pk PublicKey
	copy(pk[:], s.privateKey.Public().(ed25519.PublicKey))
	return pk
}

// ContextSign signs SHA-512/256(context || message).
func (s *Signer) ContextSign(context, message []byte) ([]byte, error) {
	return s.SignRaw(signature.PrepareSignerMessage(context, message))
}

// SignRaw produces a plain Ed25519 signature over message.
func (s *Signer) SignRaw(message []byte) ([]byte, error) {
	return ed25519.Sign(s.privateKey, message), nil
}

// SignPrehashed produces an Ed25519ph signature over a SHA-512 digest with the given context.
func (s *Signer) SignPrehashed(context, digest []byte) ([]byte, error) {
	if len(digest) != crypto.SHA512.Size() {
		return nil, fmt.Errorf("%w: ed25519: bad digest size %d", signature.ErrInvalidArgument, len(digest))
	}
	if len(context) > ed25519.ContextMaxSize {
		return nil, fmt.Errorf("%w: ed25519: bad context size %d", signature.ErrInvalidArgument, len(context))
	}
	opts := &ed25519.Options{
		Hash:    crypto.SHA512,
		Context: string(context),
	}
	return s.privateKey.Sign(nil, digest, opts)
}

// UnsafeBytes returns the 32-byte seed of the private key.
func (s *Signer) UnsafeBytes() []byte {
	return append([]byte{}, s.privateKey.Seed()...)
}

// String returns the string representation of the signer.
func (s *Signer) String() string {
	return "ed25519 signer: " + s.Public().String()
}

// Reset tears down the signer.
func (s *Signer) Reset() {
	for i := range s.privateKey {
		s.privateKey[i] = 0
	}
}

// NewSigner creates a new Ed25519 signer from the given 32-byte seed.
func NewSigner(seed []byte) (*Signer, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: ed25519: bad seed size %d", signature.ErrMalformedPrivateKey, len(seed))
	}
	return &Signer{privateKey: ed25519.NewKeyFromSeed(seed)}, nil
}

var _ signature.UnsafeSigner = (*Signer)(nil)
