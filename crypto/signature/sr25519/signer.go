package sr25519

import (
	"fmt"

	"github.com/oasisprotocol/curve25519-voi/primitives/sr25519"

	"github.com/ZigaMr/sapphire-precompiles/crypto/signature"
)

// Signer is an in-memory Sr25519 signer.
type Signer struct {
	keyPair *sr25519.KeyPair
}

// Public returns the public key corresponding to the signer.
func (s *Signer) Public() signature.PublicKey {
	return PublicKey{
		inner: s.keyPair.PublicKey(),
	}
}

// ContextSign signs the message under the given signing context.
func (s *Signer) ContextSign(context, message []byte) ([]byte, error) {
	transcript := newSigningTranscript(context, message)

	sig, err := s.keyPair.Sign(nil, transcript)
	if err != nil {
		return nil, err
	}

	return sig.MarshalBinary()
}

// UnsafeBytes returns the 64-byte serialized secret key.
func (s *Signer) UnsafeBytes() []byte {
	b, _ := s.keyPair.SecretKey().MarshalBinary()
	return b
}

// String returns the string representation of the signer.
func (s *Signer) String() string {
	return "sr25519 signer: " + s.Public().String()
}

// Reset tears down the signer.
func (s *Signer) Reset() {
	// curve25519-voi acknowledges that memory sanitization in Go is
	// a totally lost cause.
	s.keyPair = nil
}

// NewSigner creates a new Sr25519 signer using the given byte-serialized
// secret key.
func NewSigner(b []byte) (*Signer, error) {
	secretKey, err := sr25519.NewSecretKeyFromBytes(b)
	if err != nil {
		return nil, fmt.Errorf("%w: sr25519: %w", signature.ErrMalformedPrivateKey, err)
	}

	return NewSignerFromKeyPair(secretKey.KeyPair()), nil
}

// NewSignerFromSeed creates a new Sr25519 signer from a 32-byte mini secret key, expanded
// the same way as Ed25519 seeds.
func NewSignerFromSeed(seed []byte) (*Signer, error) {
	msk, err := sr25519.NewMiniSecretKeyFromBytes(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: sr25519: %w", signature.ErrMalformedPrivateKey, err)
	}

	return NewSignerFromKeyPair(msk.ExpandEd25519().KeyPair()), nil
}

// NewSignerFromKeyPair creates a new Sr25519 signer using the given key pair.
func NewSignerFromKeyPair(kp *sr25519.KeyPair) *Signer {
	return &Signer{kp}
}

var _ signature.UnsafeSigner = (*Signer)(nil)
