// Package signature contains the cryptographic signature types.
package signature

import (
	"errors"

	"github.com/oasisprotocol/oasis-core/go/common/crypto/hash"
)

var (
	// ErrMalformedPrivateKey is the error returned when private key material is malformed.
	ErrMalformedPrivateKey = errors.New("signature: malformed private key")
	// ErrMalformedPublicKey is the error returned when a public key is malformed.
	ErrMalformedPublicKey = errors.New("signature: malformed public key")
	// ErrMalformedSignature is the error returned when a signature is not well formed.
	ErrMalformedSignature = errors.New("signature: malformed signature")
	// ErrInvalidArgument is the error returned when the context or message is not acceptable
	// for the signature scheme.
	ErrInvalidArgument = errors.New("signature: invalid argument")
)

// PublicKey is a public key.
type PublicKey interface {
	// String returns a string representation of the public key.
	String() string

	// Equal compares vs another public key for equality.
	Equal(other PublicKey) bool

	// MarshalBinary encodes the public key into its canonical binary form.
	MarshalBinary() ([]byte, error)

	// Verify returns true iff the signature is valid for the public key over the context and
	// message.
	Verify(context, message, signature []byte) bool
}

// PrepareSignerMessage prepares a context and message for signing by a context signer
// (SHA-512/256 over context || message).
func PrepareSignerMessage(context, message []byte) []byte {
	h := hash.NewFromBytes(context, message)
	return h[:]
}
