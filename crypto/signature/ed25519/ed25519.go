package ed25519

import (
	"crypto"
	"crypto/subtle"
	"encoding"
	"encoding/base64"
	"fmt"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/ZigaMr/sapphire-precompiles/crypto/signature"
)

var (
	_ encoding.BinaryMarshaler   = PublicKey{}
	_ encoding.BinaryUnmarshaler = (*PublicKey)(nil)
	_ encoding.TextMarshaler     = PublicKey{}
	_ encoding.TextUnmarshaler   = (*PublicKey)(nil)
)

// PublicKey is an Ed25519 public key.
type PublicKey [ed25519.PublicKeySize]byte

// MarshalBinary encodes a public key into binary form.
func (pk PublicKey) MarshalBinary() ([]byte, error) {
	return append([]byte{}, pk[:]...), nil
}

// UnmarshalBinary decodes a binary marshaled public key.
func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	if len(data) != ed25519.PublicKeySize {
		return fmt.Errorf("%w: ed25519: bad public key size %d", signature.ErrMalformedPublicKey, len(data))
	}
	copy(pk[:], data)
	return nil
}

// MarshalText encodes a public key into text form.
func (pk PublicKey) MarshalText() ([]byte, error) {
	return []byte(base64.StdEncoding.EncodeToString(pk[:])), nil
}

// UnmarshalText decodes a text marshaled public key.
func (pk *PublicKey) UnmarshalText(text []byte) error {
	b, err := base64.StdEncoding.DecodeString(string(text))
	if err != nil {
		return err
	}
	return pk.UnmarshalBinary(b)
}

// String returns a string representation of the public key.
func (pk PublicKey) String() string {
	s, _ := pk.MarshalText()
	return string(s)
}

// Equal compares vs another public key for equality.
func (pk PublicKey) Equal(other signature.PublicKey) bool {
	var opk PublicKey
	switch o := other.(type) {
	case PublicKey:
		opk = o
	case *PublicKey:
		if o == nil {
			return false
		}
		opk = *o
	default:
		return false
	}
	return subtle.ConstantTimeCompare(pk[:], opk[:]) == 1
}

// Verify returns true iff the signature is valid for the public key over the context and message.
func (pk PublicKey) Verify(context, message, sig []byte) bool {
	return pk.VerifyRaw(signature.PrepareSignerMessage(context, message), sig)
}

// VerifyRaw returns true iff the signature is a valid plain Ed25519 signature over message.
func (pk PublicKey) VerifyRaw(message, sig []byte) bool {
	return ed25519.Verify(pk[:], message, sig)
}

// VerifyPrehashed returns true iff the signature is a valid Ed25519ph signature over the
// SHA-512 digest with the given context.
func (pk PublicKey) VerifyPrehashed(context, digest, sig []byte) bool {
	if len(digest) != crypto.SHA512.Size() || len(context) > ed25519.ContextMaxSize {
		return false
	}
	opts := &ed25519.Options{
		Hash:    crypto.SHA512,
		Context: string(context),
	}
	return ed25519.VerifyWithOptions(pk[:], digest, sig, opts)
}

// ValidateSignature checks that the signature is well formed.
func ValidateSignature(sig []byte) error {
	if len(sig) != ed25519.SignatureSize {
		return fmt.Errorf("%w: ed25519: bad signature size %d", signature.ErrMalformedSignature, len(sig))
	}
	return nil
}

// NewPublicKey creates a new public key from the given Base64 representation or
// panics.
func NewPublicKey(text string) (pk PublicKey) {
	if err := pk.UnmarshalText([]byte(text)); err != nil {
		panic(err)
	}
	return
}
