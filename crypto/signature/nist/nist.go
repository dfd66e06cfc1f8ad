// Package nist implements deterministic ECDSA over the NIST P-256 and P-384 curves.
package nist

import (
	"crypto"
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/elliptic"
	"encoding/base64"
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	"github.com/ZigaMr/sapphire-precompiles/crypto/signature"
)

// Curve is a supported NIST curve.
type Curve uint8

const (
	// P256 is the secp256r1 curve, used with SHA-256 digests.
	P256 Curve = iota
	// P384 is the secp384r1 curve, used with SHA-384 digests.
	P384
)

func (c Curve) String() string {
	switch c {
	case P256:
		return "secp256r1"
	case P384:
		return "secp384r1"
	default:
		return fmt.Sprintf("[unknown curve: %d]", uint8(c))
	}
}

// ScalarSize returns the size of a private scalar in bytes.
func (c Curve) ScalarSize() int {
	if c == P384 {
		return 48
	}
	return 32
}

// DigestSize returns the size of the digest accepted by the curve.
func (c Curve) DigestSize() int {
	return c.hash().Size()
}

func (c Curve) hash() crypto.Hash {
	if c == P384 {
		return crypto.SHA384
	}
	return crypto.SHA256
}

func (c Curve) elliptic() elliptic.Curve {
	if c == P384 {
		return elliptic.P384()
	}
	return elliptic.P256()
}

func (c Curve) ecdh() ecdh.Curve {
	if c == P384 {
		return ecdh.P384()
	}
	return ecdh.P256()
}

// PublicKey is an ECDSA public key on a NIST curve.
type PublicKey struct {
	curve Curve
	inner *ecdsa.PublicKey
}

// Curve returns the curve of the public key.
func (pk PublicKey) Curve() Curve {
	return pk.curve
}

// MarshalBinary encodes the public key in SEC1 compressed form.
func (pk PublicKey) MarshalBinary() ([]byte, error) {
	if pk.inner == nil {
		return nil, nil
	}
	return elliptic.MarshalCompressed(pk.inner.Curve, pk.inner.X, pk.inner.Y), nil
}

// String returns a string representation of the public key.
func (pk PublicKey) String() string {
	b, _ := pk.MarshalBinary()
	return base64.StdEncoding.EncodeToString(b)
}

// Equal compares vs another public key for equality.
func (pk PublicKey) Equal(other signature.PublicKey) bool {
	opk, ok := other.(PublicKey)
	if !ok || pk.curve != opk.curve {
		return false
	}
	if pk.inner == nil || opk.inner == nil {
		return pk.inner == opk.inner
	}
	return pk.inner.Equal(opk.inner)
}

// Verify returns true iff the DER signature is valid over the digest. The context must be
// empty since the scheme has no domain separation of its own.
func (pk PublicKey) Verify(context, digest, sig []byte) bool {
	if len(context) != 0 || len(digest) != pk.curve.DigestSize() || pk.inner == nil {
		return false
	}
	return ecdsa.VerifyASN1(pk.inner, digest, sig)
}

// NewPublicKey decodes a SEC1 encoded (compressed or uncompressed) public key.
func NewPublicKey(curve Curve, data []byte) (PublicKey, error) {
	ec := curve.elliptic()
	var x, y *big.Int
	switch len(data) {
	case 1 + curve.ScalarSize():
		x, y = elliptic.UnmarshalCompressed(ec, data)
	case 1 + 2*curve.ScalarSize():
		if _, err := curve.ecdh().NewPublicKey(data); err != nil {
			return PublicKey{}, fmt.Errorf("%w: %s: %w", signature.ErrMalformedPublicKey, curve, err)
		}
		x, y = elliptic.Unmarshal(ec, data) //nolint: staticcheck
	}
	if x == nil {
		return PublicKey{}, fmt.Errorf("%w: %s: invalid point encoding", signature.ErrMalformedPublicKey, curve)
	}
	return PublicKey{
		curve: curve,
		inner: &ecdsa.PublicKey{Curve: ec, X: x, Y: y},
	}, nil
}

// ValidateSignature checks that the signature is a DER SEQUENCE of two positive INTEGERs
// with no trailing data.
func ValidateSignature(sig []byte) error {
	var (
		r, s  = new(big.Int), new(big.Int)
		inner cryptobyte.String
	)
	input := cryptobyte.String(sig)
	if !input.ReadASN1(&inner, asn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1Integer(r) ||
		!inner.ReadASN1Integer(s) ||
		!inner.Empty() ||
		r.Sign() <= 0 || s.Sign() <= 0 {
		return fmt.Errorf("%w: ecdsa: invalid DER encoding", signature.ErrMalformedSignature)
	}
	return nil
}
