package signature

import (
	"errors"
	"fmt"
)

// ErrUnsupportedType is the error returned for unknown signature type codes.
var ErrUnsupportedType = errors.New("signature: unsupported signature type")

// Type is the signature scheme together with its message preparation variant.
type Type uint8

const (
	// Ed25519Oasis is Ed25519 over SHA-512/256(context || message).
	Ed25519Oasis Type = 0
	// Ed25519Pure is plain Ed25519 with an empty context.
	Ed25519Pure Type = 1
	// Ed25519PrehashedSha512 is Ed25519ph over a SHA-512 digest with an optional context.
	Ed25519PrehashedSha512 Type = 2
	// Secp256k1Oasis is ECDSA/secp256k1 over SHA-512/256(context || message).
	Secp256k1Oasis Type = 3
	// Secp256k1PrehashedKeccak256 is ECDSA/secp256k1 over a Keccak-256 digest.
	Secp256k1PrehashedKeccak256 Type = 4
	// Secp256k1PrehashedSha256 is ECDSA/secp256k1 over a SHA-256 digest.
	Secp256k1PrehashedSha256 Type = 5
	// Sr25519 is Sr25519 (schnorrkel) with a signing context.
	Sr25519 Type = 6
	// Secp256r1PrehashedSha256 is ECDSA/P-256 over a SHA-256 digest.
	Secp256r1PrehashedSha256 Type = 7
	// Secp384r1PrehashedSha384 is ECDSA/P-384 over a SHA-384 digest.
	Secp384r1PrehashedSha384 Type = 8
)

var typeNames = map[Type]string{
	Ed25519Oasis:                "ed25519_oasis",
	Ed25519Pure:                 "ed25519_pure",
	Ed25519PrehashedSha512:      "ed25519_prehashed_sha512",
	Secp256k1Oasis:              "secp256k1_oasis",
	Secp256k1PrehashedKeccak256: "secp256k1_prehashed_keccak256",
	Secp256k1PrehashedSha256:    "secp256k1_prehashed_sha256",
	Sr25519:                     "sr25519",
	Secp256r1PrehashedSha256:    "secp256r1_prehashed_sha256",
	Secp384r1PrehashedSha384:    "secp384r1_prehashed_sha384",
}

// Types returns all supported signature types in code order.
func Types() []Type {
	return []Type{
		Ed25519Oasis,
		Ed25519Pure,
		Ed25519PrehashedSha512,
		Secp256k1Oasis,
		Secp256k1PrehashedKeccak256,
		Secp256k1PrehashedSha256,
		Sr25519,
		Secp256r1PrehashedSha256,
		Secp384r1PrehashedSha384,
	}
}

// TypeFromCode converts a numeric code into a signature type.
func TypeFromCode(code uint8) (Type, error) {
	t := Type(code)
	if _, ok := typeNames[t]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedType, code)
	}
	return t, nil
}

// String returns a string representation of the signature type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("[unknown: %d]", uint8(t))
}

// IsEd25519Variant returns true iff the type uses Ed25519 keys.
func (t Type) IsEd25519Variant() bool {
	return t == Ed25519Oasis || t == Ed25519Pure || t == Ed25519PrehashedSha512
}

// IsSecp256k1Variant returns true iff the type uses secp256k1 keys.
func (t Type) IsSecp256k1Variant() bool {
	return t == Secp256k1Oasis || t == Secp256k1PrehashedKeccak256 || t == Secp256k1PrehashedSha256
}
