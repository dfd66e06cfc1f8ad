package secp256k1

import (
	"encoding/base64"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/ZigaMr/sapphire-precompiles/crypto/signature"
)

// PublicKey is a Secp256k1 public key.
type PublicKey btcec.PublicKey

// MarshalBinary encodes a public key into binary form.
func (pk PublicKey) MarshalBinary() ([]byte, error) {
	bpk := btcec.PublicKey(pk)
	return bpk.SerializeCompressed(), nil
}

// MarshalBinaryUncompressedUntagged encodes a public key into uncompressed form without the
// 0x04 tag byte, as used for Ethereum address derivation.
func (pk PublicKey) MarshalBinaryUncompressedUntagged() ([]byte, error) {
	bpk := btcec.PublicKey(pk)
	return bpk.SerializeUncompressed()[1:], nil
}

// UnmarshalBinary decodes a binary marshaled public key.
func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	parsedPK, err := btcec.ParsePubKey(data)
	if err != nil {
		return fmt.Errorf("%w: secp256k1: %w", signature.ErrMalformedPublicKey, err)
	}
	*pk = PublicKey(*parsedPK)
	return nil
}

// MarshalText encodes a public key into text form.
func (pk PublicKey) MarshalText() ([]byte, error) {
	serialized, _ := pk.MarshalBinary()
	return []byte(base64.StdEncoding.EncodeToString(serialized)), nil
}

// UnmarshalText decodes a text marshaled public key.
func (pk *PublicKey) UnmarshalText(text []byte) error {
	decodedPK, err := base64.StdEncoding.DecodeString(string(text))
	if err != nil {
		return err
	}
	return pk.UnmarshalBinary(decodedPK)
}

// String returns a string representation of the public key.
func (pk PublicKey) String() string {
	str, _ := pk.MarshalText()
	return string(str)
}

// Equal compares vs another public key for equality.
func (pk PublicKey) Equal(other signature.PublicKey) bool {
	opk, ok := other.(PublicKey)
	if !ok {
		return false
	}
	obpk := btcec.PublicKey(opk)
	bpk := btcec.PublicKey(pk)
	return bpk.IsEqual(&obpk)
}

// Verify returns true iff the signature is valid for the public key over the context and message.
func (pk PublicKey) Verify(context, message, signature []byte) bool {
	return pk.VerifyDigest(PrepareSignerMessage(context, message), signature)
}

// VerifyDigest returns true iff the DER-encoded signature is valid for the public key over the
// given digest.
func (pk PublicKey) VerifyDigest(digest, signature []byte) bool {
	sig, err := ecdsa.ParseDERSignature(signature)
	if err != nil {
		return false
	}
	bpk := btcec.PublicKey(pk)
	return sig.Verify(digest, &bpk)
}

// ValidateSignature checks that the signature is a well formed DER-encoded ECDSA signature.
func ValidateSignature(sig []byte) error {
	if _, err := ecdsa.ParseDERSignature(sig); err != nil {
		return fmt.Errorf("%w: secp256k1: %w", signature.ErrMalformedSignature, err)
	}
	return nil
}
