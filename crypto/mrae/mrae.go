// Package mrae implements the X25519 key agreement and Deoxys-II-256-128 authenticated
// encryption used by confidential calls.
package mrae

import (
	"crypto/cipher"
	"errors"
	"fmt"

	"github.com/oasisprotocol/curve25519-voi/primitives/x25519"
	"github.com/oasisprotocol/deoxysii"

	mraeDeoxysii "github.com/oasisprotocol/oasis-core/go/common/crypto/mrae/deoxysii"
)

const (
	// KeySize is the size of a symmetric key in bytes.
	KeySize = deoxysii.KeySize
	// NonceSize is the size of a nonce in bytes.
	NonceSize = deoxysii.NonceSize
	// TagSize is the size of the authentication tag appended to sealed data.
	TagSize = deoxysii.TagSize
)

// ErrOpen is the error returned when a ciphertext fails authentication.
var ErrOpen = errors.New("mrae: decryption failed")

// DeriveSymmetricKey derives a Deoxys-II key from the peer's X25519 public key and our
// private key.
//
// A low-order public key yields an all-zero shared secret which is used as is.
func DeriveSymmetricKey(publicKey, privateKey *[32]byte) [KeySize]byte {
	var key [KeySize]byte
	mraeDeoxysii.Box.DeriveSymmetricKey(key[:], (*x25519.PublicKey)(publicKey), (*x25519.PrivateKey)(privateKey))
	return key
}

// ComputePublic returns the X25519 public key for the given private key.
func ComputePublic(privateKey *[32]byte) [32]byte {
	return *(*x25519.PrivateKey)(privateKey).Public()
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("mrae: bad key size %d", len(key))
	}
	aead, err := deoxysii.New(key)
	if err != nil {
		return nil, fmt.Errorf("mrae: failed to initialize cipher: %w", err)
	}
	return aead, nil
}

// Seal encrypts and authenticates plaintext and authenticates additionalData, returning
// ciphertext || tag.
func Seal(key, nonce, plaintext, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("mrae: bad nonce size %d", len(nonce))
	}
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, nonce, plaintext, additionalData), nil
}

// Open authenticates and decrypts ciphertext || tag. Any authentication failure is reported
// as ErrOpen without partial plaintext.
func Open(key, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("mrae: bad nonce size %d", len(nonce))
	}
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, additionalData)
	if err != nil {
		return nil, ErrOpen
	}
	return plaintext, nil
}
