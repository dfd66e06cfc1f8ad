package precompile

import (
	"errors"
	"fmt"

	"github.com/ZigaMr/sapphire-precompiles/abi"
	"github.com/ZigaMr/sapphire-precompiles/crypto/mrae"
)

// deoxysIIArgs unpacks (bytes32 key, bytes32 nonce, bytes text, bytes ad). Only the first
// mrae.NonceSize bytes of the nonce are used.
func deoxysIIArgs(args abi.Values) (key, nonce, text, ad []byte) {
	k, n := args.Bytes32(0), args.Bytes32(1)
	return k[:], n[:mrae.NonceSize], args.Bytes(2), args.Bytes(3)
}

// deoxysIISeal implements DeoxysIISeal. Nonce uniqueness is not checked.
func (d *Dispatcher) deoxysIISeal(_ []byte, args abi.Values) ([]byte, error) {
	key, nonce, plaintext, ad := deoxysIIArgs(args)
	return mrae.Seal(key, nonce, plaintext, ad)
}

// deoxysIIOpen implements DeoxysIIOpen.
func (d *Dispatcher) deoxysIIOpen(_ []byte, args abi.Values) ([]byte, error) {
	key, nonce, ciphertext, ad := deoxysIIArgs(args)
	plaintext, err := mrae.Open(key, nonce, ciphertext, ad)
	switch {
	case err == nil:
		return plaintext, nil
	case errors.Is(err, mrae.ErrOpen):
		return nil, ErrAuthenticationFailed
	default:
		return nil, fmt.Errorf("deoxysii: %w", err)
	}
}
