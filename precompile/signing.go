package precompile

import (
	"fmt"
	"math/big"

	"github.com/ZigaMr/sapphire-precompiles/abi"
	"github.com/ZigaMr/sapphire-precompiles/crypto/signature"
	"github.com/ZigaMr/sapphire-precompiles/crypto/signature/memory"
)

// signatureType decodes a signature type code. Codes that do not fit a byte are rejected
// instead of being truncated.
func signatureType(code *big.Int) (signature.Type, error) {
	c, ok := abi.Uint8(code)
	if !ok {
		return 0, fmt.Errorf("%w: code %s out of bounds", ErrUnsupportedSignatureType, code)
	}
	t, err := signature.TypeFromCode(c)
	if err != nil {
		return 0, signatureError(err)
	}
	return t, nil
}

// keypairGenerate implements KeypairGenerate(uint256 type, bytes seed) -> (bytes, bytes).
func (d *Dispatcher) keypairGenerate(_ []byte, args abi.Values) ([]byte, error) {
	t, err := signatureType(args.Uint(0))
	if err != nil {
		return nil, err
	}

	signer, err := memory.NewFromSeed(t, args.Bytes(1))
	if err != nil {
		return nil, signatureError(err)
	}
	defer signer.Reset()

	public, err := signer.Public().MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("keypair: failed to marshal public key: %w", err)
	}
	return resultKeypair.Encode(public, signer.UnsafeBytes())
}

// sign implements Sign(uint256 type, bytes private, bytes context, bytes message) -> bytes.
func (d *Dispatcher) sign(_ []byte, args abi.Values) ([]byte, error) {
	t, err := signatureType(args.Uint(0))
	if err != nil {
		return nil, err
	}

	sig, err := memory.Sign(t, args.Bytes(1), args.Bytes(2), args.Bytes(3))
	if err != nil {
		return nil, signatureError(err)
	}
	return sig, nil
}

// verify implements Verify(uint256 type, bytes public, bytes context, bytes message,
// bytes signature) -> bool.
func (d *Dispatcher) verify(_ []byte, args abi.Values) ([]byte, error) {
	t, err := signatureType(args.Uint(0))
	if err != nil {
		return nil, err
	}

	ok, err := memory.Verify(t, args.Bytes(1), args.Bytes(2), args.Bytes(3), args.Bytes(4))
	if err != nil {
		return nil, signatureError(err)
	}
	return resultBool.Encode(ok)
}
