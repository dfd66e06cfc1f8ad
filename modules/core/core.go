// Package core implements mocked responses of the core module queries.
package core

import (
	"encoding/binary"
	"fmt"

	"github.com/oasisprotocol/oasis-core/go/common/cbor"
	"github.com/oasisprotocol/oasis-core/go/common/crypto/hash"

	"github.com/ZigaMr/sapphire-precompiles/crypto/mrae"
	"github.com/ZigaMr/sapphire-precompiles/crypto/signature/ed25519"
	"github.com/ZigaMr/sapphire-precompiles/types"
)

const (
	// ModuleName is the core module name.
	ModuleName = "core"

	// MethodCallDataPublicKey is the name of the call data public key query.
	MethodCallDataPublicKey = "core.CallDataPublicKey"

	// MockEpoch is the epoch reported by the mocked runtime.
	MockEpoch uint64 = 1234
	// MockKeyExpiration is the expiration epoch of the mocked call data public key.
	MockKeyExpiration = MockEpoch + 2
)

// KeyManagerSignatureContext is the domain separation context for key manager public key
// signatures.
var KeyManagerSignatureContext = []byte("oasis-core/keymanager: pk signature")

var (
	keyManagerSeed = hash.NewFromBytes([]byte("precompile-oracle/mock: key manager"))
	callDataSeed   = hash.NewFromBytes([]byte("precompile-oracle/mock: call data key"))

	// encodedMockEpoch is MockEpoch as a CBOR unsigned integer with a 4-byte argument.
	encodedMockEpoch = []byte{0x1a, 0x00, 0x00, 0x04, 0xd2}
)

// KeyManagerPublicKey returns the public key of the mocked key manager.
func KeyManagerPublicKey() ed25519.PublicKey {
	signer, err := ed25519.NewSigner(keyManagerSeed[:])
	if err != nil {
		panic(err)
	}
	return signer.Public().(ed25519.PublicKey)
}

func publicKeySignatureMessage(pk *types.SignedPublicKey) []byte {
	msg := make([]byte, 0, len(pk.PublicKey)+len(pk.Checksum)+8)
	msg = append(msg, pk.PublicKey[:]...)
	msg = append(msg, pk.Checksum...)
	if pk.Expiration != nil {
		msg = binary.BigEndian.AppendUint64(msg, *pk.Expiration)
	}
	return msg
}

// CallDataPublicKey returns the mocked call data public key response. The response is
// deterministic.
func CallDataPublicKey() (*CallDataPublicKeyResponse, error) {
	expiration := MockKeyExpiration
	checksum := hash.NewFromBytes([]byte("precompile-oracle/mock: key manager state"))
	signed := types.SignedPublicKey{
		PublicKey:  mrae.ComputePublic((*[32]byte)(&callDataSeed)),
		Checksum:   checksum[:],
		Expiration: &expiration,
	}

	signer, err := ed25519.NewSigner(keyManagerSeed[:])
	if err != nil {
		return nil, err
	}
	defer signer.Reset()

	sig, err := signer.ContextSign(KeyManagerSignatureContext, publicKeySignatureMessage(&signed))
	if err != nil {
		return nil, fmt.Errorf("core: failed to sign call data public key: %w", err)
	}
	copy(signed.Signature[:], sig)

	return &CallDataPublicKeyResponse{
		PublicKey: signed,
		Epoch:     MockEpoch,
	}, nil
}

// VerifyCallDataPublicKey checks the key manager signature over a call data public key.
func VerifyCallDataPublicKey(km ed25519.PublicKey, pk *types.SignedPublicKey) bool {
	return km.Verify(KeyManagerSignatureContext, publicKeySignatureMessage(pk), pk.Signature[:])
}

// EncodedCallDataPublicKey returns the CBOR encoding of the mocked call data public key
// response.
func EncodedCallDataPublicKey() ([]byte, error) {
	rsp, err := CallDataPublicKey()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(rsp), nil
}

// EncodedCurrentEpoch returns the CBOR encoding of the mocked current epoch.
func EncodedCurrentEpoch() []byte {
	return append([]byte{}, encodedMockEpoch...)
}
