// Package testing provides deterministic test keys for every supported signature type.
package testing

import (
	"crypto/sha512"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"

	"github.com/ZigaMr/sapphire-precompiles/crypto/signature"
	"github.com/ZigaMr/sapphire-precompiles/crypto/signature/memory"
	"github.com/ZigaMr/sapphire-precompiles/crypto/signature/secp256k1"
)

// TestKey is a key used for testing.
type TestKey struct {
	Type      signature.Type
	Seed      []byte
	SecretKey []byte
	PublicKey []byte
	Signer    signature.Signer

	// EthAddress is the corresponding Ethereum address if the key is secp256k1.
	EthAddress ethCommon.Address
}

func newTestKey(t signature.Type, seed []byte) TestKey {
	signer, err := memory.NewFromSeed(t, seed)
	if err != nil {
		panic(err)
	}
	pk, err := signer.Public().MarshalBinary()
	if err != nil {
		panic(err)
	}
	return TestKey{
		Type:      t,
		Seed:      seed,
		SecretKey: signer.UnsafeBytes(),
		PublicKey: pk,
		Signer:    signer,
	}
}

func seed32(seed string) []byte {
	h := sha512.Sum512_256([]byte(seed))
	return h[:]
}

func newEd25519TestKey(seed string) TestKey {
	return newTestKey(signature.Ed25519Oasis, seed32(seed))
}

func newSecp256k1TestKey(seed string) TestKey {
	tk := newTestKey(signature.Secp256k1Oasis, seed32(seed))

	h := sha3.NewLegacyKeccak256()
	untaggedPk, _ := tk.Signer.Public().(secp256k1.PublicKey).MarshalBinaryUncompressedUntagged()
	h.Write(untaggedPk)
	copy(tk.EthAddress[:], h.Sum(nil)[32-20:])

	return tk
}

func newSr25519TestKey(seed string) TestKey {
	return newTestKey(signature.Sr25519, seed32(seed))
}

func newSecp256r1TestKey(seed string) TestKey {
	return newTestKey(signature.Secp256r1PrehashedSha256, seed32(seed))
}

func newSecp384r1TestKey(seed string) TestKey {
	h := sha512.Sum384([]byte(seed))
	return newTestKey(signature.Secp384r1PrehashedSha384, h[:])
}

var (
	// Alice is the test key A.
	Alice = newEd25519TestKey("oasis-runtime-sdk/test-keys: alice")
	// Bob is the test key B.
	Bob = newEd25519TestKey("oasis-runtime-sdk/test-keys: bob")
	// Dave is the test key D.
	Dave = newSecp256k1TestKey("oasis-runtime-sdk/test-keys: dave")
	// Erin is the test key E.
	Erin = newSecp256k1TestKey("oasis-runtime-sdk/test-keys: erin")
	// Frank is the test key F.
	Frank = newSr25519TestKey("oasis-runtime-sdk/test-keys: frank")
	// Heidi is the test key H.
	Heidi = newSecp256r1TestKey("oasis-runtime-sdk/test-keys: heidi")
	// Ivan is the test key I.
	Ivan = newSecp384r1TestKey("oasis-runtime-sdk/test-keys: ivan")

	// TestAccounts contains all test keys.
	TestAccounts = map[string]TestKey{
		"alice": Alice,
		"bob":   Bob,
		"dave":  Dave,
		"erin":  Erin,
		"frank": Frank,
		"heidi": Heidi,
		"ivan":  Ivan,
	}
)

// KeyForType returns the test key whose key material is valid for the given signature type.
func KeyForType(t signature.Type) TestKey {
	switch {
	case t.IsEd25519Variant():
		return Alice
	case t.IsSecp256k1Variant():
		return Dave
	case t == signature.Sr25519:
		return Frank
	case t == signature.Secp384r1PrehashedSha384:
		return Ivan
	default:
		return Heidi
	}
}
