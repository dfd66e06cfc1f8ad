package vectors

import (
	"crypto/sha256"
	"encoding/hex"
	"math/big"

	"github.com/oasisprotocol/oasis-core/go/common/cbor"

	"github.com/ZigaMr/sapphire-precompiles/abi"
	"github.com/ZigaMr/sapphire-precompiles/crypto/signature"
	"github.com/ZigaMr/sapphire-precompiles/crypto/signature/memory"
	"github.com/ZigaMr/sapphire-precompiles/modules/rofl"
	"github.com/ZigaMr/sapphire-precompiles/precompile"
	sdkTesting "github.com/ZigaMr/sapphire-precompiles/testing"
)

var (
	schemaRandom   = abi.MustNewSchema("uint256", "bytes")
	schemaX25519   = abi.MustNewSchema("bytes32", "bytes32")
	schemaDeoxysII = abi.MustNewSchema("bytes32", "bytes32", "bytes", "bytes")
	schemaKeypair  = abi.MustNewSchema("uint256", "bytes")
	schemaSign     = abi.MustNewSchema("uint256", "bytes", "bytes", "bytes")
	schemaVerify   = abi.MustNewSchema("uint256", "bytes", "bytes", "bytes", "bytes")
	schemaPadGas   = abi.MustNewSchema("uint128")
	schemaSubcall  = abi.MustNewSchema("bytes", "bytes")

	// RFC 7748 section 6.1 keys.
	x25519AlicePrivate = mustDecodeHex32("77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a")
	x25519BobPublic    = mustDecodeHex32("de9edb7d7b7dc1b4d35b61c2ece435373f8343c85b78674dadfc7e146f882b4f")
)

var vectorsContext = []byte("vectors")

type inputFn func(d *precompile.Dispatcher) ([]byte, error)

type testCase struct {
	op         precompile.Operation
	name       string
	randomized bool
	input      inputFn
}

func mustDecodeHex32(s string) (b [32]byte) {
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != len(b) {
		panic("vectors: bad hex constant")
	}
	copy(b[:], raw)
	return
}

func static(data []byte) inputFn {
	return func(*precompile.Dispatcher) ([]byte, error) {
		return data, nil
	}
}

func encoded(schema abi.Schema, values ...interface{}) inputFn {
	return func(*precompile.Dispatcher) ([]byte, error) {
		return schema.Encode(values...)
	}
}

// sealed builds an open input from the output of a seal with the same key and nonce.
func sealed(key, nonce [32]byte, text, ad []byte, tamper bool) inputFn {
	return func(d *precompile.Dispatcher) ([]byte, error) {
		input, err := schemaDeoxysII.Encode(key, nonce, text, ad)
		if err != nil {
			return nil, err
		}
		ciphertext, err := d.Dispatch(precompile.DeoxysIISeal, input)
		if err != nil {
			return nil, err
		}
		if tamper {
			ciphertext[0] ^= 0x01
		}
		return schemaDeoxysII.Encode(key, nonce, ciphertext, ad)
	}
}

// signed builds a verify input from the output of a sign over the given message.
func signed(t signature.Type, message, verifyMessage string) inputFn {
	return func(d *precompile.Dispatcher) ([]byte, error) {
		key := sdkTesting.KeyForType(t)
		code := big.NewInt(int64(t))
		ctx, msg := memory.PrepareMessage(t, vectorsContext, []byte(message))

		input, err := schemaSign.Encode(code, key.SecretKey, ctx, msg)
		if err != nil {
			return nil, err
		}
		sig, err := d.Dispatch(precompile.Sign, input)
		if err != nil {
			return nil, err
		}

		_, msg = memory.PrepareMessage(t, vectorsContext, []byte(verifyMessage))
		return schemaVerify.Encode(code, key.PublicKey, ctx, msg, sig)
	}
}

func cases() []testCase {
	var (
		zero  [32]byte
		key   = sha256.Sum256([]byte("vectors: key"))
		nonce = sha256.Sum256([]byte("vectors: nonce"))
	)

	appID := rofl.NewAppIDGlobalName("vectors")
	rawAppID, _ := appID.MarshalBinary()

	cs := []testCase{
		{precompile.RandomBytes, "empty", false, encoded(schemaRandom, big.NewInt(0), []byte("pers"))},
		{precompile.RandomBytes, "32 bytes", false, encoded(schemaRandom, big.NewInt(32), []byte("pers"))},
		{precompile.RandomBytes, "clamped", false, encoded(schemaRandom, big.NewInt(4096), []byte{})},
		{precompile.RandomBytes, "malformed", false, static([]byte{0x01})},

		{precompile.X25519Derive, "rfc7748", false, encoded(schemaX25519, x25519BobPublic, x25519AlicePrivate)},
		{precompile.X25519Derive, "short input", false, static(x25519AlicePrivate[:])},
		{precompile.Curve25519ComputePublic, "rfc7748", false, static(x25519AlicePrivate[:])},
		{precompile.Curve25519ComputePublic, "short input", false, static(x25519AlicePrivate[:16])},

		{precompile.DeoxysIISeal, "hello", false, encoded(schemaDeoxysII, zero, zero, []byte("hello"), []byte{})},
		{precompile.DeoxysIISeal, "with ad", false, encoded(schemaDeoxysII, key, nonce, []byte("plaintext"), []byte("ad"))},
		{precompile.DeoxysIIOpen, "hello", false, sealed(zero, zero, []byte("hello"), []byte{}, false)},
		{precompile.DeoxysIIOpen, "with ad", false, sealed(key, nonce, []byte("plaintext"), []byte("ad"), false)},
		{precompile.DeoxysIIOpen, "tampered", false, sealed(key, nonce, []byte("plaintext"), []byte("ad"), true)},
	}

	for _, t := range signature.Types() {
		tk := sdkTesting.KeyForType(t)
		code := big.NewInt(int64(t))
		ctx, msg := memory.PrepareMessage(t, vectorsContext, []byte("message"))

		cs = append(cs,
			testCase{precompile.KeypairGenerate, t.String(), false, encoded(schemaKeypair, code, tk.Seed)},
			testCase{precompile.Sign, t.String(), t == signature.Sr25519, encoded(schemaSign, code, tk.SecretKey, ctx, msg)},
			testCase{precompile.Verify, t.String(), false, signed(t, "message", "message")},
			testCase{precompile.Verify, t.String() + " wrong message", false, signed(t, "message", "other message")},
		)
	}

	cs = append(cs, []testCase{
		{precompile.KeypairGenerate, "unsupported type", false, encoded(schemaKeypair, big.NewInt(9), sdkTesting.Alice.Seed)},
		{precompile.KeypairGenerate, "short seed", false, encoded(schemaKeypair, big.NewInt(int64(signature.Ed25519Oasis)), sdkTesting.Alice.Seed[:16])},
		{precompile.Sign, "context with pure", false, encoded(schemaSign, big.NewInt(int64(signature.Ed25519Pure)), sdkTesting.Alice.SecretKey, []byte("ctx"), []byte("message"))},
		{precompile.Verify, "malformed signature", false, encoded(schemaVerify, big.NewInt(int64(signature.Ed25519Oasis)), sdkTesting.Alice.PublicKey, []byte{}, []byte("message"), []byte{0x01})},

		{precompile.GasUsed, "simulated", false, static(nil)},
		{precompile.PadGas, "at used", false, encoded(schemaPadGas, big.NewInt(10))},
		{precompile.PadGas, "below used", false, encoded(schemaPadGas, big.NewInt(9))},

		{precompile.Subcall, "reentrant", false, encoded(schemaSubcall, []byte("evm.Call"), []byte{0xff})},
		{precompile.Subcall, "calldata public key", false, encoded(schemaSubcall, []byte("core.CallDataPublicKey"), cbor.Marshal(nil))},
		{precompile.Subcall, "unknown method", false, encoded(schemaSubcall, []byte("accounts.Transfer"), cbor.Marshal(nil))},
		{precompile.Subcall, "malformed body", false, encoded(schemaSubcall, []byte("accounts.Transfer"), []byte{0xff})},

		{precompile.CoreCalldataPublicKey, "mock", false, static(nil)},
		{precompile.CoreCurrentEpoch, "mock", false, static(nil)},
		{precompile.RoflIsAuthorizedOrigin, "global name", false, static(cbor.Marshal(rawAppID))},
		{precompile.RoflIsAuthorizedOrigin, "malformed", false, static(rawAppID)},
	}...)

	return cs
}
