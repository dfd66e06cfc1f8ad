package precompile

import (
	"github.com/ZigaMr/sapphire-precompiles/abi"
)

// Result format descriptions.
const (
	resultRaw  = "raw bytes"
	resultCBOR = "cbor"
)

// contract is a single precompile. Input is decoded against args before run is invoked,
// unless rawArgs is set in which case run receives the undecoded input.
type contract struct {
	args    abi.Schema
	rawArgs string
	result  string

	run func(d *Dispatcher, input []byte, args abi.Values) ([]byte, error)
}

var (
	schemaEmpty    = abi.MustNewSchema()
	schemaDeoxysII = abi.MustNewSchema("bytes32", "bytes32", "bytes", "bytes")

	resultKeypair = abi.MustNewSchema("bytes", "bytes")
	resultBool    = abi.MustNewSchema("bool")
	resultUint    = abi.MustNewSchema("uint256")
	resultSubcall = abi.MustNewSchema("uint256", "bytes")

	contracts map[Operation]*contract
)

func init() {
	contracts = map[Operation]*contract{
		RandomBytes: {
			args:   abi.MustNewSchema("uint256", "bytes"),
			result: resultRaw,
			run:    (*Dispatcher).randomBytes,
		},
		X25519Derive: {
			args:   abi.MustNewSchema("bytes32", "bytes32"),
			result: resultRaw,
			run:    (*Dispatcher).x25519Derive,
		},
		Curve25519ComputePublic: {
			args:   abi.MustNewSchema("bytes32"),
			result: resultRaw,
			run:    (*Dispatcher).curve25519ComputePublic,
		},
		DeoxysIISeal: {
			args:   schemaDeoxysII,
			result: resultRaw,
			run:    (*Dispatcher).deoxysIISeal,
		},
		DeoxysIIOpen: {
			args:   schemaDeoxysII,
			result: resultRaw,
			run:    (*Dispatcher).deoxysIIOpen,
		},
		KeypairGenerate: {
			args:   abi.MustNewSchema("uint256", "bytes"),
			result: resultKeypair.String(),
			run:    (*Dispatcher).keypairGenerate,
		},
		Sign: {
			args:   abi.MustNewSchema("uint256", "bytes", "bytes", "bytes"),
			result: resultRaw,
			run:    (*Dispatcher).sign,
		},
		Verify: {
			args:   abi.MustNewSchema("uint256", "bytes", "bytes", "bytes", "bytes"),
			result: resultBool.String(),
			run:    (*Dispatcher).verify,
		},
		GasUsed: {
			args:   schemaEmpty,
			result: resultUint.String(),
			run:    (*Dispatcher).gasUsed,
		},
		PadGas: {
			args:   abi.MustNewSchema("uint128"),
			result: "()",
			run:    (*Dispatcher).padGas,
		},
		Subcall: {
			args:   abi.MustNewSchema("bytes", "bytes"),
			result: resultSubcall.String(),
			run:    (*Dispatcher).subcall,
		},
		CoreCalldataPublicKey: {
			args:   schemaEmpty,
			result: resultCBOR,
			run:    (*Dispatcher).coreCalldataPublicKey,
		},
		CoreCurrentEpoch: {
			args:   schemaEmpty,
			result: resultCBOR,
			run:    (*Dispatcher).coreCurrentEpoch,
		},
		RoflIsAuthorizedOrigin: {
			rawArgs: "cbor bytes21",
			result:  resultCBOR,
			run:     (*Dispatcher).roflIsAuthorizedOrigin,
		},
	}
}
