package precompile

import (
	"fmt"

	"github.com/ZigaMr/sapphire-precompiles/abi"
)

// Operation is the identity of a precompile.
type Operation uint8

// Supported operations.
const (
	RandomBytes Operation = iota
	X25519Derive
	Curve25519ComputePublic
	DeoxysIISeal
	DeoxysIIOpen
	KeypairGenerate
	Sign
	Verify
	GasUsed
	PadGas
	Subcall
	CoreCalldataPublicKey
	CoreCurrentEpoch
	RoflIsAuthorizedOrigin
)

var operationNames = map[Operation]string{
	RandomBytes:             "random_bytes",
	X25519Derive:            "x25519_derive",
	Curve25519ComputePublic: "curve25519_compute_public",
	DeoxysIISeal:            "deoxysii_seal",
	DeoxysIIOpen:            "deoxysii_open",
	KeypairGenerate:         "keypair_generate",
	Sign:                    "sign",
	Verify:                  "verify",
	GasUsed:                 "gas_used",
	PadGas:                  "pad_gas",
	Subcall:                 "subcall",
	CoreCalldataPublicKey:   "core_calldata_public_key",
	CoreCurrentEpoch:        "core_current_epoch",
	RoflIsAuthorizedOrigin:  "rofl_is_authorized_origin",
}

// String returns the name of the operation.
func (op Operation) String() string {
	if name, ok := operationNames[op]; ok {
		return name
	}
	return fmt.Sprintf("[unknown: %d]", uint8(op))
}

// MarshalText encodes the operation into its name.
func (op Operation) MarshalText() ([]byte, error) {
	if _, ok := operationNames[op]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedOperation, uint8(op))
	}
	return []byte(op.String()), nil
}

// UnmarshalText decodes an operation name.
func (op *Operation) UnmarshalText(text []byte) error {
	parsed, err := ParseOperation(string(text))
	if err != nil {
		return err
	}
	*op = parsed
	return nil
}

// ParseOperation parses an operation name.
func ParseOperation(name string) (Operation, error) {
	for op, n := range operationNames {
		if n == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w: '%s'", ErrUnsupportedOperation, name)
}

// Info describes the call shape of an operation.
type Info struct {
	Operation Operation
	// Arguments is the argument schema, empty for operations that ignore their input.
	Arguments abi.Schema
	// RawArguments describes non-ABI inputs.
	RawArguments string
	// Result describes the output format.
	Result string
}

// ArgumentsString returns a human readable description of the expected input.
func (i *Info) ArgumentsString() string {
	if i.RawArguments != "" {
		return i.RawArguments
	}
	return i.Arguments.String()
}

// Operations returns the catalogue of all operations in identity order.
func Operations() []Info {
	ops := make([]Info, 0, len(contracts))
	for op := RandomBytes; op <= RoflIsAuthorizedOrigin; op++ {
		c := contracts[op]
		ops = append(ops, Info{
			Operation:    op,
			Arguments:    c.args,
			RawArguments: c.rawArgs,
			Result:       c.result,
		})
	}
	return ops
}
