// Package abi implements the fixed per-operation argument schemas used by the precompiles.
package abi

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	ethABI "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/holiman/uint256"
)

// WordSize is the size of a single ABI head slot.
const WordSize = 32

// ErrMalformed is the error returned when the input does not match the schema layout.
var ErrMalformed = errors.New("abi: malformed input")

// Schema is an ordered list of typed slots.
type Schema struct {
	types []string
	args  ethABI.Arguments
}

// NewSchema creates a new schema from the given ABI type names (e.g. "uint256", "bytes32",
// "bytes", "bool").
func NewSchema(types ...string) (Schema, error) {
	args := make(ethABI.Arguments, 0, len(types))
	for i, t := range types {
		typ, err := ethABI.NewType(t, "", nil)
		if err != nil {
			return Schema{}, fmt.Errorf("abi: bad type '%s' in slot %d: %w", t, i, err)
		}
		switch typ.T {
		case ethABI.UintTy, ethABI.FixedBytesTy, ethABI.BytesTy, ethABI.BoolTy:
		default:
			return Schema{}, fmt.Errorf("abi: unsupported type '%s' in slot %d", t, i)
		}
		args = append(args, ethABI.Argument{Type: typ})
	}
	return Schema{types: types, args: args}, nil
}

// MustNewSchema is like NewSchema but panics on error.
func MustNewSchema(types ...string) Schema {
	s, err := NewSchema(types...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of slots in the schema.
func (s Schema) Len() int {
	return len(s.args)
}

// IsStatic returns true iff the schema has no dynamic slots.
func (s Schema) IsStatic() bool {
	for _, arg := range s.args {
		if arg.Type.T == ethABI.BytesTy {
			return false
		}
	}
	return true
}

// HeadSize returns the size of the head region.
func (s Schema) HeadSize() int {
	return len(s.args) * WordSize
}

// String returns the tuple signature of the schema, e.g. "(uint256,bytes)".
func (s Schema) String() string {
	return "(" + strings.Join(s.types, ",") + ")"
}

// Decode decodes the given input according to the schema. Slots are decoded in declared
// order.
func (s Schema) Decode(data []byte) (Values, error) {
	if len(s.args) == 0 {
		return Values{}, nil
	}
	if len(data) < s.HeadSize() {
		return nil, fmt.Errorf("%w: input of %d bytes is shorter than the %d byte head", ErrMalformed, len(data), s.HeadSize())
	}
	if s.IsStatic() && len(data) != s.HeadSize() {
		return nil, fmt.Errorf("%w: input length must be %d bytes", ErrMalformed, s.HeadSize())
	}
	if len(data)%WordSize != 0 {
		return nil, fmt.Errorf("%w: input length %d is not word aligned", ErrMalformed, len(data))
	}

	values, err := s.args.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(values) != len(s.args) {
		return nil, fmt.Errorf("%w: expected %d values, got %d", ErrMalformed, len(s.args), len(values))
	}
	return values, nil
}

// Encode encodes the given values according to the schema.
//
// Values must use the go-ethereum Go representations: *big.Int for integers, [32]byte for
// bytes32, []byte for bytes and bool for bool.
func (s Schema) Encode(values ...interface{}) ([]byte, error) {
	if len(values) != len(s.args) {
		return nil, fmt.Errorf("abi: expected %d values, got %d", len(s.args), len(values))
	}
	return s.args.Pack(values...)
}

// MustEncode is like Encode but panics on error.
func (s Schema) MustEncode(values ...interface{}) []byte {
	data, err := s.Encode(values...)
	if err != nil {
		panic(err)
	}
	return data
}

// Values is a decoded tuple.
//
// The accessors panic if the slot does not hold the requested type, which can only happen
// when a handler disagrees with its own schema.
type Values []interface{}

// Uint returns the integer in slot i.
func (v Values) Uint(i int) *big.Int {
	return v[i].(*big.Int)
}

// Bytes returns the dynamic byte string in slot i.
func (v Values) Bytes(i int) []byte {
	return v[i].([]byte)
}

// Bytes32 returns the fixed 32-byte array in slot i.
func (v Values) Bytes32(i int) [32]byte {
	return v[i].([32]byte)
}

// Bool returns the boolean in slot i.
func (v Values) Bool(i int) bool {
	return v[i].(bool)
}

// ClampUint64 converts the integer to an uint64, saturating at math.MaxUint64.
func ClampUint64(x *big.Int) uint64 {
	if x.Sign() < 0 {
		return 0
	}
	word, overflow := uint256.FromBig(x)
	if overflow || !word.IsUint64() {
		return math.MaxUint64
	}
	return word.Uint64()
}

// Uint8 converts the integer to an uint8 and reports whether it fits.
func Uint8(x *big.Int) (uint8, bool) {
	if x.Sign() < 0 || !x.IsUint64() || x.Uint64() > math.MaxUint8 {
		return 0, false
	}
	return uint8(x.Uint64()), true
}
