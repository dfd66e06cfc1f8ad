package precompile

import (
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/oasisprotocol/oasis-core/go/common/cbor"

	"github.com/ZigaMr/sapphire-precompiles/abi"
	"github.com/ZigaMr/sapphire-precompiles/modules/core"
	"github.com/ZigaMr/sapphire-precompiles/types"
)

const (
	// reentrantMethodPrefix is the method namespace of the EVM module itself.
	reentrantMethodPrefix = "evm."

	unknownModuleName = "unknown"

	// Module error codes reported by the sub-call simulator.
	codeForbidden     uint32 = 1
	codeUnknownMethod uint32 = 1
)

// simulateSubcall routes a sub-call the way the runtime dispatcher would, without executing
// anything.
func simulateSubcall(method string, body []byte) (*types.CallResult, error) {
	if strings.HasPrefix(method, reentrantMethodPrefix) {
		return types.NewFailedCallResult(core.ModuleName, codeForbidden, "reentrant calls are forbidden"), nil
	}

	var decoded interface{}
	if err := cbor.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSubcallBody, err)
	}

	switch method {
	case core.MethodCallDataPublicKey:
		return &types.CallResult{Ok: cbor.RawMessage{}}, nil
	default:
		return types.NewFailedCallResult(unknownModuleName, codeUnknownMethod, "unknown method: "+method), nil
	}
}

// subcall implements Subcall(bytes method, bytes body) -> (uint256 status, bytes data).
//
// A successful call yields status 0 and the call output, a failed call yields the module
// error code and the module name.
func (d *Dispatcher) subcall(_ []byte, args abi.Values) ([]byte, error) {
	rawMethod := args.Bytes(0)
	if !utf8.Valid(rawMethod) {
		return nil, fmt.Errorf("%w: method is malformed", ErrDecode)
	}

	result, err := simulateSubcall(string(rawMethod), args.Bytes(1))
	if err != nil {
		return nil, err
	}
	if !result.IsSuccess() {
		return resultSubcall.Encode(
			new(big.Int).SetUint64(uint64(result.Failed.Code)),
			[]byte(result.Failed.Module),
		)
	}
	return resultSubcall.Encode(new(big.Int), []byte(result.Ok))
}
