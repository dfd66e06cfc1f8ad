package precompile

import (
	"fmt"
	"math/big"

	"github.com/ZigaMr/sapphire-precompiles/abi"
)

// SimulatedGasUsed is the gas reported as already used by the calling transaction.
const SimulatedGasUsed uint64 = 10

// gasUsed implements GasUsed() -> uint256.
func (d *Dispatcher) gasUsed([]byte, abi.Values) ([]byte, error) {
	return resultUint.Encode(new(big.Int).SetUint64(SimulatedGasUsed))
}

// padGas implements PadGas(uint128 target) -> ().
func (d *Dispatcher) padGas(_ []byte, args abi.Values) ([]byte, error) {
	target := abi.ClampUint64(args.Uint(0))
	if target < SimulatedGasUsed {
		return nil, fmt.Errorf("%w: target %d, used %d", ErrGasPolicyViolation, target, SimulatedGasUsed)
	}
	return []byte{}, nil
}
