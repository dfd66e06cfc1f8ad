package precompile

import (
	"github.com/ZigaMr/sapphire-precompiles/abi"
	"github.com/ZigaMr/sapphire-precompiles/crypto/rng"
)

// randomBytes implements RandomBytes(uint256 count, bytes pers) -> bytes.
func (d *Dispatcher) randomBytes(_ []byte, args abi.Values) ([]byte, error) {
	count := abi.ClampUint64(args.Uint(0))
	return rng.RandomBytes(d.rngMode, count, args.Bytes(1))
}
