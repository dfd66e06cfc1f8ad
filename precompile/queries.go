package precompile

import (
	"fmt"

	"github.com/ZigaMr/sapphire-precompiles/abi"
	"github.com/ZigaMr/sapphire-precompiles/modules/core"
	"github.com/ZigaMr/sapphire-precompiles/modules/rofl"
)

// coreCalldataPublicKey implements CoreCalldataPublicKey, returning the CBOR encoded mocked
// call data public key.
func (d *Dispatcher) coreCalldataPublicKey([]byte, abi.Values) ([]byte, error) {
	return core.EncodedCallDataPublicKey()
}

// coreCurrentEpoch implements CoreCurrentEpoch, returning the CBOR encoded mocked epoch.
func (d *Dispatcher) coreCurrentEpoch([]byte, abi.Values) ([]byte, error) {
	return core.EncodedCurrentEpoch(), nil
}

// roflIsAuthorizedOrigin implements RoflIsAuthorizedOrigin over a CBOR encoded 21-byte
// application identifier.
func (d *Dispatcher) roflIsAuthorizedOrigin(input []byte, _ abi.Values) ([]byte, error) {
	rsp, err := rofl.EncodedIsAuthorizedOrigin(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return rsp, nil
}
