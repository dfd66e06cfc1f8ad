package precompile

import (
	"github.com/ZigaMr/sapphire-precompiles/abi"
	"github.com/ZigaMr/sapphire-precompiles/crypto/mrae"
)

// x25519Derive implements X25519Derive(bytes32 public, bytes32 private) -> bytes32.
func (d *Dispatcher) x25519Derive(_ []byte, args abi.Values) ([]byte, error) {
	public, private := args.Bytes32(0), args.Bytes32(1)
	key := mrae.DeriveSymmetricKey(&public, &private)
	return key[:], nil
}

// curve25519ComputePublic implements Curve25519ComputePublic(bytes32 private) -> bytes32.
func (d *Dispatcher) curve25519ComputePublic(_ []byte, args abi.Values) ([]byte, error) {
	private := args.Bytes32(0)
	public := mrae.ComputePublic(&private)
	return public[:], nil
}
