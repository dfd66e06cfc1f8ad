package core

import (
	"github.com/ZigaMr/sapphire-precompiles/types"
)

// CallDataPublicKeyResponse is the response of the core.CallDataPublicKey query.
type CallDataPublicKeyResponse struct {
	// PublicKey is the signed runtime call data public key.
	PublicKey types.SignedPublicKey `json:"public_key"`
	// Epoch is the epoch of the ephemeral runtime key.
	Epoch uint64 `json:"epoch,omitempty"`
}
