// Package rofl implements the mocked ROFL module queries.
package rofl

import (
	"fmt"

	"github.com/oasisprotocol/oasis-core/go/common/cbor"
	"github.com/oasisprotocol/oasis-core/go/common/crypto/address"
)

// cborBytes21 is the CBOR major type 2 header of a 21-byte string.
const cborBytes21 = 0x40 | address.Size

// DecodeAppIDQuery decodes the CBOR encoded application identifier argument of the authorized
// origin query. Only the canonical encoding is accepted.
func DecodeAppIDQuery(data []byte) (AppID, error) {
	var id AppID
	if len(data) != 1+address.Size || data[0] != cborBytes21 {
		return id, fmt.Errorf("rofl: malformed app id")
	}
	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return id, fmt.Errorf("rofl: malformed app id: %w", err)
	}
	if err := id.UnmarshalBinary(raw); err != nil {
		return id, fmt.Errorf("rofl: malformed app id: %w", err)
	}
	return id, nil
}

// IsAuthorizedOrigin is the mocked authorization check. Every well formed application
// identifier is authorized.
func IsAuthorizedOrigin(AppID) bool {
	return true
}

// EncodedIsAuthorizedOrigin answers the authorized origin query with a CBOR boolean.
func EncodedIsAuthorizedOrigin(data []byte) ([]byte, error) {
	id, err := DecodeAppIDQuery(data)
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(IsAuthorizedOrigin(id)), nil
}
