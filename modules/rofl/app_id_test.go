package rofl

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oasisprotocol/oasis-core/go/common/cbor"
)

func TestIdentifierV0(t *testing.T) {
	require := require.New(t)

	appID := NewAppIDGlobalName("test global app")
	require.Equal("rofl1qrev5wq76npkmcv5wxkdxxcu4dhmu704yyl30h43", appID.String())

	parsed := NewAppIDFromBech32("rofl1qrev5wq76npkmcv5wxkdxxcu4dhmu704yyl30h43")
	require.True(appID.Equal(parsed))

	raw, err := appID.MarshalBinary()
	require.NoError(err)
	require.Len(raw, 21)
}

func TestIsAuthorizedOrigin(t *testing.T) {
	require := require.New(t)

	appID := NewAppIDGlobalName("test global app")
	raw, _ := appID.MarshalBinary()
	query := cbor.Marshal(raw)
	require.Len(query, 22)
	require.EqualValues(0x55, query[0])

	decoded, err := DecodeAppIDQuery(query)
	require.NoError(err)
	require.True(appID.Equal(decoded))

	rsp, err := EncodedIsAuthorizedOrigin(query)
	require.NoError(err)
	require.Equal("f5", hex.EncodeToString(rsp))

	_, err = EncodedIsAuthorizedOrigin(query[:21])
	require.Error(err)
	_, err = EncodedIsAuthorizedOrigin(append(query, 0x00))
	require.Error(err)

	wrongHeader := append([]byte{0x54}, query[1:]...)
	_, err = EncodedIsAuthorizedOrigin(wrongHeader)
	require.Error(err)
}
