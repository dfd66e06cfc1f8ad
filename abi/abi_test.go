package abi

import (
	"encoding/hex"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSchemaEncodeDecode(t *testing.T) {
	require := require.New(t)

	s := MustNewSchema("uint256", "bytes")
	require.Equal("(uint256,bytes)", s.String())
	require.False(s.IsStatic())
	require.Equal(64, s.HeadSize())

	data, err := s.Encode(big.NewInt(32), []byte("hello"))
	require.NoError(err, "Encode")
	require.EqualValues(
		strings.Repeat("0", 62)+"20"+
			strings.Repeat("0", 62)+"40"+
			strings.Repeat("0", 63)+"5"+
			"68656c6c6f"+strings.Repeat("0", 54),
		hex.EncodeToString(data),
	)

	values, err := s.Decode(data)
	require.NoError(err, "Decode")
	require.Len(values, 2)
	require.EqualValues(32, values.Uint(0).Uint64())
	require.Equal([]byte("hello"), values.Bytes(1))
}

func TestSchemaDecodeStatic(t *testing.T) {
	require := require.New(t)

	s := MustNewSchema("bytes32", "bytes32")
	require.True(s.IsStatic())

	var a, b [32]byte
	a[0] = 0xaa
	b[31] = 0xbb
	data := s.MustEncode(a, b)
	require.Len(data, 64)

	values, err := s.Decode(data)
	require.NoError(err)
	require.Equal(a, values.Bytes32(0))
	require.Equal(b, values.Bytes32(1))

	_, err = s.Decode(data[:63])
	require.ErrorIs(err, ErrMalformed, "short static input should fail")
	_, err = s.Decode(append(data, make([]byte, 32)...))
	require.ErrorIs(err, ErrMalformed, "oversized static input should fail")
}

func TestSchemaDecodeMalformed(t *testing.T) {
	s := MustNewSchema("bytes32", "bytes32", "bytes", "bytes")
	valid := s.MustEncode([32]byte{}, [32]byte{}, []byte("hello"), []byte{})

	offsetOutside := append([]byte{}, valid...)
	offsetOutside[2*WordSize+WordSize-1] = 0xff

	lengthTooLarge := append([]byte{}, valid...)
	// Length prefix of the first dynamic value lives right after the head.
	lengthTooLarge[4*WordSize+WordSize-1] = 0xff

	for _, tc := range []struct {
		name string
		data []byte
	}{
		{"Empty", nil},
		{"ShortHead", valid[:3*WordSize]},
		{"Unaligned", valid[:len(valid)-1]},
		{"OffsetOutside", offsetOutside},
		{"LengthTooLarge", lengthTooLarge},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Decode(tc.data)
			require.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestSchemaDecodeBool(t *testing.T) {
	require := require.New(t)

	s := MustNewSchema("bool")
	values, err := s.Decode(s.MustEncode(true))
	require.NoError(err)
	require.True(values.Bool(0))

	bad := make([]byte, WordSize)
	bad[WordSize-1] = 2
	_, err = s.Decode(bad)
	require.ErrorIs(err, ErrMalformed, "non 0/1 bool should fail")
}

func TestSchemaEmpty(t *testing.T) {
	require := require.New(t)

	s := MustNewSchema()
	values, err := s.Decode([]byte("ignored"))
	require.NoError(err)
	require.Len(values, 0)
	require.Equal("()", s.String())
}

func TestNewSchemaUnsupported(t *testing.T) {
	require := require.New(t)

	_, err := NewSchema("string")
	require.Error(err)
	_, err = NewSchema("not-a-type")
	require.Error(err)
	require.Panics(func() { MustNewSchema("address[]") })
}

func TestEncodeArity(t *testing.T) {
	_, err := MustNewSchema("bool").Encode(true, false)
	require.Error(t, err)
}

func TestClampUint64(t *testing.T) {
	require := require.New(t)

	require.EqualValues(0, ClampUint64(big.NewInt(0)))
	require.EqualValues(1234, ClampUint64(big.NewInt(1234)))
	require.EqualValues(uint64(math.MaxUint64), ClampUint64(new(big.Int).SetUint64(math.MaxUint64)))

	huge := new(big.Int).Lsh(big.NewInt(1), 200)
	require.EqualValues(uint64(math.MaxUint64), ClampUint64(huge), "values above 64 bits must saturate")
	require.EqualValues(0, ClampUint64(big.NewInt(-5)))
}

func TestUint8(t *testing.T) {
	require := require.New(t)

	v, ok := Uint8(big.NewInt(6))
	require.True(ok)
	require.EqualValues(6, v)

	_, ok = Uint8(big.NewInt(256))
	require.False(ok)
	_, ok = Uint8(new(big.Int).Lsh(big.NewInt(1), 100))
	require.False(ok)
}
