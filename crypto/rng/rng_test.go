package rng

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomBytesLength(t *testing.T) {
	require := require.New(t)

	for _, mode := range []Mode{ModeSystem, ModeDeterministic} {
		out, err := RandomBytes(mode, 0, nil)
		require.NoError(err)
		require.Empty(out)

		out, err = RandomBytes(mode, 10, []byte("pers"))
		require.NoError(err)
		require.Len(out, 10)

		out, err = RandomBytes(mode, MaxRandomBytes+1, nil)
		require.NoError(err)
		require.Len(out, MaxRandomBytes, "output should be capped")

		out, err = RandomBytes(mode, ^uint64(0), nil)
		require.NoError(err)
		require.Len(out, MaxRandomBytes, "output should be capped")
	}
}

func TestRandomBytesDeterministic(t *testing.T) {
	require := require.New(t)

	a, err := RandomBytes(ModeDeterministic, 32, []byte("pers"))
	require.NoError(err)
	b, err := RandomBytes(ModeDeterministic, 32, []byte("pers"))
	require.NoError(err)
	require.Equal(a, b)

	c, err := RandomBytes(ModeDeterministic, 32, []byte("other"))
	require.NoError(err)
	require.NotEqual(a, c, "personalization should affect output")

	s1, err := RandomBytes(ModeSystem, 32, []byte("pers"))
	require.NoError(err)
	s2, err := RandomBytes(ModeSystem, 32, []byte("pers"))
	require.NoError(err)
	require.NotEqual(s1, s2, "system mode should not repeat")

	_, err = RandomBytes(Mode(42), 32, nil)
	require.Error(err)
}

func TestMode(t *testing.T) {
	require := require.New(t)

	for _, m := range []Mode{ModeSystem, ModeDeterministic} {
		text, err := m.MarshalText()
		require.NoError(err)

		var parsed Mode
		require.NoError(parsed.UnmarshalText(text))
		require.Equal(m, parsed)
	}

	_, err := ParseMode("bogus")
	require.Error(err)
	require.Equal("[unknown mode: 7]", Mode(7).String())
}
