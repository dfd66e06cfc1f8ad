// Package rng implements the transcript based random byte generator.
package rng

import (
	"bytes"
	"fmt"
	"io"

	"github.com/oasisprotocol/curve25519-voi/primitives/merlin"
)

const (
	// MaxRandomBytes is the maximum number of bytes returned by a single request.
	MaxRandomBytes = 1024

	transcriptLabel = "RNG"
	persLabel       = "pers"
	entropySize     = 32
)

// Mode selects the entropy source of the generator.
type Mode uint8

const (
	// ModeSystem keys every generator with fresh entropy from the operating system.
	ModeSystem Mode = iota
	// ModeDeterministic keys every generator with a fixed all-zero witness so that output
	// depends only on the personalization string and the requested length.
	ModeDeterministic
)

var modeNames = map[Mode]string{
	ModeSystem:        "system",
	ModeDeterministic: "deterministic",
}

// String returns the configuration name of the mode.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("[unknown mode: %d]", uint8(m))
}

// ParseMode parses a configuration name into a mode.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("rng: unknown mode '%s'", s)
}

// MarshalText encodes the mode into its configuration name.
func (m Mode) MarshalText() ([]byte, error) {
	if _, ok := modeNames[m]; !ok {
		return nil, fmt.Errorf("rng: unknown mode %d", uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText decodes a configuration name.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Mode) entropy() (io.Reader, error) {
	switch m {
	case ModeSystem:
		// Finalize falls back to crypto/rand.
		return nil, nil
	case ModeDeterministic:
		return bytes.NewReader(make([]byte, entropySize)), nil
	default:
		return nil, fmt.Errorf("rng: unknown mode %d", uint8(m))
	}
}

// RandomBytes returns min(count, MaxRandomBytes) bytes generated from a transcript bound to
// the personalization string.
func RandomBytes(mode Mode, count uint64, pers []byte) ([]byte, error) {
	if count > MaxRandomBytes {
		count = MaxRandomBytes
	}
	if count == 0 {
		return []byte{}, nil
	}

	entropy, err := mode.entropy()
	if err != nil {
		return nil, err
	}

	t := merlin.NewTranscript(transcriptLabel)
	t.AppendMessage(persLabel, pers)
	r, err := t.BuildRng().Finalize(entropy)
	if err != nil {
		return nil, fmt.Errorf("rng: failed to initialize generator: %w", err)
	}

	out := make([]byte, count)
	if _, err = io.ReadFull(r, out); err != nil {
		return nil, fmt.Errorf("rng: failed to generate bytes: %w", err)
	}
	return out, nil
}
