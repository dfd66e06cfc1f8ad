// Package vectors generates and checks conformance vectors for the precompiles.
package vectors

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/ZigaMr/sapphire-precompiles/crypto/rng"
	"github.com/ZigaMr/sapphire-precompiles/precompile"
)

// Check is the way a vector's output is compared.
type Check string

const (
	// CheckExact requires the output to match byte for byte.
	CheckExact Check = "exact"
	// CheckLength only requires the output length to match, for randomized outputs.
	CheckLength Check = "length"
)

// Vector is a single conformance vector.
type Vector struct {
	Operation precompile.Operation `json:"operation" yaml:"operation"`
	Name      string               `json:"name" yaml:"name"`
	Input     hexutil.Bytes        `json:"input" yaml:"input"`
	Output    hexutil.Bytes        `json:"output,omitempty" yaml:"output,omitempty"`
	Error     string               `json:"error,omitempty" yaml:"error,omitempty"`
	Check     Check                `json:"check,omitempty" yaml:"check,omitempty"`
}

// Set is a set of vectors generated with the same dispatcher configuration.
type Set struct {
	RNGMode rng.Mode `json:"rng_mode" yaml:"rng_mode"`
	Vectors []Vector `json:"vectors" yaml:"vectors"`
}

// Generate runs every case against a dispatcher using the given entropy source and records
// the outputs.
func Generate(mode rng.Mode) (*Set, error) {
	d := precompile.New(precompile.WithRNGMode(mode))
	set := &Set{RNGMode: mode}

	for _, c := range cases() {
		input, err := c.input(d)
		if err != nil {
			return nil, fmt.Errorf("vectors: failed to build input for %s/%s: %w", c.op, c.name, err)
		}

		v := Vector{
			Operation: c.op,
			Name:      c.name,
			Input:     input,
			Check:     CheckExact,
		}
		if c.randomized || (c.op == precompile.RandomBytes && mode == rng.ModeSystem) {
			v.Check = CheckLength
		}

		out, err := d.Dispatch(c.op, input)
		if err != nil {
			class := precompile.ErrorClass(err)
			if class == nil {
				return nil, fmt.Errorf("vectors: %s/%s: unclassified error: %w", c.op, c.name, err)
			}
			v.Error = class.Error()
			v.Check = ""
		} else {
			v.Output = out
		}
		set.Vectors = append(set.Vectors, v)
	}
	return set, nil
}

// Verify re-runs every vector in the set and reports all mismatches.
func Verify(set *Set) error {
	d := precompile.New(precompile.WithRNGMode(set.RNGMode))

	var errs []error
	for _, v := range set.Vectors {
		if err := verifyVector(d, &v); err != nil {
			errs = append(errs, fmt.Errorf("%s/%s: %w", v.Operation, v.Name, err))
		}
	}
	return errors.Join(errs...)
}

func verifyVector(d *precompile.Dispatcher, v *Vector) error {
	out, err := d.Dispatch(v.Operation, v.Input)
	if v.Error != "" {
		class := precompile.ErrorClassByName(v.Error)
		if class == nil {
			return fmt.Errorf("unknown error class '%s'", v.Error)
		}
		if !errors.Is(err, class) {
			return fmt.Errorf("expected error '%s', got %v", v.Error, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}

	switch v.Check {
	case CheckExact, "":
		if !bytes.Equal(out, v.Output) {
			return fmt.Errorf("output mismatch: expected %s, got %s", v.Output, hexutil.Bytes(out))
		}
	case CheckLength:
		if len(out) != len(v.Output) {
			return fmt.Errorf("output length mismatch: expected %d, got %d", len(v.Output), len(out))
		}
	default:
		return fmt.Errorf("unknown check '%s'", v.Check)
	}
	return nil
}
