package config

import (
	"github.com/ZigaMr/sapphire-precompiles/crypto/rng"
	"github.com/ZigaMr/sapphire-precompiles/precompile"
)

// Default is the default config that should be used in case no configuration file exists.
var Default = Config{
	RNG: RNG{
		Mode: rng.ModeSystem.String(),
	},
	Limits: Limits{
		MaxInputSize: precompile.DefaultMaxInputSize,
	},
	Log: Log{
		Level:  "error",
		Format: "logfmt",
	},
	Output: Output{
		Encoding: OutputHex,
	},
}
