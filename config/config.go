// Package config implements the oracle configuration.
package config

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/oasisprotocol/oasis-core/go/common/logging"

	"github.com/ZigaMr/sapphire-precompiles/crypto/rng"
	"github.com/ZigaMr/sapphire-precompiles/precompile"
)

// EnvPrefix is the prefix of environment variables overriding configuration keys.
const EnvPrefix = "ORACLE"

// Output encodings.
const (
	OutputHex    = "hex"
	OutputBinary = "binary"
)

var global Config

// Directory returns the path to the configuration directory.
func Directory() string {
	return filepath.Join(xdg.ConfigHome, "precompile-oracle")
}

// Global returns the global configuration structure.
func Global() *Config {
	return &global
}

// Load loads the global configuration structure from viper.
func Load(v *viper.Viper) error {
	return global.Load(v)
}

// Save saves the global configuration structure to viper.
func Save(v *viper.Viper) error {
	global.viper = v
	return global.Save()
}

// ResetDefaults resets the global configuration to defaults.
func ResetDefaults() {
	global = Default
}

// Config contains the oracle configuration.
type Config struct {
	viper *viper.Viper

	RNG    RNG    `mapstructure:"rng"`
	Limits Limits `mapstructure:"limits"`
	Log    Log    `mapstructure:"log"`
	Output Output `mapstructure:"output"`
}

// RNG configures the RandomBytes entropy source.
type RNG struct {
	Mode string `mapstructure:"mode"`
}

// Limits configures input limits.
type Limits struct {
	MaxInputSize int `mapstructure:"max_input_size"`
}

// Log configures logging.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Output configures how operation output is written.
type Output struct {
	Encoding string `mapstructure:"encoding"`
}

// BindEnv sets up environment overrides (e.g. ORACLE_RNG_MODE) and defaults for every
// configuration key on v.
func BindEnv(v *viper.Viper) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	encCfg, err := encode(Default)
	if err != nil {
		return err
	}
	setDefaults(v, "", encCfg.(map[string]interface{}))
	return nil
}

func setDefaults(v *viper.Viper, prefix string, values map[string]interface{}) {
	for k, val := range values {
		if nested, ok := val.(map[string]interface{}); ok {
			setDefaults(v, prefix+k+".", nested)
			continue
		}
		v.SetDefault(prefix+k, val)
	}
}

// Load loads the configuration structure from viper.
func (cfg *Config) Load(v *viper.Viper) error {
	cfg.viper = v
	return v.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.ErrorUnused = true
	})
}

// encode is needed because mapstructure cannot encode structs into maps recursively.
func encode(in interface{}) (interface{}, error) {
	const tagName = "mapstructure"

	v := reflect.ValueOf(in)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		// Convert structures to map[string]interface{}.
		result := make(map[string]interface{})
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			field := t.Field(i)
			if field.PkgPath != "" {
				// Skip unexported fields.
				continue
			}

			key := field.Name
			if tagValue := field.Tag.Get(tagName); tagValue != "" {
				key = strings.Split(tagValue, ",")[0]
			}

			value, err := encode(v.Field(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("failed to encode field '%s': %w", field.Name, err)
			}
			result[key] = value
		}
		return result, nil
	default:
		// Pass everything else unchanged.
		return v.Interface(), nil
	}
}

// Save saves the configuration structure to viper.
func (cfg *Config) Save() error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	encCfg, err := encode(cfg)
	if err != nil {
		return err
	}
	rawCfg := encCfg.(map[string]interface{})

	// There is no other way to reset the config, so we use ReadConfig with an empty buffer.
	var buf bytes.Buffer
	_ = cfg.viper.ReadConfig(&buf)
	// Rewrite config to use the new map.
	if err = cfg.viper.MergeConfigMap(rawCfg); err != nil {
		return err
	}

	return cfg.viper.WriteConfig()
}

// Validate performs config validation.
func (cfg *Config) Validate() error {
	if _, err := rng.ParseMode(cfg.RNG.Mode); err != nil {
		return fmt.Errorf("failed to validate rng configuration: %w", err)
	}
	if cfg.Limits.MaxInputSize < 0 {
		return fmt.Errorf("failed to validate limits configuration: negative max_input_size %d", cfg.Limits.MaxInputSize)
	}
	if _, err := cfg.Log.level(); err != nil {
		return fmt.Errorf("failed to validate log configuration: %w", err)
	}
	if _, err := cfg.Log.format(); err != nil {
		return fmt.Errorf("failed to validate log configuration: %w", err)
	}
	switch cfg.Output.Encoding {
	case OutputHex, OutputBinary:
	default:
		return fmt.Errorf("failed to validate output configuration: unsupported encoding '%s'", cfg.Output.Encoding)
	}
	return nil
}

func (l *Log) level() (logging.Level, error) {
	var level logging.Level
	if err := level.Set(l.Level); err != nil {
		return level, fmt.Errorf("invalid level '%s': %w", l.Level, err)
	}
	return level, nil
}

func (l *Log) format() (logging.Format, error) {
	var format logging.Format
	if err := format.Set(l.Format); err != nil {
		return format, fmt.Errorf("invalid format '%s': %w", l.Format, err)
	}
	return format, nil
}

// InitializeLogging sets up the process-wide logger as configured.
func (cfg *Config) InitializeLogging(w io.Writer) error {
	level, err := cfg.Log.level()
	if err != nil {
		return err
	}
	format, err := cfg.Log.format()
	if err != nil {
		return err
	}
	return logging.Initialize(w, format, level, nil)
}

// DispatcherOptions returns the dispatcher options matching the configuration.
func (cfg *Config) DispatcherOptions() ([]precompile.Option, error) {
	mode, err := rng.ParseMode(cfg.RNG.Mode)
	if err != nil {
		return nil, err
	}
	opts := []precompile.Option{precompile.WithRNGMode(mode)}
	if cfg.Limits.MaxInputSize > 0 {
		opts = append(opts, precompile.WithMaxInputSize(cfg.Limits.MaxInputSize))
	}
	return opts, nil
}
