// Package cmd implements the oracle command line interface.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ZigaMr/sapphire-precompiles/config"
	"github.com/ZigaMr/sapphire-precompiles/precompile"
)

const (
	cfgRNGMode  = "rng.mode"
	cfgLogLevel = "log.level"
	cfgOutput   = "output.encoding"
)

var (
	cfgFile string

	v = viper.New()

	loggingOnce sync.Once

	rootCmd = &cobra.Command{
		Use:           "oracle",
		Short:         "Reference oracle for the confidential runtime precompiles",
		Version:       "0.1.0",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
)

// Execute executes the root command. When the binary is invoked under the name of an
// operation (e.g. through a symlink named sign), the arguments are treated as the input of
// the run command for that operation.
func Execute() error {
	return executeArgs(os.Args)
}

func executeArgs(argv []string) error {
	args := argv[1:]
	if name := filepath.Base(argv[0]); name != rootCmd.Use {
		if _, err := precompile.ParseOperation(name); err == nil {
			args = append([]string{runCmd.Name(), name}, args...)
		}
	}
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

const configFilename = "oracle.toml"

// configDirectory returns the directory of the default configuration file.
var configDirectory = config.Directory

// configPath returns the configuration file in use.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return filepath.Join(configDirectory(), configFilename)
}

func initConfig() {
	// A missing default configuration file means defaults, only `config init` creates it.
	v.SetConfigFile(configPath())

	cobra.CheckErr(config.BindEnv(v))
	if err := v.ReadInConfig(); err != nil && (cfgFile != "" || !errors.Is(err, fs.ErrNotExist)) {
		cobra.CheckErr(fmt.Errorf("failed to read configuration file: %w", err))
	}

	// Load and validate global configuration.
	err := config.Load(v)
	cobra.CheckErr(err)
	err = config.Global().Validate()
	cobra.CheckErr(err)

	loggingOnce.Do(func() {
		cobra.CheckErr(config.Global().InitializeLogging(os.Stderr))
	})
}

// newDispatcher creates a dispatcher as configured.
func newDispatcher(extra ...precompile.Option) (*precompile.Dispatcher, error) {
	opts, err := config.Global().DispatcherOptions()
	if err != nil {
		return nil, err
	}
	return precompile.New(append(opts, extra...)...), nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file to use")
	rootCmd.PersistentFlags().String(cfgRNGMode, "", "randomness source [system, deterministic]")
	rootCmd.PersistentFlags().String(cfgLogLevel, "", "log level [debug, info, warn, error]")

	for _, key := range []string{cfgRNGMode, cfgLogLevel} {
		_ = v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key))
	}

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(vectorsCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(configCmd)
}
