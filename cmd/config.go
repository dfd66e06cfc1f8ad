package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ZigaMr/sapphire-precompiles/config"
)

var (
	configForce bool

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath()
			if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
				return fmt.Errorf("failed to create configuration directory: %w", err)
			}

			flags := os.O_WRONLY | os.O_CREATE
			if !configForce {
				flags |= os.O_EXCL
			}
			f, err := os.OpenFile(path, flags, 0o600)
			switch {
			case errors.Is(err, fs.ErrExist):
				return fmt.Errorf("configuration file '%s' already exists, use --force to overwrite", path)
			case err != nil:
				return fmt.Errorf("failed to create configuration file: %w", err)
			}
			_ = f.Close()

			if err = config.Global().Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
			return nil
		},
	}
)

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing configuration file")
	configCmd.AddCommand(configInitCmd)
}
