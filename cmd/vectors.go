package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ZigaMr/sapphire-precompiles/config"
	"github.com/ZigaMr/sapphire-precompiles/crypto/rng"
	"github.com/ZigaMr/sapphire-precompiles/vectors"
)

var (
	vectorsFormat string

	vectorsCmd = &cobra.Command{
		Use:   "vectors",
		Short: "Generate conformance vectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := vectors.ParseFormat(vectorsFormat)
			if err != nil {
				return err
			}
			mode, err := rng.ParseMode(config.Global().RNG.Mode)
			if err != nil {
				return err
			}

			set, err := vectors.Generate(mode)
			if err != nil {
				return err
			}
			data, err := set.Marshal(format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	vectorsVerifyCmd = &cobra.Command{
		Use:   "verify <file>",
		Short: "Check conformance vectors against this implementation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := vectorsFormat
			if !cmd.Flags().Changed("format") {
				// Infer the format from the file extension.
				switch strings.ToLower(filepath.Ext(args[0])) {
				case ".yaml", ".yml":
					name = string(vectors.FormatYAML)
				case ".json":
					name = string(vectors.FormatJSON)
				}
			}
			format, err := vectors.ParseFormat(name)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read vectors: %w", err)
			}
			set, err := vectors.Unmarshal(format, data)
			if err != nil {
				return err
			}
			if err = vectors.Verify(set); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d vectors passed\n", len(set.Vectors))
			return nil
		},
	}
)

func init() {
	vectorsCmd.PersistentFlags().StringVar(&vectorsFormat, "format", string(vectors.FormatJSON), "vector file format [json, yaml]")
	vectorsCmd.AddCommand(vectorsVerifyCmd)
}
