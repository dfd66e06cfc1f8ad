package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/ZigaMr/sapphire-precompiles/config"
	"github.com/ZigaMr/sapphire-precompiles/precompile"
)

var runCmd = &cobra.Command{
	Use:   "run <operation> <hex-input | ->",
	Short: "Run a precompile on hex encoded call data",
	Long: "Run a precompile on hex encoded call data and print the output. The input may be " +
		"prefixed with 0x, - reads it from standard input.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := precompile.ParseOperation(args[0])
		if err != nil {
			return err
		}

		rawInput := args[1]
		if rawInput == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			rawInput = string(data)
		}
		input, err := decodeHex(rawInput)
		if err != nil {
			return fmt.Errorf("%w: malformed hex input: %w", precompile.ErrDecode, err)
		}

		d, err := newDispatcher()
		if err != nil {
			return err
		}
		out, err := d.Dispatch(op, input)
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), config.Global().Output.Encoding, out)
	},
}

// decodeHex decodes hex with an optional 0x prefix, ignoring surrounding whitespace.
func decodeHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return hexutil.Decode("0x" + s)
}

func writeOutput(w io.Writer, encoding string, out []byte) error {
	switch encoding {
	case config.OutputBinary:
		_, err := w.Write(out)
		return err
	case config.OutputHex:
		_, err := fmt.Fprint(w, strings.TrimPrefix(hexutil.Encode(out), "0x"))
		return err
	default:
		return fmt.Errorf("unsupported output encoding '%s'", encoding)
	}
}

func init() {
	runCmd.Flags().String("output", "", "output encoding [hex, binary]")
	_ = v.BindPFlag(cfgOutput, runCmd.Flags().Lookup("output"))
}
