package cmd

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ZigaMr/sapphire-precompiles/precompile"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List supported operations",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
		table.SetCenterSeparator("|")
		table.SetAutoWrapText(false)
		table.SetHeader([]string{"Operation", "Arguments", "Result"})

		var output [][]string
		for _, info := range precompile.Operations() {
			output = append(output, []string{
				info.Operation.String(),
				info.ArgumentsString(),
				info.Result,
			})
		}

		table.AppendBulk(output)
		table.Render()
	},
}
