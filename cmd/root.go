package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "msejson",
	Short: "Convert Magic Set Editor sets to card database JSON",
	Long: `msejson converts a Magic Set Editor set archive into a normalized JSON
card database record, deriving mana values, color identity, type lists and
collector numbers from the raw set data.`,
}

func init() {
	RootCmd.AddCommand(convertCmd)
	RootCmd.AddCommand(decodeCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
