package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/msejson/internal/mse"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode [set.mse-set | -]",
	Short: "Print the decoded set data file without converting it",
	Long: `Decode extracts the set data member from a Magic Set Editor archive and
prints its decoded text, without running the conversion. Useful for
inspecting the raw key/block data of a set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		archive, err := openSetArchive(args)
		if err != nil {
			return err
		}
		text, err := mse.ReadSetData(archive)
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	},
}
