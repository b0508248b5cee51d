package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/msejson/internal/config"
	"github.com/arcanaland/msejson/internal/set"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert [set.mse-set | -]",
	Short: "Convert a set archive to a JSON set record",
	Long: `Convert reads a Magic Set Editor set archive and writes the converted JSON
set record to standard output. The archive is read from the given path, or
from standard input when the path is "-" or omitted.

Examples:
  msejson convert custom.mse-set > custom.json
  msejson convert --set-code CST custom.mse-set
  cat custom.mse-set | msejson convert -`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setCode, _ := cmd.Flags().GetString("set-code")
		setVersion, _ := cmd.Flags().GetString("set-version")

		archive, err := openSetArchive(args)
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
		result, err := set.Convert(archive, set.Options{
			SetCode:    setCode,
			SetVersion: setVersion,
			Tables:     set.TablesFromConfig(cfg),
			Logger:     logger,
		})
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "    ")
		if err != nil {
			return fmt.Errorf("error encoding set record: %v", err)
		}
		fmt.Println(string(out))

		colorize.New(colorize.FgGreen).Fprintf(os.Stderr, "converted %d cards\n", len(result.Cards))
		return nil
	},
}

func init() {
	convertCmd.Flags().String("set-code", "", "Override the set code stored in the archive")
	convertCmd.Flags().String("set-version", "", "Stamp a set version into the record metadata")
}
