package cmd

import (
	"archive/zip"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/arcanaland/msejson/internal/mse"
)

// openSetArchive opens the set archive named by the positional argument, or
// reads it from standard input when the argument is "-" or absent. Typing a
// set file by hand is not supported, so an interactive terminal is refused.
func openSetArchive(args []string) (*zip.Reader, error) {
	if len(args) == 1 && args[0] != "-" {
		return mse.OpenArchiveFile(args[0])
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("manual card input is not supported; pass a set file path or pipe the archive")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading set archive from stdin: %w", err)
	}
	return mse.OpenArchive(data)
}
