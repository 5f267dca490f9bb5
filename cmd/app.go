// Package cmd implements the CLI application to import transaction
// histories.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

// Commands lists the subcommands of the application.
// A main package registers them on a Commander and executes the selected one.
var Commands = []subcommands.Command{
	&importCmd{},
	&detectCmd{},
	&formatsCmd{},
	&topicCmd{},
}

// readInput reads the text to import from a file, or from stdin when the
// path is empty or "-".
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", path, err)
	}
	return string(data), nil
}
