package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/folionet/holdings"
	"github.com/folionet/holdings/renderer"
	"github.com/google/subcommands"
)

// formatsCmd holds the flags for the 'formats' subcommand.
type formatsCmd struct {
	json bool
}

func (*formatsCmd) Name() string     { return "formats" }
func (*formatsCmd) Synopsis() string { return "list the supported source formats" }
func (*formatsCmd) Usage() string {
	return `hld formats [-json]

  Lists the source formats the importer recognizes, in detection display
  order.

`
}

func (c *formatsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the catalogue as JSON")
}

func (c *formatsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	formats := holdings.SupportedFormats()
	if c.json {
		data, err := json.MarshalIndent(formats, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding catalogue: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(data))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.FormatsMarkdown(formats))
	return subcommands.ExitSuccess
}
