package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/folionet/holdings"
	"github.com/google/subcommands"
)

// detectCmd holds the flags for the 'detect' subcommand.
type detectCmd struct {
	file    string
	headers bool
}

func (*detectCmd) Name() string     { return "detect" }
func (*detectCmd) Synopsis() string { return "detect the source format of a CSV export" }
func (*detectCmd) Usage() string {
	return `hld detect [-f <file>] [-headers]

  Detects which known source produced a CSV export, without importing it.
  Reads stdin when no file is given.

`
}

func (c *detectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "CSV file to inspect, stdin by default")
	f.BoolVar(&c.headers, "headers", false, "also print the normalized header tokens")
}

func (c *detectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	text, err := readInput(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		return subcommands.ExitFailure
	}

	result := holdings.ImportCSV(text)
	fmt.Printf("%s (%s)\n", result.Format, result.Source)
	if c.headers {
		for _, h := range result.RawHeaders {
			fmt.Println(h)
		}
	}
	return subcommands.ExitSuccess
}
