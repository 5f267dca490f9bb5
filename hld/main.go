package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/folionet/holdings"
	"github.com/folionet/holdings/cmd"
	"github.com/folionet/holdings/docs"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion registers shell completion for the binary. It is a no-op
// outside of a shell completion request.
func completion() {
	var formatIDs []string
	for _, f := range holdings.SupportedFormats() {
		formatIDs = append(formatIDs, string(f.ID))
	}

	importFlags := map[string]complete.Predictor{
		"f":       predict.Files("*.csv"),
		"format":  predict.Set(formatIDs),
		"mapping": predict.Nothing,
		"json":    predict.Nothing,
		"summary": predict.Nothing,
	}
	root := &complete.Command{
		Sub: map[string]*complete.Command{
			"import": {Flags: importFlags},
			"detect": {Flags: map[string]complete.Predictor{
				"f":       predict.Files("*.csv"),
				"headers": predict.Nothing,
			}},
			"formats": {Flags: map[string]complete.Predictor{
				"json": predict.Nothing,
			}},
			"topic": {Args: topicPredictor{}},
		},
	}
	root.Complete("hld")
}

// topicPredictor completes documentation topic names.
type topicPredictor struct{}

func (topicPredictor) Predict(prefix string) []string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return topics
}
