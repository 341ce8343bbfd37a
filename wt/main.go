package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/TitouanLeBrun/wealthtracker-sub001/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the wt command line for shell completion. It exits
// early when invoked by the shell completion machinery.
func completion() {
	dateFlags := map[string]complete.Predictor{"d": predict.Nothing}
	spec := &complete.Command{
		Sub: map[string]*complete.Command{
			"declare":    {Flags: map[string]complete.Predictor{"id": predict.Nothing, "ticker": predict.Nothing, "price": predict.Nothing}},
			"category":   {Flags: map[string]complete.Predictor{"id": predict.Nothing, "name": predict.Nothing}},
			"objective":  {Flags: map[string]complete.Predictor{"target": predict.Nothing, "years": predict.Nothing, "rate": predict.Nothing}},
			"buy":        {Flags: map[string]complete.Predictor{"a": predict.Nothing, "q": predict.Nothing, "p": predict.Nothing}},
			"sell":       {Flags: map[string]complete.Predictor{"a": predict.Nothing, "q": predict.Nothing, "p": predict.Nothing}},
			"tx":         {Flags: dateFlags},
			"summary":    {Flags: dateFlags},
			"categories": {Flags: dateFlags},
			"wealth":     {Flags: dateFlags},
			"project":    {},
			"chart":      {Flags: map[string]complete.Predictor{"r": predict.Set{"1m", "3m", "6m", "ytd", "1y", "5y", "all"}}},
			"fmt":        {},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
		},
	}
	spec.Complete("wt")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
