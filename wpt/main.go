// Command wpt is the whale portfolio tracker CLI.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/whaletrack/whale/cmd"
)

func main() {
	// Shell completion: a no-op in a normal run, answers the shell and
	// exits when invoked by the completion machinery.
	completion().Complete("wpt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands() {
		sub[c.Name()] = &complete.Command{}
	}
	sub["topic"] = &complete.Command{Args: predict.Something}
	sub["import"] = &complete.Command{Args: predict.Files("*.json")}

	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"file":      predict.Files("*.jsonl"),
			"api-url":   predict.Something,
			"api-token": predict.Nothing,
			"portfolio": predict.Something,
		},
	}
}
