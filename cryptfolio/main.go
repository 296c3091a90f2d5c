// Command cryptfolio displays a live crypto portfolio table in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"io/fs"
	"log"
	"os"
	"path"

	"github.com/etnz/cryptfolio/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("error loading .env file: %v", err)
	}

	cmd.Completion().Complete("cryptfolio")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	if !*cmd.Verbose {
		log.SetOutput(io.Discard)
	}
	switch {
	case *cmd.Limit:
		flag.CommandLine.Parse([]string{"limit"})
	case flag.NArg() == 0:
		flag.CommandLine.Parse([]string{"watch"})
	}
	os.Exit(int(commander.Execute(context.Background())))
}
