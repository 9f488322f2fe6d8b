package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/warninglists/src/internal/commands"
	"github.com/maksimkurb/warninglists/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{}

	flag.StringVar(&ctx.ConfigPath, "config", "/etc/warninglists/warninglists.toml", "Path to configuration file")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Warning lists lookup tool\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  lookup <value...>       Print the lists containing each value (reads stdin without values)\n")
		fmt.Fprintf(os.Stderr, "  lists                   Print all loaded lists\n")
		fmt.Fprintf(os.Stderr, "  show <name>             Print a single list\n")
		fmt.Fprintf(os.Stderr, "  update                  Download the warning lists dataset\n")
		fmt.Fprintf(os.Stderr, "  serve                   Run the HTTP API and reload lists on change\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if ctx.Verbose {
		log.SetVerbose(true)
	}
	// Keep stdout clean for lookup output.
	log.SetForceStdErr(true)

	cmds := []commands.Runner{
		commands.CreateLookupCommand(),
		commands.CreateListsCommand(),
		commands.CreateShowCommand(),
		commands.CreateUpdateCommand(),
		commands.CreateServeCommand(version),
	}

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				if errors.Is(err, flag.ErrHelp) {
					os.Exit(0)
				}
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}
