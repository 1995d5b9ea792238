package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hashbox/hashbox/internal/commands"
	"github.com/hashbox/hashbox/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	// Define flags
	flag.StringVar(&ctx.ConfigPath, "config", "", "Path to configuration file (optional, built-in defaults apply without one)")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Hashbox Digest Toolbox\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  sum                     Compute digests for files, stdin (-) or -text\n")
		fmt.Fprintf(os.Stderr, "  verify                  Check files against a digest manifest\n")
		fmt.Fprintf(os.Stderr, "  algorithms              List supported digest algorithms\n")
		fmt.Fprintf(os.Stderr, "  index                   Compute digests into the persistent index store\n")
		fmt.Fprintf(os.Stderr, "  watch                   Watch configured paths and recompute digests on change\n")
		fmt.Fprintf(os.Stderr, "  serve                   Run the REST API server\n")
		fmt.Fprintf(os.Stderr, "  config                  Print the effective configuration (use -upgrade to migrate)\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if ctx.Verbose {
		log.SetVerbose(true)
	}

	cmds := []commands.Runner{
		commands.CreateSumCommand(),
		commands.CreateVerifyCommand(),
		commands.CreateAlgorithmsCommand(),
		commands.CreateIndexCommand(),
		commands.CreateWatchCommand(),
		commands.CreateServeCommand(),
		commands.CreateConfigCommand(),
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
