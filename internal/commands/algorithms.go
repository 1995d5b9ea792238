package commands

import (
	"flag"
	"fmt"

	"github.com/hashbox/hashbox/internal/digest"
	"github.com/hashbox/hashbox/internal/log"
)

func CreateAlgorithmsCommand() *AlgorithmsCommand {
	gc := &AlgorithmsCommand{
		fs: flag.NewFlagSet("algorithms", flag.ExitOnError),
	}
	return gc
}

// AlgorithmsCommand lists the supported digest algorithms.
type AlgorithmsCommand struct {
	fs *flag.FlagSet
}

func (g *AlgorithmsCommand) Name() string {
	return g.fs.Name()
}

func (g *AlgorithmsCommand) Init(args []string, ctx *AppContext) error {
	log.SetForceStdErr(true)
	return g.fs.Parse(args)
}

func (g *AlgorithmsCommand) Run() error {
	fmt.Printf("%-10s %12s %12s\n", "NAME", "DIGEST SIZE", "HEX LENGTH")
	for _, algo := range digest.Algorithms() {
		fmt.Printf("%-10s %12d %12d\n", algo, algo.Size(), algo.HexLength())
	}
	return nil
}
