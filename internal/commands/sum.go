package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/hashbox/hashbox/internal/config"
	"github.com/hashbox/hashbox/internal/digest"
	apperrors "github.com/hashbox/hashbox/internal/errors"
	"github.com/hashbox/hashbox/internal/log"
	"github.com/hashbox/hashbox/internal/manifest"
)

func CreateSumCommand() *SumCommand {
	gc := &SumCommand{
		fs: flag.NewFlagSet("sum", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.algorithm, "algorithm", "", "Digest algorithm: md5, sha1, sha256 or sha512 (default from config)")
	gc.fs.StringVar(&gc.format, "format", "", "Output format: gnu, bsd or template (default from config)")
	gc.fs.StringVar(&gc.template, "template", "", "Output line template, e.g. '{digest} {path}'")
	gc.fs.StringVar(&gc.text, "text", "", "Digest the given text instead of files")

	return gc
}

// SumCommand computes digests for files, stdin or a text literal and
// prints one manifest line per input.
type SumCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	algorithm string
	format    string
	template  string
	text      string

	textSet   bool
	algo      digest.Algorithm
	formatter manifest.Formatter
}

func (g *SumCommand) Name() string {
	return g.fs.Name()
}

func (g *SumCommand) Init(args []string, ctx *AppContext) error {
	// Digest lines go to stdout; keep logs away from it.
	log.SetForceStdErr(true)

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	// -text "" digests the empty string, so presence matters, not value.
	g.fs.Visit(func(f *flag.Flag) {
		if f.Name == "text" {
			g.textSet = true
		}
	})

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	if g.textSet && g.fs.NArg() > 0 {
		return apperrors.NewInvalidInputError("cannot combine -text with file arguments", nil)
	}

	algo := g.cfg.GetDefaultAlgorithm()
	if g.algorithm != "" {
		parsed, err := digest.Parse(g.algorithm)
		if err != nil {
			return err
		}
		algo = parsed
	}
	g.algo = algo

	if formatter, err := g.buildFormatter(); err != nil {
		return err
	} else {
		g.formatter = formatter
	}

	return nil
}

// buildFormatter resolves the output format from flags, falling back to
// the configuration.
func (g *SumCommand) buildFormatter() (manifest.Formatter, error) {
	if g.template != "" {
		return manifest.NewTemplate(g.template)
	}

	format := g.format
	if format == "" {
		format = g.cfg.General.OutputFormat
	}
	if format == config.OutputFormatTemplate && g.cfg.General.OutputTemplate == "" {
		return nil, apperrors.NewInvalidInputError("output format \"template\" requires -template or output_template in the config", nil)
	}

	return manifest.NewFormatter(format, g.cfg.General.OutputTemplate)
}

func (g *SumCommand) Run() error {
	if g.textSet {
		entry := manifest.Entry{
			Algorithm: g.algo,
			Hex:       digest.HexSumString(g.algo, g.text),
			Path:      "-",
			Size:      int64(len(g.text)),
		}
		_, err := fmt.Println(g.formatter.FormatLine(entry))
		return err
	}

	paths := g.fs.Args()
	if len(paths) == 0 {
		// No inputs reads stdin, like md5sum.
		paths = []string{"-"}
	}

	failures := 0
	for _, path := range paths {
		entry, err := g.sumOne(path)
		if err != nil {
			log.Errorf("%s: %v", path, err)
			failures++
			continue
		}
		if _, err := fmt.Println(g.formatter.FormatLine(entry)); err != nil {
			return err
		}
	}

	if failures > 0 {
		return fmt.Errorf("failed to digest %d of %d input(s)", failures, len(paths))
	}
	return nil
}

// sumOne digests a single path, where "-" means stdin.
func (g *SumCommand) sumOne(path string) (manifest.Entry, error) {
	if path == "-" {
		hex, n, err := digest.SumReader(g.algo, os.Stdin)
		if err != nil {
			return manifest.Entry{}, err
		}
		return manifest.Entry{Algorithm: g.algo, Hex: hex, Path: "-", Size: n}, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return manifest.Entry{}, err
	}
	if info.IsDir() {
		return manifest.Entry{}, apperrors.NewInvalidInputError("is a directory", nil)
	}

	hex, size, err := digest.SumFile(g.algo, path)
	if err != nil {
		return manifest.Entry{}, err
	}
	return manifest.Entry{Algorithm: g.algo, Hex: hex, Path: path, Size: size}, nil
}
