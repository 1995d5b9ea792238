package commands

import (
	"flag"
	"fmt"
	"os"

	apperrors "github.com/hashbox/hashbox/internal/errors"
	"github.com/hashbox/hashbox/internal/log"
	"github.com/hashbox/hashbox/internal/manifest"
)

func CreateVerifyCommand() *VerifyCommand {
	gc := &VerifyCommand{
		fs: flag.NewFlagSet("verify", flag.ExitOnError),
	}

	gc.fs.BoolVar(&gc.quiet, "quiet", false, "Do not print OK lines for files that verify clean")
	gc.fs.StringVar(&gc.baseDir, "base-dir", "", "Resolve relative manifest paths against this directory (default: working directory)")

	return gc
}

// VerifyCommand checks files against one or more digest manifests, the way
// md5sum -c does.
type VerifyCommand struct {
	fs *flag.FlagSet

	quiet   bool
	baseDir string
}

func (g *VerifyCommand) Name() string {
	return g.fs.Name()
}

func (g *VerifyCommand) Init(args []string, ctx *AppContext) error {
	// Per-file status lines go to stdout; keep logs away from it.
	log.SetForceStdErr(true)

	return g.fs.Parse(args)
}

func (g *VerifyCommand) Run() error {
	paths := g.fs.Args()
	if len(paths) == 0 {
		// No manifests reads stdin, like md5sum -c.
		paths = []string{"-"}
	}

	var results []manifest.Result
	malformed := 0

	for _, path := range paths {
		m, err := g.parseManifest(path)
		if err != nil {
			return err
		}

		malformed += len(m.Malformed)
		for _, bad := range m.Malformed {
			log.Warnf("%s: %s", path, bad)
		}

		results = append(results, manifest.Verify(m, g.baseDir)...)
	}

	if len(results) == 0 {
		return apperrors.NewManifestError("no valid digest lines found", nil)
	}

	for _, res := range results {
		switch res.Status {
		case manifest.StatusOK:
			if !g.quiet {
				fmt.Printf("%s: OK\n", res.Entry.Path)
			}
		case manifest.StatusMismatch:
			fmt.Printf("%s: FAILED\n", res.Entry.Path)
		case manifest.StatusMissing:
			fmt.Printf("%s: MISSING\n", res.Entry.Path)
		case manifest.StatusUnreadable:
			fmt.Printf("%s: FAILED open or read\n", res.Entry.Path)
		}
	}

	summary := manifest.Summarize(results)

	if malformed > 0 {
		log.Warnf("%d line(s) improperly formatted", malformed)
	}
	if summary.Missing > 0 {
		log.Warnf("%d listed file(s) missing", summary.Missing)
	}
	if summary.Unreadable > 0 {
		log.Warnf("%d listed file(s) could not be read", summary.Unreadable)
	}
	if summary.Mismatched > 0 {
		log.Warnf("%d computed digest(s) did NOT match", summary.Mismatched)
	}

	if summary.Failed() {
		failed := summary.Mismatched + summary.Missing + summary.Unreadable
		return fmt.Errorf("verification failed for %d of %d file(s)", failed, len(results))
	}

	return nil
}

// parseManifest reads a manifest file, where "-" means stdin.
func (g *VerifyCommand) parseManifest(path string) (*manifest.Manifest, error) {
	if path == "-" {
		return manifest.Parse(os.Stdin)
	}
	return manifest.ParseFile(path)
}
