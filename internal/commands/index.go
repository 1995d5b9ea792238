package commands

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashbox/hashbox/internal/config"
	"github.com/hashbox/hashbox/internal/digest"
	apperrors "github.com/hashbox/hashbox/internal/errors"
	"github.com/hashbox/hashbox/internal/log"
	"github.com/hashbox/hashbox/internal/store"
)

func CreateIndexCommand() *IndexCommand {
	gc := &IndexCommand{
		fs: flag.NewFlagSet("index", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.algorithm, "algorithm", "", "Digest algorithm for path arguments (default from config)")
	gc.fs.BoolVar(&gc.check, "check", false, "Report new, changed and missing files against the index without writing")
	gc.fs.BoolVar(&gc.force, "force", false, "Recompute digests even when size and mtime are unchanged")

	return gc
}

// IndexCommand computes digests into the persistent index store. Paths come
// from the arguments (directories are walked recursively) or, without
// arguments, from the [[watch]] sections of the configuration.
type IndexCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	algorithm string
	check     bool
	force     bool

	algo digest.Algorithm
}

// indexItem is one file to digest with the algorithms that apply to it.
type indexItem struct {
	path  string
	algos []digest.Algorithm
}

func (g *IndexCommand) Name() string {
	return g.fs.Name()
}

func (g *IndexCommand) Init(args []string, ctx *AppContext) error {
	log.SetForceStdErr(true)

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	if !g.cfg.HasIndex() {
		return apperrors.NewConfigError("no [index] section configured, nowhere to store digests", nil)
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

	if g.fs.NArg() == 0 && len(g.cfg.Watches) == 0 {
		return apperrors.NewInvalidInputError("no paths given and no [[watch]] targets configured", nil)
	}

	return nil
}

func (g *IndexCommand) Run() error {
	st, err := openStoreIfConfigured(g.cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	items, roots, err := g.collectItems()
	if err != nil {
		return err
	}

	if g.check {
		return g.runCheck(st, items, roots)
	}
	return g.runIndex(st, items)
}

// collectItems resolves the files to digest and the root paths they came
// from. Directory roots are walked for regular files.
func (g *IndexCommand) collectItems() ([]indexItem, []string, error) {
	var items []indexItem
	var roots []string

	addPath := func(path string, algos []digest.Algorithm, recursive bool) error {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		roots = append(roots, path)

		if !info.IsDir() {
			items = append(items, indexItem{path: path, algos: algos})
			return nil
		}

		return filepath.WalkDir(path, func(sub string, entry fs.DirEntry, err error) error {
			if err != nil {
				log.Warnf("Skipping %s: %v", sub, err)
				return nil
			}
			if entry.IsDir() {
				if !recursive && sub != path {
					return filepath.SkipDir
				}
				return nil
			}
			if info, err := entry.Info(); err != nil || !info.Mode().IsRegular() {
				return nil
			}
			items = append(items, indexItem{path: sub, algos: algos})
			return nil
		})
	}

	if g.fs.NArg() > 0 {
		for _, arg := range g.fs.Args() {
			abs, err := filepath.Abs(arg)
			if err != nil {
				return nil, nil, err
			}
			if err := addPath(abs, []digest.Algorithm{g.algo}, true); err != nil {
				return nil, nil, err
			}
		}
		return items, roots, nil
	}

	for _, target := range g.cfg.Watches {
		if err := addPath(target.GetAbsolutePath(g.cfg), target.GetAlgorithms(g.cfg), target.Recursive); err != nil {
			return nil, nil, err
		}
	}
	return items, roots, nil
}

// runIndex writes digests for every item, skipping files whose size and
// mtime match their stored record.
func (g *IndexCommand) runIndex(st *store.Store, items []indexItem) error {
	indexed, skipped, failures := 0, 0, 0

	for _, item := range items {
		info, err := os.Stat(item.path)
		if err != nil {
			log.Errorf("%s: %v", item.path, err)
			failures++
			continue
		}

		needed := item.algos
		if !g.force {
			needed = nil
			for _, algo := range item.algos {
				rec, err := st.Get(item.path, algo)
				if err == nil && rec.Matches(info) {
					skipped++
					continue
				}
				needed = append(needed, algo)
			}
		}
		if len(needed) == 0 {
			continue
		}

		records, err := st.IndexFile(item.path, needed)
		if err != nil {
			log.Errorf("%s: %v", item.path, err)
			failures++
			continue
		}
		for _, rec := range records {
			log.Infof("Indexed %s: %s=%s", rec.Path, rec.Algorithm, rec.Hex)
			indexed++
		}
	}

	if err := st.RunGC(); err != nil {
		log.Debugf("Index GC: %v", err)
	}

	log.Infof("Indexed %d digest(s), skipped %d unchanged, %d failure(s)", indexed, skipped, failures)

	if failures > 0 {
		return fmt.Errorf("failed to index %d file(s)", failures)
	}
	return nil
}

// runCheck compares the current filesystem state against the index without
// writing anything.
func (g *IndexCommand) runCheck(st *store.Store, items []indexItem, roots []string) error {
	added, changed, missing := 0, 0, 0

	for _, item := range items {
		for _, algo := range item.algos {
			rec, err := st.Get(item.path, algo)
			if errors.Is(err, store.ErrNotFound) {
				fmt.Printf("%s: NEW (%s)\n", item.path, algo)
				added++
				continue
			}
			if err != nil {
				return err
			}

			hex, _, err := digest.SumFile(algo, item.path)
			if err != nil {
				log.Errorf("%s: %v", item.path, err)
				continue
			}
			if hex != rec.Hex {
				fmt.Printf("%s: CHANGED (%s)\n", item.path, algo)
				changed++
			} else {
				fmt.Printf("%s: OK (%s)\n", item.path, algo)
			}
		}
	}

	// Records under the checked roots whose files no longer exist.
	err := st.Walk(func(rec store.FileRecord) error {
		if !underAnyRoot(rec.Path, roots) {
			return nil
		}
		if _, err := os.Stat(rec.Path); os.IsNotExist(err) {
			fmt.Printf("%s: MISSING (%s)\n", rec.Path, rec.Algorithm)
			missing++
		}
		return nil
	})
	if err != nil {
		return err
	}

	if added+changed+missing > 0 {
		return fmt.Errorf("index check found %d difference(s)", added+changed+missing)
	}

	log.Infof("Index is up to date (%d digest(s) checked)", len(items))
	return nil
}

// underAnyRoot reports whether path equals one of the roots or lives below
// a directory root.
func underAnyRoot(path string, roots []string) bool {
	for _, root := range roots {
		if path == root || strings.HasPrefix(path, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
