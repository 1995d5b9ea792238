package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/hashbox/hashbox/internal/config"
	"github.com/hashbox/hashbox/internal/digest"
	apperrors "github.com/hashbox/hashbox/internal/errors"
	"github.com/hashbox/hashbox/internal/log"
	"github.com/hashbox/hashbox/internal/store"
)

// Watcher recomputes digests for configured targets when their files change.
type Watcher struct {
	cfg *config.Config
	st  *store.Store // nil when no index store is attached
	fsw *fsnotify.Watcher

	// Watched path -> owning target. Directories and plain files are kept
	// separately because events on files inside a directory arrive with the
	// file's own path, not the directory's.
	dirs  map[string]*config.WatchTarget
	files map[string]*config.WatchTarget
}

// New creates a watcher for every [[watch]] target in the configuration.
// The store may be nil; targets with update_index then only log digests.
func New(cfg *config.Config, st *store.Store) (*Watcher, error) {
	if len(cfg.Watches) == 0 {
		return nil, apperrors.NewWatchError("no watch targets configured", nil)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, apperrors.NewWatchError("failed to create filesystem watcher", err)
	}

	w := &Watcher{
		cfg:   cfg,
		st:    st,
		fsw:   fsw,
		dirs:  make(map[string]*config.WatchTarget),
		files: make(map[string]*config.WatchTarget),
	}

	for _, target := range cfg.Watches {
		if err := w.addTarget(target); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	return w, nil
}

// Close releases the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Run processes filesystem events until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	log.Infof("[WATCH] Watching %d target(s)", len(w.cfg.Watches))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.Warnf("[WATCH] Watcher error: %v", err)
		}
	}
}

// addTarget registers a single watch target with the filesystem watcher.
func (w *Watcher) addTarget(target *config.WatchTarget) error {
	path := target.GetAbsolutePath(w.cfg)

	info, err := os.Stat(path)
	if err != nil {
		return apperrors.NewWatchError("watch target is not accessible: "+path, err)
	}

	if !info.IsDir() {
		if err := w.fsw.Add(path); err != nil {
			return apperrors.NewWatchError("failed to watch file: "+path, err)
		}
		w.files[path] = target
		log.Debugf("[WATCH] Watching file %s", path)
		return nil
	}

	return w.addDirTree(path, target)
}

// addDirTree registers a directory and, for recursive targets, every
// directory below it.
func (w *Watcher) addDirTree(dir string, target *config.WatchTarget) error {
	if err := w.addDir(dir, target); err != nil {
		return err
	}
	if !target.Recursive {
		return nil
	}

	return filepath.WalkDir(dir, func(sub string, entry fs.DirEntry, err error) error {
		if err != nil {
			log.Warnf("[WATCH] Skipping %s: %v", sub, err)
			return nil
		}
		if !entry.IsDir() || sub == dir {
			return nil
		}
		return w.addDir(sub, target)
	})
}

// addDir registers a directory and records its owning target.
func (w *Watcher) addDir(dir string, target *config.WatchTarget) error {
	if err := w.fsw.Add(dir); err != nil {
		return apperrors.NewWatchError("failed to watch directory: "+dir, err)
	}
	w.dirs[dir] = target
	log.Debugf("[WATCH] Watching directory %s", dir)
	return nil
}

// targetFor resolves the watch target responsible for an event path.
func (w *Watcher) targetFor(path string) *config.WatchTarget {
	if target, ok := w.files[path]; ok {
		return target
	}
	if target, ok := w.dirs[filepath.Dir(path)]; ok {
		return target
	}
	return nil
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	target := w.targetFor(path)
	if target == nil {
		return
	}

	if event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename) {
		w.handleRemoved(path, target)
		return
	}

	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		// The file can disappear between the event and the stat.
		log.Debugf("[WATCH] Ignoring %s: %v", path, err)
		return
	}

	if info.IsDir() {
		// New directory under a recursive target: start watching it too.
		if event.Op.Has(fsnotify.Create) && target.Recursive {
			if err := w.addDirTree(path, target); err != nil {
				log.Warnf("[WATCH] Failed to watch new directory %s: %v", path, err)
			}
		}
		return
	}

	if !info.Mode().IsRegular() {
		return
	}

	w.digestFile(path, target)
}

// handleRemoved drops index records for files that no longer exist.
func (w *Watcher) handleRemoved(path string, target *config.WatchTarget) {
	delete(w.files, path)
	delete(w.dirs, path)

	if w.st == nil || !target.UpdateIndex {
		return
	}

	deleted, err := w.st.DeletePath(path)
	if err != nil {
		log.Warnf("[WATCH] Failed to drop index records for %s: %v", path, err)
		return
	}
	if deleted > 0 {
		log.Infof("[WATCH] %s removed, dropped %d index record(s)", path, deleted)
	}
}

// digestFile recomputes the target's algorithms for a changed file.
func (w *Watcher) digestFile(path string, target *config.WatchTarget) {
	algos := target.GetAlgorithms(w.cfg)

	if w.st != nil && target.UpdateIndex {
		records, err := w.st.IndexFile(path, algos)
		if err != nil {
			log.Warnf("[WATCH] Failed to index %s: %v", path, err)
			return
		}
		for _, rec := range records {
			log.Infof("[WATCH] %s changed: %s=%s (indexed)", path, rec.Algorithm, rec.Hex)
		}
		return
	}

	for _, algo := range algos {
		hex, _, err := digest.SumFile(algo, path)
		if err != nil {
			log.Warnf("[WATCH] Failed to digest %s: %v", path, err)
			return
		}
		log.Infof("[WATCH] %s changed: %s=%s", path, algo, hex)
	}
}
