// Package watcher monitors configured files and directories and recomputes
// digests when their content changes.
//
// A Watcher is built from the [[watch]] sections of the configuration. Each
// target names a file or directory; directory targets can be recursive. When
// a watched file is written or created, the watcher computes the target's
// algorithms over the new content and logs the digests. Targets with
// update_index enabled additionally write the records to the index store,
// and removals delete the file's records from it.
//
// # Lifecycle
//
//	w, err := watcher.New(cfg, st)
//	if err != nil { ... }
//	defer w.Close()
//	err = w.Run(ctx) // blocks until ctx is cancelled
//
// Run returns nil on context cancellation, so it composes with the
// restartable runner used by the serve and watch commands.
package watcher
