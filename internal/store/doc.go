// Package store persists a digest index in BadgerDB.
//
// The index maps (path, algorithm) pairs to file records: the digest, the
// file size and modification time observed when it was computed, and the
// record update time. The "index" command uses it to skip files whose
// size and mtime are unchanged, and the watcher keeps it current as files
// change.
//
// # Example Usage
//
//	idx, err := store.Open("/var/lib/hashbox/index")
//	if err != nil {
//	    return err
//	}
//	defer idx.Close()
//
//	recs, err := idx.IndexFile("/var/data/blob.bin", []digest.Algorithm{digest.MD5})
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s  %s\n", recs[0].Hex, recs[0].Path)
//
// Records never expire; they are only replaced by a newer computation or
// deleted explicitly.
package store
