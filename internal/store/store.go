package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dgraph-io/badger"

	"github.com/hashbox/hashbox/internal/digest"
	apperrors "github.com/hashbox/hashbox/internal/errors"
)

// ErrNotFound is returned by Get when no record exists for the key.
var ErrNotFound = errors.New("record not found")

// FileRecord is one indexed digest.
type FileRecord struct {
	Path      string           `json:"path"`
	Algorithm digest.Algorithm `json:"algorithm"`
	Hex       string           `json:"hex"`
	Size      int64            `json:"size"`
	ModTime   time.Time        `json:"mtime"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Matches reports whether the record still describes the file: same size
// and same modification time. Used as the fast path to skip rehashing.
func (r *FileRecord) Matches(info os.FileInfo) bool {
	return r.Size == info.Size() && r.ModTime.Equal(info.ModTime())
}

// Store is a BadgerDB-backed digest index.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the index in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, apperrors.NewStoreError(fmt.Sprintf("failed to open index at %s", dir), err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database. A nil store closes cleanly, so
// callers holding an optional index can always defer it.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// Paths cannot contain NUL, so it cleanly separates path from algorithm.
func recordKey(path string, algo digest.Algorithm) []byte {
	return []byte(path + "\x00" + string(algo))
}

func pathPrefix(path string) []byte {
	return []byte(path + "\x00")
}

// Put stores a record, stamping its update time.
func (s *Store) Put(rec FileRecord) error {
	rec.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(rec)
	if err != nil {
		return apperrors.NewStoreError("failed to encode record", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(recordKey(rec.Path, rec.Algorithm), data)
	})
	if err != nil {
		return apperrors.NewStoreError(fmt.Sprintf("failed to store record for %s", rec.Path), err)
	}
	return nil
}

// Get loads the record for (path, algorithm). It returns ErrNotFound when
// the file was never indexed with that algorithm.
func (s *Store) Get(path string, algo digest.Algorithm) (*FileRecord, error) {
	var rec FileRecord

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(recordKey(path, algo))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(data []byte) error {
			return json.Unmarshal(data, &rec)
		})
	})
	if err == ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, apperrors.NewStoreError(fmt.Sprintf("failed to load record for %s", path), err)
	}

	return &rec, nil
}

// Delete removes the record for (path, algorithm). Deleting an absent
// record is not an error.
func (s *Store) Delete(path string, algo digest.Algorithm) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(recordKey(path, algo))
	})
	if err != nil {
		return apperrors.NewStoreError(fmt.Sprintf("failed to delete record for %s", path), err)
	}
	return nil
}

// DeletePath removes the records for every algorithm indexed for path and
// returns how many were removed.
func (s *Store) DeletePath(path string) (int, error) {
	deleted := 0

	err := s.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := pathPrefix(path)
		var keys [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}

		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
			deleted++
		}
		return nil
	})
	if err != nil {
		return deleted, apperrors.NewStoreError(fmt.Sprintf("failed to delete records for %s", path), err)
	}

	return deleted, nil
}

// Walk calls fn for every record in the index. Returning an error from fn
// stops the walk.
func (s *Store) Walk(fn func(FileRecord) error) error {
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var rec FileRecord
			err := it.Item().Value(func(data []byte) error {
				return json.Unmarshal(data, &rec)
			})
			if err != nil {
				return err
			}

			if err := fn(rec); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.NewStoreError("failed to walk index", err)
	}
	return nil
}

// Len counts the records in the index.
func (s *Store) Len() (int, error) {
	count := 0

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, apperrors.NewStoreError("failed to count index records", err)
	}

	return count, nil
}

// IndexFile digests the file with every algorithm and stores one record
// each. The returned records carry the freshly computed digests.
func (s *Store) IndexFile(path string, algos []digest.Algorithm) ([]FileRecord, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, apperrors.NewStoreError(fmt.Sprintf("failed to stat %s", path), err)
	}

	records := make([]FileRecord, 0, len(algos))
	for _, algo := range algos {
		hexSum, size, err := digest.SumFile(algo, path)
		if err != nil {
			return records, apperrors.NewStoreError(fmt.Sprintf("failed to digest %s", path), err)
		}

		rec := FileRecord{
			Path:      path,
			Algorithm: algo,
			Hex:       hexSum,
			Size:      size,
			ModTime:   info.ModTime(),
		}
		if err := s.Put(rec); err != nil {
			return records, err
		}
		records = append(records, rec)
	}

	return records, nil
}

// RunGC runs one round of value log garbage collection. Badger reports
// ErrNoRewrite when there was nothing to collect; that is not an error.
func (s *Store) RunGC() error {
	err := s.db.RunValueLogGC(0.5)
	if err != nil && !errors.Is(err, badger.ErrNoRewrite) {
		return apperrors.NewStoreError("value log GC failed", err)
	}
	return nil
}
