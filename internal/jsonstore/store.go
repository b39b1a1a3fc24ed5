// Package jsonstore persists each collection as one pretty-printed
// UTF-8 JSON array file inside a data directory. Every save rewrites
// the whole file atomically; every load reads the whole file.
//
// The store assumes a single process and a single writer. Two processes
// pointed at the same data directory clobber each other's writes, last
// writer wins.
package jsonstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Collection file names inside the data directory.
const (
	UsersFile   = "users.json"
	BooksFile   = "books.json"
	ReviewsFile = "reviews.json"
	SharesFile  = "shares.json"
)

// CollectionFiles lists every store file for enumeration.
var CollectionFiles = []string{UsersFile, BooksFile, ReviewsFile, SharesFile}

// Store reads and writes whole collections under a data directory.
type Store struct {
	dataDir string
	logger  *zap.Logger
}

// Open binds a Store to dataDir, creating the directory if it does not
// exist. A nil logger disables logging.
func Open(dataDir string, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{dataDir: dataDir, logger: logger}, nil
}

// DataDir returns the directory the store reads and writes.
func (s *Store) DataDir() string {
	return s.dataDir
}

// EnsureFiles creates any missing collection files as empty arrays so a
// fresh data directory round-trips cleanly.
func (s *Store) EnsureFiles() error {
	for _, file := range CollectionFiles {
		path := filepath.Join(s.dataDir, file)
		_, err := os.Stat(path)
		if err == nil {
			continue
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("stat %s: %w", file, err)
		}
		if err := writeAtomic(path, []byte("[]\n")); err != nil {
			return fmt.Errorf("initializing %s: %w", file, err)
		}
	}
	return nil
}

// readCollection loads one collection file. A missing file is an empty
// collection and stays silent. A file that exists but does not parse is
// also treated as empty, with a logged warning: load never fails, so a
// damaged store degrades to a fresh one instead of taking the
// application down. Records that fail to decode individually are
// skipped, each with a warning.
func readCollection[T any](s *Store, file string) []T {
	path := filepath.Join(s.dataDir, file)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("reading collection",
				zap.String("file", file), zap.Error(err))
		}
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		s.logger.Warn("corrupt collection file, treating as empty",
			zap.String("file", file), zap.Error(err))
		return nil
	}

	records := make([]T, 0, len(raws))
	for i, raw := range raws {
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			s.logger.Warn("skipping malformed record",
				zap.String("file", file), zap.Int("index", i), zap.Error(err))
			continue
		}
		records = append(records, rec)
	}
	return records
}

// writeCollection rewrites one collection file with the full record
// sequence in the given order. An empty collection is written as [],
// never null.
func writeCollection[T any](s *Store, file string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", file, err)
	}
	data = append(data, '\n')
	if err := writeAtomic(filepath.Join(s.dataDir, file), data); err != nil {
		return fmt.Errorf("writing %s: %w", file, err)
	}
	return nil
}

// writeAtomic writes data to path via the temp-file, fsync, rename
// pattern so readers never observe a partially written file.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".json-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
