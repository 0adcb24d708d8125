// Package ledger reads blocks and account state from a QRL LevelDB state folder.
package ledger

import (
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

// Store is a read-only key-value view of the ledger.
type Store interface {
	Get(key []byte) ([]byte, error)
}

// LevelDBStore serves keys from a LevelDB database.
type LevelDBStore struct {
	db *leveldb.DB
}

// OpenLevelDB opens an existing state folder read-only.
func OpenLevelDB(path string) (*LevelDBStore, error) {
	if path == "" {
		return nil, errors.New("state folder is required")
	}

	db, err := leveldb.OpenFile(path, &opt.Options{
		ReadOnly:       true,
		ErrorIfMissing: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open leveldb %s: %w", path, err)
	}
	return &LevelDBStore{db: db}, nil
}

// OpenMemory opens an empty in-memory database.
func OpenMemory() (*LevelDBStore, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("open memory leveldb: %w", err)
	}
	return &LevelDBStore{db: db}, nil
}

// Get returns the value of key or ErrNotFound.
func (s *LevelDBStore) Get(key []byte) ([]byte, error) {
	value, err := s.db.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("leveldb get %x: %w", key, err)
	}
	return value, nil
}

// Put stores a value. Only fixture builders write to the ledger.
func (s *LevelDBStore) Put(key, value []byte) error {
	return s.db.Put(key, value, nil)
}

// Close releases the database handle.
func (s *LevelDBStore) Close() error {
	return s.db.Close()
}
