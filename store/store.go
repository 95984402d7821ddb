// Package store persists core.Snapshots to a single bbolt database so
// a run can be paused and resumed across process restarts. Snapshots
// are JSON-encoded values in one shared bucket, keyed by name.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"go.etcd.io/bbolt"

	"github.com/sepro-lang/sepro/core"
)

// ErrNotFound is returned by Load when no snapshot is stored under
// the given name.
var ErrNotFound = errors.New("store: snapshot not found")

var bucketName = []byte("snapshots")

// Store is a bbolt-backed snapshot database.
type Store struct {
	Debug    bool
	filename string
	db       *bbolt.DB
}

// New returns a Store bound to filename, which must be opened with
// Open before Save/Load are used.
func New(filename string) (*Store, error) {
	return &Store{filename: filename}, nil
}

// Open opens the underlying bbolt database, creating the snapshot
// bucket if this is the first use of the file.
func (s *Store) Open(ctx context.Context) error {
	db, err := bbolt.Open(s.filename, 0o644, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return err
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	}); err != nil {
		db.Close()
		return err
	}

	s.db = db
	return nil
}

// Close closes the underlying database.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) logf(format string, args ...interface{}) {
	if s == nil || !s.Debug {
		return
	}
	log.Printf("store: "+format, args...)
}

// Save JSON-encodes snap and stores it under name, overwriting
// whatever was previously stored there.
func (s *Store) Save(ctx context.Context, name string, snap *core.Snapshot) error {
	bs, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	s.logf("Save %s", name)

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(name), bs)
	})
}

// Load decodes and returns the Snapshot stored under name, or
// ErrNotFound if there isn't one.
func (s *Store) Load(ctx context.Context, name string) (*core.Snapshot, error) {
	var bs []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(name))
		if v == nil {
			return nil
		}
		bs = make([]byte, len(v))
		copy(bs, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if bs == nil {
		return nil, ErrNotFound
	}

	var snap core.Snapshot
	if err := json.Unmarshal(bs, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Delete removes the snapshot stored under name, if any.
func (s *Store) Delete(ctx context.Context, name string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(name))
	})
}
