package boltstore

import (
	"context"
	"errors"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/dmitrymomot/memid/pkg/registry"
)

// Store reserves identifiers as keys of a bbolt bucket. The file is locked by
// one process at a time, so Store suits a single CLI or server instance.
type Store struct {
	db     *bolt.DB
	bucket []byte
}

// Open opens or creates the database at cfg.Path and ensures the bucket exists.
func Open(cfg Config) (*Store, error) {
	bucket := cfg.Bucket
	if bucket == "" {
		bucket = "ids"
	}

	db, err := bolt.Open(cfg.Path, 0o600, &bolt.Options{Timeout: cfg.OpenTimeout})
	if err != nil {
		return nil, errors.Join(ErrFailedToOpen, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Join(ErrFailedToOpen, err)
	}

	return &Store{db: db, bucket: []byte(bucket)}, nil
}

func (s *Store) Reserve(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, registry.ErrEmptyID
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	reserved := false
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b.Get([]byte(id)) != nil {
			return nil
		}
		reserved = true
		return b.Put([]byte(id), []byte(time.Now().UTC().Format(time.RFC3339Nano)))
	})
	if err != nil {
		return false, err
	}
	return reserved, nil
}

// Release frees id so it can be reserved again.
func (s *Store) Release(_ context.Context, id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Delete([]byte(id))
	})
}

// Len reports how many identifiers are reserved.
func (s *Store) Len() (int, error) {
	n := 0
	err := s.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(s.bucket).Stats().KeyN
		return nil
	})
	return n, err
}

// Healthcheck verifies the bucket is still readable.
func (s *Store) Healthcheck(context.Context) error {
	err := s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(s.bucket) == nil {
			return errors.New("bucket missing")
		}
		return nil
	})
	if err != nil {
		return errors.Join(ErrHealthcheckFailed, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
