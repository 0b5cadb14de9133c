package storage

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var kvBucket = []byte("kv")

// BoltStore keeps values in a single bbolt bucket.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the bbolt file at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(kvBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Get(key string) (string, bool, error) {
	var (
		value string
		ok    bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(kvBucket).Get([]byte(key))
		if v != nil {
			// v is only valid inside the transaction.
			value, ok = string(v), true
		}
		return nil
	})
	return value, ok, err
}

func (s *BoltStore) Set(key, value string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(kvBucket).Put([]byte(key), []byte(value))
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
