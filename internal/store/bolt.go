package store

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/caloria-app/backend/internal/models"
)

const boltBucketProfile = "profile" // key: StorageKey -> UserProfile JSON

// BoltStore keeps the profile document in an embedded bbolt file. This is
// the default backend.
type BoltStore struct {
	db *bbolt.DB
}

// NewBoltStore opens (or creates) the bbolt database at path.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt store: %w", err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketProfile))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create profile bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Load() models.UserProfile {
	var data []byte
	if err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketProfile))
		if bucket == nil {
			return nil
		}
		if v := bucket.Get([]byte(StorageKey)); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	}); err != nil {
		return models.DefaultProfile()
	}

	return decodeProfile(data)
}

func (s *BoltStore) Save(profile models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketProfile)).Put([]byte(StorageKey), data)
	})
}

// Close closes the underlying database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
