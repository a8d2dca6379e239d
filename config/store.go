package config

import (
	bolt "go.etcd.io/bbolt"

	"github.com/vidpipe/webrender/errors"
)

var bucketSources = []byte("sources")

// Store persists per-source settings documents keyed by source ID.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) a settings database at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, errors.Store("open settings database", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSources)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Store("initialize sources bucket", err)
	}
	return &Store{db: db}, nil
}

// Save writes the settings document for a source.
func (s *Store) Save(id string, settings Settings) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSources).Put([]byte(id), settings.JSON())
	})
	if err != nil {
		return errors.Store("save settings for "+id, err)
	}
	return nil
}

// Load reads the settings document for a source. Missing sources return
// an empty document and ok=false.
func (s *Store) Load(id string) (Settings, bool, error) {
	var doc []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketSources).Get([]byte(id))
		if v != nil {
			doc = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return Settings{}, false, errors.Store("load settings for "+id, err)
	}
	if doc == nil {
		return Settings{}, false, nil
	}
	settings, err := FromJSON(doc)
	if err != nil {
		return Settings{}, false, err
	}
	return settings, true, nil
}

// All returns every stored source ID and its settings.
func (s *Store) All() (map[string]Settings, error) {
	out := make(map[string]Settings)
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSources).ForEach(func(k, v []byte) error {
			settings, err := FromJSON(append([]byte(nil), v...))
			if err != nil {
				return err
			}
			out[string(k)] = settings
			return nil
		})
	})
	if err != nil {
		return nil, errors.Store("enumerate stored settings", err)
	}
	return out, nil
}

// Delete removes the settings document for a source, if present.
func (s *Store) Delete(id string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSources).Delete([]byte(id))
	})
	if err != nil {
		return errors.Store("delete settings for "+id, err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return errors.Store("close settings database", err)
	}
	return nil
}
