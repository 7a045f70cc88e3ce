package manifest

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	bolt "go.etcd.io/bbolt"
)

var (
	runsBucket = []byte("runs")
	metaBucket = []byte("meta")

	lastRunKey = []byte("last_run_id")
)

// openTimeout bounds the wait for the file lock held by another run
const openTimeout = time.Second

// BboltStore implements Store using bbolt, one JSON document per run
type BboltStore struct {
	db     *bolt.DB
	logger zerolog.Logger
}

func NewBboltStore(dbPath string, logger zerolog.Logger) (*BboltStore, error) {
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open bbolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{runsBucket, metaBucket} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("failed to create bucket: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	logger.Debug().Str("path", dbPath).Msg("manifest store opened")
	return &BboltStore{db: db, logger: logger}, nil
}

func (s *BboltStore) Close() error {
	return s.db.Close()
}

func (s *BboltStore) SaveRun(run *Run) error {
	data, err := encodeJSON(run)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(runsBucket).Put([]byte(run.ID), data); err != nil {
			return err
		}
		return tx.Bucket(metaBucket).Put(lastRunKey, []byte(run.ID))
	})
}

func (s *BboltStore) GetRun(id string) (*Run, error) {
	var run *Run

	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(runsBucket).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		run = &Run{}
		return decodeJSON(data, run)
	})
	if err != nil {
		return nil, err
	}
	return run, nil
}

func (s *BboltStore) LastRunID() (string, error) {
	var id string
	err := s.db.View(func(tx *bolt.Tx) error {
		id = string(tx.Bucket(metaBucket).Get(lastRunKey))
		return nil
	})
	return id, err
}

func (s *BboltStore) LoadRuns() ([]*Run, error) {
	var runs []*Run

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).ForEach(func(k, v []byte) error {
			var run Run
			if err := decodeJSON(v, &run); err != nil {
				s.logger.Warn().Err(err).Str("run", string(k)).Msg("skipping corrupted run")
				return nil
			}
			runs = append(runs, &run)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sortNewestFirst(runs)
	return runs, nil
}
