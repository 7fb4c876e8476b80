// Package history persists suite run reports so past verification results
// can be listed and inspected after the fact.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/hostspec/hostspec/pkg/manifest"
)

// Bucket names inside the history database.
const (
	bucketRuns  = "runs"  // run ID -> full run record
	bucketIndex = "index" // timestamp/run ID -> run ID (chronological order)
)

// ErrRunNotFound is returned by Get when no run has the requested ID.
var ErrRunNotFound = errors.New("run not found")

// Run is a persisted suite run.
type Run struct {
	ID       string               `json:"id" yaml:"id"`
	Recorded time.Time            `json:"recorded" yaml:"recorded"`
	Report   manifest.SuiteReport `json:"report" yaml:"report"`
}

// Store is a bbolt-backed run history.
type Store struct {
	db *bolt.DB
	mu sync.RWMutex
}

// Open creates or opens the history database at the given path, creating
// parent directories as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{bucketRuns, bucketIndex} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init buckets: %w", err)
	}

	return &Store{db: db}, nil
}

// Append records a finished suite run and returns it with its assigned ID.
func (s *Store) Append(report manifest.SuiteReport) (Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run := Run{
		ID:       uuid.NewString(),
		Recorded: time.Now().UTC(),
		Report:   report,
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(run)
		if err != nil {
			return fmt.Errorf("marshal run: %w", err)
		}
		if err := tx.Bucket([]byte(bucketRuns)).Put([]byte(run.ID), data); err != nil {
			return err
		}
		return tx.Bucket([]byte(bucketIndex)).Put([]byte(indexKey(run)), []byte(run.ID))
	})
	if err != nil {
		return Run{}, err
	}
	return run, nil
}

// Get returns the run with the given ID, or ErrRunNotFound.
func (s *Store) Get(id string) (Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var run Run
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(bucketRuns)).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		return json.Unmarshal(data, &run)
	})
	if err != nil {
		return Run{}, err
	}
	return run, nil
}

// List returns the most recent runs, newest first. A limit of zero or less
// returns all runs.
func (s *Store) List(limit int) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var runs []Run
	err := s.db.View(func(tx *bolt.Tx) error {
		runsBucket := tx.Bucket([]byte(bucketRuns))
		c := tx.Bucket([]byte(bucketIndex)).Cursor()
		for k, id := c.Last(); k != nil; k, id = c.Prev() {
			if limit > 0 && len(runs) >= limit {
				break
			}
			data := runsBucket.Get(id)
			if data == nil {
				continue
			}
			var run Run
			if err := json.Unmarshal(data, &run); err != nil {
				return fmt.Errorf("unmarshal run %s: %w", string(id), err)
			}
			runs = append(runs, run)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return runs, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// indexKey orders runs chronologically in the index bucket. The run ID
// suffix keeps keys unique when two runs share a timestamp.
func indexKey(run Run) string {
	return run.Recorded.Format(time.RFC3339Nano) + "/" + run.ID
}
