package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/dwguild/backend/internal/model"
)

// Collection names used as counter keys in the persisted document
const (
	collectionMembers    = "members"
	collectionRaidGroups = "raidGroups"
	collectionBosses     = "bosses"
)

// document is the on-disk layout of the data file
type document struct {
	Members    []model.Member    `json:"members"`
	RaidGroups []model.RaidGroup `json:"raidGroups"`
	Bosses     []model.Boss      `json:"bosses"`
	Counters   map[string]int64  `json:"counters,omitempty"`
}

// Store owns the data file. All repository operations go through a single
// mutex so a read-modify-write cycle can never interleave with another
// within this process.
type Store struct {
	path string
	mu   sync.Mutex
}

// Open prepares a store at the given path, creating the file with empty
// collections when it does not exist
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
		if err := s.save(&document{Members: []model.Member{}}); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat data file: %w", err)
	}

	// Fail fast on an unreadable or corrupt file.
	if _, err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load reads and parses the data file. Callers hold the mutex.
func (s *Store) load() (*document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse data file: %w", err)
	}
	if doc.Counters == nil {
		doc.Counters = make(map[string]int64)
	}
	return &doc, nil
}

// save writes the document back to disk. Callers hold the mutex. The write
// replaces the whole file; there is no inter-process locking, so the last
// writer wins across processes.
func (s *Store) save(doc *document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data file: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	return nil
}

// nextID advances the collection's monotonic counter and returns the new
// identifier. The counter is seeded from the highest numeric ID already in
// the collection, which upgrades legacy files written without counters.
func (doc *document) nextID(collection string, existing []string) string {
	counter := doc.Counters[collection]
	for _, id := range existing {
		if n, err := strconv.ParseInt(id, 10, 64); err == nil && n > counter {
			counter = n
		}
	}
	counter++
	doc.Counters[collection] = counter
	return strconv.FormatInt(counter, 10)
}

// update runs fn against the parsed document and persists the result when
// fn succeeds
func (s *Store) update(fn func(doc *document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}

// view runs fn against a read-only snapshot of the document
func (s *Store) view(fn func(doc *document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	return fn(doc)
}
