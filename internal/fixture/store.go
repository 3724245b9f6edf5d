// Package fixture implements a stand-in for the weather lookup service that
// serves records from a YAML file. It is a development aid for running the
// lookup UI without the real backend.
package fixture

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/rshade/wxlookup/internal/weather"
)

// MessageNotFound is the detail returned for unknown identifiers.
const MessageNotFound = "Weather data not found"

// recordsFile is the on-disk layout of a fixture data file.
type recordsFile struct {
	Records map[string]weather.Payload `yaml:"records"`
}

// Store holds weather records keyed by identifier.
type Store struct {
	mu      sync.RWMutex
	records map[string]weather.Payload
}

// NewStore creates a Store holding records.
func NewStore(records map[string]weather.Payload) *Store {
	s := &Store{records: make(map[string]weather.Payload, len(records))}
	for id, p := range records {
		s.records[id] = p
	}
	return s
}

// LoadStore reads a YAML fixture file of the form
//
//	records:
//	  <id>:
//	    location: Paris
//	    weather:
//	      current: {...}
func LoadStore(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture file %s: %w", path, err)
	}
	var f recordsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture file %s: %w", path, err)
	}
	return NewStore(f.Records), nil
}

// Get returns the record for id.
func (s *Store) Get(id string) (weather.Payload, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.records[id]
	return p, ok
}

// Put stores or replaces the record for id.
func (s *Store) Put(id string, p weather.Payload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[id] = p
}

// IDs returns the stored identifiers in sorted order.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
