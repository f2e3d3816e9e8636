package scores

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	scoresObject   = "scores"
	scoresProperty = "table"
)

// GDataStore keeps the table as a YAML blob in the per-user data directory.
// With a nil manager it degrades to an in-memory table.
type GDataStore struct {
	manager *gdata.Manager
	table   []Entry
}

// OpenGData opens the data directory for appName.
func OpenGData(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("scores: open gdata %s: %w", appName, err)
	}
	return NewGDataStore(m), nil
}

func NewGDataStore(m *gdata.Manager) *GDataStore {
	s := &GDataStore{manager: m}
	if _, err := s.Load(); err != nil {
		log.Printf("scores: load: %v (starting empty)", err)
	}
	return s
}

func (s *GDataStore) Load() ([]Entry, error) {
	if s.manager == nil || !s.manager.ObjectPropExists(scoresObject, scoresProperty) {
		return clone(s.table), nil
	}
	data, err := s.manager.LoadObjectProp(scoresObject, scoresProperty)
	if err != nil {
		return nil, fmt.Errorf("scores: load: %w", err)
	}
	var table []Entry
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("scores: decode: %w", err)
	}
	s.table = Rank(table)
	return clone(s.table), nil
}

func (s *GDataStore) Submit(e Entry) ([]Entry, error) {
	s.table = Insert(s.table, e)
	if s.manager == nil {
		return clone(s.table), nil
	}
	data, err := yaml.Marshal(s.table)
	if err != nil {
		return nil, fmt.Errorf("scores: encode: %w", err)
	}
	if err := s.manager.SaveObjectProp(scoresObject, scoresProperty, data); err != nil {
		return nil, fmt.Errorf("scores: save: %w", err)
	}
	return clone(s.table), nil
}

func (s *GDataStore) Close() error {
	return nil
}

func clone(table []Entry) []Entry {
	if len(table) == 0 {
		return nil
	}
	return append([]Entry(nil), table...)
}
