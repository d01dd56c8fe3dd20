package store

import (
	"sort"
	"time"

	"github.com/sells-group/estate-cli/internal/model"
)

// MemStore implements Store in memory. Used by tests and by callers that
// want ephemeral tracking.
type MemStore struct {
	cases map[string]model.Case
}

// NewMemory creates an empty MemStore.
func NewMemory() *MemStore {
	return &MemStore{cases: map[string]model.Case{}}
}

func (s *MemStore) Load() (map[string]model.Case, error) {
	out := make(map[string]model.Case, len(s.cases))
	for id, c := range s.cases {
		out[id] = c
	}
	return out, nil
}

func (s *MemStore) Get(caseID string) (*model.Case, bool, error) {
	c, ok := s.cases[caseID]
	if !ok {
		return nil, false, nil
	}
	return &c, true, nil
}

func (s *MemStore) Upsert(c model.Case) error {
	c.LastUpdated = time.Now().UTC()
	s.cases[c.CaseID] = c
	return nil
}

func (s *MemStore) CaseIDs() ([]string, error) {
	ids := make([]string, 0, len(s.cases))
	for id := range s.cases {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
