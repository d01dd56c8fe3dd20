package store

import (
	"encoding/json"
	"os"
	"sort"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/estate-cli/internal/model"
)

// FileStore implements Store on a single JSON document mapping case_id
// to case record. Every mutation rewrites the whole document.
type FileStore struct {
	path string
}

// NewFile creates a FileStore at the given path. The file is created
// lazily on first Upsert.
func NewFile(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (map[string]model.Case, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]model.Case{}, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "store: read %s", s.path)
	}

	cases := map[string]model.Case{}
	if err := json.Unmarshal(data, &cases); err != nil {
		// Corrupt document reads as empty. The next Upsert starts a
		// fresh document rather than blocking every operation.
		zap.L().Warn("case store unreadable, treating as empty",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return map[string]model.Case{}, nil
	}
	return cases, nil
}

func (s *FileStore) Get(caseID string) (*model.Case, bool, error) {
	cases, err := s.Load()
	if err != nil {
		return nil, false, err
	}
	c, ok := cases[caseID]
	if !ok {
		return nil, false, nil
	}
	return &c, true, nil
}

func (s *FileStore) Upsert(c model.Case) error {
	cases, err := s.Load()
	if err != nil {
		return err
	}

	c.LastUpdated = time.Now().UTC()
	cases[c.CaseID] = c

	data, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		return eris.Wrap(err, "store: marshal cases")
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return eris.Wrapf(err, "store: write %s", s.path)
	}
	return nil
}

func (s *FileStore) CaseIDs() ([]string, error) {
	cases, err := s.Load()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(cases))
	for id := range cases {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
