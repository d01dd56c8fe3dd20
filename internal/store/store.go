// Package store persists case records as a single keyed document.
package store

import "github.com/sells-group/estate-cli/internal/model"

// Store is the persistence interface for case tracking. The backing
// document is the single source of truth for lifecycle derivation; no
// case state is cached elsewhere.
//
// The load-modify-save cycle is not atomic and has no locking
// discipline: concurrent writers against the same backing resource can
// lose updates (last write wins). That is an accepted limitation of the
// flat-document layout. The interface exists so locking or
// compare-and-swap can be added behind it without touching callers, and
// so tests can substitute the in-memory implementation.
type Store interface {
	// Load returns the full case mapping. A missing or corrupt backing
	// document reads as an empty mapping, not an error; only genuine IO
	// failures surface as errors.
	Load() (map[string]model.Case, error)

	// Get looks up a single case via Load.
	Get(caseID string) (*model.Case, bool, error)

	// Upsert loads the full mapping, inserts or overwrites the one key,
	// stamps LastUpdated, and persists the whole mapping back.
	Upsert(c model.Case) error

	// CaseIDs returns all known case identifiers, sorted.
	CaseIDs() ([]string, error)
}
