package students

import (
	"sort"

	"github.com/ilyadubrovsky/letter-grader/internal/domain"
	ierrors "github.com/ilyadubrovsky/letter-grader/internal/errors"
)

// store keeps records in arrival order until SortByName is called.
type store struct {
	records []*domain.Record
}

func NewStore() *store {
	return &store{}
}

func (s *store) Append(record *domain.Record) {
	s.records = append(s.records, record)
}

// Records returns the backing slice in its current order. Callers must not
// hold onto it past Clear.
func (s *store) Records() []*domain.Record {
	return s.records
}

func (s *store) Len() int {
	return len(s.records)
}

// SortByName sorts records by name, case-sensitive ascending. The sort is
// stable, so records with equal names keep their arrival order. Sorting an
// empty store is a valid no-op; the error is reserved for a nil handle.
func (s *store) SortByName() error {
	if s == nil {
		return ierrors.ErrStoreNotInitialized
	}

	sort.SliceStable(s.records, func(i, j int) bool {
		return s.records[i].Name < s.records[j].Name
	})

	return nil
}

func (s *store) Clear() {
	s.records = nil
}
