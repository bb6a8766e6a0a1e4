package catalog

import "fmt"

// Store is the frozen, ordered record set. It is built once at startup and
// never modified afterwards.
type Store struct {
	records []Specimen
	index   map[string]int
}

// NewStore validates and freezes the given record batches in order. The
// first batch is normally Builtin(); later batches come from catalog
// plugins.
func NewStore(batches ...[]Specimen) (*Store, error) {
	s := &Store{index: map[string]int{}}
	for _, batch := range batches {
		for _, raw := range batch {
			rec := raw.Normalized()
			if err := rec.Validate(); err != nil {
				return nil, err
			}
			if _, exists := s.index[rec.ID]; exists {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateID, rec.ID)
			}
			s.index[rec.ID] = len(s.records)
			s.records = append(s.records, rec)
		}
	}
	return s, nil
}

// MustBuiltinStore returns a store holding only the shipped records.
func MustBuiltinStore() *Store {
	s, err := NewStore(Builtin())
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of records.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// All returns the records in store order. The slice is a copy; the records'
// Freq slices are shared and must be treated as read-only.
func (s *Store) All() []Specimen {
	if s == nil {
		return nil
	}
	return append([]Specimen(nil), s.records...)
}

// Get looks up a record by id.
func (s *Store) Get(id string) (Specimen, bool) {
	if s == nil {
		return Specimen{}, false
	}
	idx, ok := s.index[id]
	if !ok {
		return Specimen{}, false
	}
	return s.records[idx], true
}

// Has reports whether id is in the store.
func (s *Store) Has(id string) bool {
	_, ok := s.Get(id)
	return ok
}

// Latest returns the first n records, the set featured on the overview.
func (s *Store) Latest(n int) []Specimen {
	if s == nil || n <= 0 {
		return nil
	}
	if n > len(s.records) {
		n = len(s.records)
	}
	return append([]Specimen(nil), s.records[:n]...)
}
