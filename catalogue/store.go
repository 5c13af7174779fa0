package catalogue

import "iter"

// Keyed is implemented by entities that are indexed by name
type Keyed interface {
	Key() string
}

// Store is an append-only arena of entities addressed by dense handles.
// Entities are allocated one by one, so pointers returned by At stay valid
// for the lifetime of the store.
type Store[T Keyed, ID ~int] struct {
	items  []*T
	byName map[string]ID
}

// NewStore creates an empty store
func NewStore[T Keyed, ID ~int]() *Store[T, ID] {
	return &Store[T, ID]{byName: map[string]ID{}}
}

// Insert appends item and returns its handle. Duplicate names are not
// rejected here; the newest item wins the name index.
func (s *Store[T, ID]) Insert(item T) ID {
	id := ID(len(s.items))
	p := new(T)
	*p = item
	s.items = append(s.items, p)
	s.byName[item.Key()] = id
	return id
}

// Lookup returns the handle registered for name
func (s *Store[T, ID]) Lookup(name string) (ID, bool) {
	id, ok := s.byName[name]
	return id, ok
}

// At returns the entity behind id or nil if id is out of range
func (s *Store[T, ID]) At(id ID) *T {
	if int(id) < 0 || int(id) >= len(s.items) {
		return nil
	}
	return s.items[id]
}

// Len returns the number of stored entities
func (s *Store[T, ID]) Len() int { return len(s.items) }

// All iterates over the entities in insertion order
func (s *Store[T, ID]) All() iter.Seq2[ID, *T] {
	return func(yield func(ID, *T) bool) {
		for i, item := range s.items {
			if !yield(ID(i), item) {
				return
			}
		}
	}
}
