package pokemon

import (
	"fmt"
	"sort"
	"sync"

	pkg_pokemon "github.com/ethanbaker/pokedex/pkg/pokemon"
)

// InMemoryStore provides an in-memory implementation of StoreInterface,
// used for testing and for running the API without a database
type InMemoryStore struct {
	records map[uint]*pkg_pokemon.Pokemon
	nextID  uint
	mutex   sync.RWMutex
}

// NewInMemoryStore creates a new in-memory pokemon store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		records: make(map[uint]*pkg_pokemon.Pokemon),
		nextID:  1,
		mutex:   sync.RWMutex{},
	}
}

// FindAll returns all stored pokemon records in id order
func (s *InMemoryStore) FindAll() ([]*pkg_pokemon.Pokemon, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	records := make([]*pkg_pokemon.Pokemon, 0, len(s.records))
	for _, p := range s.records {
		// Create copies to avoid external mutations
		records = append(records, copyRecord(p))
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})

	return records, nil
}

// FindByID retrieves a pokemon record by its id. A missing record is not an
// error; it returns nil
func (s *InMemoryStore) FindByID(id uint) (*pkg_pokemon.Pokemon, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	p, exists := s.records[id]
	if !exists {
		return nil, nil
	}

	// Return a copy to avoid external mutations
	return copyRecord(p), nil
}

// ExistsByID checks if a pokemon record with the given id exists
func (s *InMemoryStore) ExistsByID(id uint) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	_, exists := s.records[id]
	return exists
}

// Save upserts a pokemon record. A zero id inserts a new record and assigns
// the next free id; any other id replaces the stored content fields
func (s *InMemoryStore) Save(p *pkg_pokemon.Pokemon) (*pkg_pokemon.Pokemon, error) {
	if p.Nome == "" {
		return nil, fmt.Errorf("nome cannot be empty")
	}
	if p.Tipo1 == "" {
		return nil, fmt.Errorf("tipo_1 cannot be empty")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	record := copyRecord(p)
	if record.ID == 0 {
		record.ID = s.nextID
		s.nextID++
	} else if record.ID >= s.nextID {
		s.nextID = record.ID + 1
	}

	s.records[record.ID] = record

	return copyRecord(record), nil
}

// DeleteByID removes a pokemon record by id. Deleting an absent record is a
// no-op
func (s *InMemoryStore) DeleteByID(id uint) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.records, id)
	return nil
}

// Close is a no-op for the in-memory store
func (s *InMemoryStore) Close() error {
	return nil
}

// copyRecord creates a copy of a record to avoid shared references
func copyRecord(p *pkg_pokemon.Pokemon) *pkg_pokemon.Pokemon {
	return &pkg_pokemon.Pokemon{
		ID:    p.ID,
		Nome:  p.Nome,
		Tipo1: p.Tipo1,
		Tipo2: p.Tipo2,
	}
}
