package pokemon_module

import (
	"fmt"
	"log"

	pokemon_store "github.com/ethanbaker/pokedex/internal/stores/pokemon"
	"github.com/ethanbaker/pokedex/pkg/pokemon"
	"github.com/ethanbaker/pokedex/pkg/utils"
)

// PokemonService wraps the pokemon store behind the operations the
// controllers need
type PokemonService struct {
	store pokemon.StoreInterface
}

var pokemonService *PokemonService

/** ---- INIT ---- */

// Init creates a new pokemon service. When no database URL is configured the
// service falls back to the in-memory store
func Init(cfg *utils.Config) error {
	databaseURL := cfg.Get("DATABASE_URL")

	var store pokemon.StoreInterface
	if databaseURL == "" {
		log.Println("[POKEMON]: No DATABASE_URL configured, using in-memory store")
		store = pokemon_store.NewInMemoryStore()
	} else {
		s, err := pokemon_store.NewStore(databaseURL)
		if err != nil {
			return fmt.Errorf("failed to initialize pokemon store: %w", err)
		}
		store = s
	}

	pokemonService = &PokemonService{store: store}
	return nil
}

// InitWithStore creates a new pokemon service backed by the given store
func InitWithStore(store pokemon.StoreInterface) {
	pokemonService = &PokemonService{store: store}
}

// Shutdown closes the underlying store
func Shutdown() error {
	if pokemonService == nil {
		return nil
	}
	return pokemonService.store.Close()
}

/** ---- OPERATIONS ---- */

// FindAll returns every stored pokemon record
func (s *PokemonService) FindAll() ([]*pokemon.Pokemon, error) {
	return s.store.FindAll()
}

// FindByID returns the record with the given id, or nil when absent
func (s *PokemonService) FindByID(id uint) (*pokemon.Pokemon, error) {
	return s.store.FindByID(id)
}

// ExistsByID reports whether a record with the given id is stored
func (s *PokemonService) ExistsByID(id uint) bool {
	return s.store.ExistsByID(id)
}

// Save upserts the given record and returns the persisted copy
func (s *PokemonService) Save(p *pokemon.Pokemon) (*pokemon.Pokemon, error) {
	return s.store.Save(p)
}

// DeleteByID removes the record with the given id
func (s *PokemonService) DeleteByID(id uint) error {
	return s.store.DeleteByID(id)
}
