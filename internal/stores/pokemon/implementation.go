package pokemon

import (
	"fmt"

	pkg_pokemon "github.com/ethanbaker/pokedex/pkg/pokemon"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Store handles storage and retrieval of pokemon records using MySQL
type Store struct {
	db *gorm.DB
}

// NewStore creates a new pokemon store with MySQL connection
func NewStore(databaseURL string) (*Store, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}

	// Auto-migrate tables
	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}

	return store, nil
}

// migrate creates or updates the required database tables
func (s *Store) migrate() error {
	return s.db.AutoMigrate(&PokemonModel{})
}

// FindAll returns all stored pokemon records
func (s *Store) FindAll() ([]*pkg_pokemon.Pokemon, error) {
	var models []PokemonModel
	if err := s.db.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list pokemon: %w", err)
	}

	records := make([]*pkg_pokemon.Pokemon, len(models))
	for i := range models {
		records[i] = models[i].toDomain()
	}

	return records, nil
}

// FindByID retrieves a pokemon record by its id. A missing record is not an
// error; it returns nil
func (s *Store) FindByID(id uint) (*pkg_pokemon.Pokemon, error) {
	var model PokemonModel
	result := s.db.First(&model, "id = ?", id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pokemon: %w", result.Error)
	}

	return model.toDomain(), nil
}

// ExistsByID checks if a pokemon record with the given id exists
func (s *Store) ExistsByID(id uint) bool {
	var count int64
	s.db.Model(&PokemonModel{}).Where("id = ?", id).Count(&count)
	return count > 0
}

// Save upserts a pokemon record. A zero id inserts a new record and lets the
// store assign the id; any other id performs a blind replace of the content
// fields
func (s *Store) Save(p *pkg_pokemon.Pokemon) (*pkg_pokemon.Pokemon, error) {
	if p.Nome == "" {
		return nil, fmt.Errorf("nome cannot be empty")
	}
	if p.Tipo1 == "" {
		return nil, fmt.Errorf("tipo_1 cannot be empty")
	}

	model := fromDomain(p)

	if model.ID == 0 {
		if err := s.db.Create(model).Error; err != nil {
			return nil, fmt.Errorf("failed to create pokemon: %w", err)
		}
	} else {
		if err := s.db.Save(model).Error; err != nil {
			return nil, fmt.Errorf("failed to update pokemon: %w", err)
		}
	}

	return model.toDomain(), nil
}

// DeleteByID removes a pokemon record by id. Deleting an absent record is a
// no-op
func (s *Store) DeleteByID(id uint) error {
	if err := s.db.Delete(&PokemonModel{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete pokemon: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	return sqlDB.Close()
}
