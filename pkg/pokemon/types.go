package pokemon

// Pokemon represents a single stored pokemon record. ID is zero until the
// record has been persisted, at which point the store assigns it.
type Pokemon struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Tipo1 string `json:"tipo_1"`
	Tipo2 string `json:"tipo_2"`
}

// StoreInterface defines the interface for pokemon storage operations
type StoreInterface interface {
	// FindAll returns every stored record in store-default order
	FindAll() ([]*Pokemon, error)

	// FindByID returns the matching record, or nil without an error when no
	// record exists for the given id
	FindByID(id uint) (*Pokemon, error)

	// ExistsByID reports whether a record with the given id is stored
	ExistsByID(id uint) bool

	// Save upserts the record: an id of zero inserts a new record and the
	// store assigns the id, any other id replaces the stored content fields.
	// Returns the persisted record with its id populated
	Save(p *Pokemon) (*Pokemon, error)

	// DeleteByID removes the record with the given id, doing nothing when
	// the record is absent
	DeleteByID(id uint) error

	// Close releases the underlying store resources
	Close() error
}
