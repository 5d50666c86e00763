package pokemon

import (
	pkg_pokemon "github.com/ethanbaker/pokedex/pkg/pokemon"
)

// PokemonModel represents the database model for pokemon records
type PokemonModel struct {
	ID uint `json:"id" gorm:"primaryKey;autoIncrement"`

	Nome  string `json:"nome" gorm:"column:nome;not null;size:255"`
	Tipo1 string `json:"tipo_1" gorm:"column:tipo_1;not null;size:255"`
	Tipo2 string `json:"tipo_2" gorm:"column:tipo_2;size:255"`
}

// TableName sets the table name for GORM
func (PokemonModel) TableName() string {
	return "pokemon"
}

// toDomain converts a database model into the domain type
func (m *PokemonModel) toDomain() *pkg_pokemon.Pokemon {
	return &pkg_pokemon.Pokemon{
		ID:    m.ID,
		Nome:  m.Nome,
		Tipo1: m.Tipo1,
		Tipo2: m.Tipo2,
	}
}

// fromDomain converts a domain record into the database model
func fromDomain(p *pkg_pokemon.Pokemon) *PokemonModel {
	return &PokemonModel{
		ID:    p.ID,
		Nome:  p.Nome,
		Tipo1: p.Tipo1,
		Tipo2: p.Tipo2,
	}
}
