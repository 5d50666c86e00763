package sdk

import (
	"github.com/ethanbaker/pokedex/pkg/pokemon"
)

/** Requests */

// PokemonRequest represents the request body for creating or replacing a
// pokemon record
type PokemonRequest struct {
	Nome  string `json:"nome" binding:"required"`
	Tipo1 string `json:"tipo_1" binding:"required"`
	Tipo2 string `json:"tipo_2"`
}

// ToDomain converts the request body into a domain record with the given id
// (zero for creation)
func (r *PokemonRequest) ToDomain(id uint) *pokemon.Pokemon {
	return &pokemon.Pokemon{
		ID:    id,
		Nome:  r.Nome,
		Tipo1: r.Tipo1,
		Tipo2: r.Tipo2,
	}
}

/** Responses */

// ErrorDetail represents an error response body
type ErrorDetail struct {
	Detail string `json:"detail"`
}
