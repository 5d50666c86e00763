package pokemon_module

import (
	"net/http"
	"strconv"

	"github.com/ethanbaker/pokedex/pkg/sdk"
	"github.com/gin-gonic/gin"
)

// notFoundDetail is the fixed body returned when an update or delete targets
// a record that does not exist
var notFoundDetail = sdk.ErrorDetail{Detail: "Pokemon não encontrado"}

// CreatePokemon handles POST requests to create a new pokemon record
func CreatePokemon(c *gin.Context) {
	// Parse request body
	var req sdk.PokemonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, sdk.ErrorDetail{Detail: err.Error()})
		return
	}

	// Get service and insert the record (zero id lets the store assign one)
	record, err := pokemonService.Save(req.ToDomain(0))
	if err != nil {
		c.JSON(http.StatusInternalServerError, sdk.ErrorDetail{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetAllPokemon handles GET requests to list all pokemon records
func GetAllPokemon(c *gin.Context) {
	records, err := pokemonService.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, sdk.ErrorDetail{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetPokemonByID handles GET requests for a single pokemon record.
// A missing record still answers 200, with a null body
func GetPokemonByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := pokemonService.FindByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, sdk.ErrorDetail{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

// UpdatePokemon handles PUT requests to replace an existing pokemon record
func UpdatePokemon(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// Parse request body
	var req sdk.PokemonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, sdk.ErrorDetail{Detail: err.Error()})
		return
	}

	// The record must already exist for a replace
	if !pokemonService.ExistsByID(id) {
		c.JSON(http.StatusNotFound, notFoundDetail)
		return
	}

	record, err := pokemonService.Save(req.ToDomain(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, sdk.ErrorDetail{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

// DeletePokemon handles DELETE requests to remove a pokemon record
func DeletePokemon(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if !pokemonService.ExistsByID(id) {
		c.JSON(http.StatusNotFound, notFoundDetail)
		return
	}

	if err := pokemonService.DeleteByID(id); err != nil {
		c.JSON(http.StatusInternalServerError, sdk.ErrorDetail{Detail: err.Error()})
		return
	}

	c.Status(http.StatusOK)
}

// parseID reads the id path parameter, answering 422 on a non-integer value
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, sdk.ErrorDetail{Detail: "id must be an integer"})
		return 0, false
	}
	return uint(id), true
}
