package pokemon_module

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	pokemon_store "github.com/ethanbaker/pokedex/internal/stores/pokemon"
	"github.com/ethanbaker/pokedex/pkg/pokemon"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter builds a gin engine backed by a fresh in-memory store
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	InitWithStore(pokemon_store.NewInMemoryStore())

	router := gin.New()
	RegisterRoutes(router.Group("/api"))
	return router
}

// perform executes a request against the router and returns the recorder
func perform(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewBuffer(b)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// Test creating a record returns 201 with an assigned id
func TestCreatePokemon(t *testing.T) {
	router := newTestRouter()

	w := perform(router, http.MethodPost, "/api/pokemon", gin.H{
		"nome":   "Bulbasaur",
		"tipo_1": "Grass",
		"tipo_2": "Poison",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var record pokemon.Pokemon
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Positive(t, record.ID)
	assert.Equal(t, "Bulbasaur", record.Nome)
	assert.Equal(t, "Grass", record.Tipo1)
	assert.Equal(t, "Poison", record.Tipo2)
}

// Test that invalid creation payloads are rejected with 422
func TestCreatePokemon_Validation(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name string
		body gin.H
	}{
		{name: "missing nome", body: gin.H{"tipo_1": "Grass"}},
		{name: "missing tipo_1", body: gin.H{"nome": "Bulbasaur"}},
		{name: "empty body", body: gin.H{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(router, http.MethodPost, "/api/pokemon", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		})
	}
}

// Test that the optional second type may be omitted
func TestCreatePokemon_OptionalType(t *testing.T) {
	router := newTestRouter()

	w := perform(router, http.MethodPost, "/api/pokemon", gin.H{
		"nome":   "Charmander",
		"tipo_1": "Fire",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var record pokemon.Pokemon
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Empty(t, record.Tipo2)
}

// Test listing returns every created record
func TestGetAllPokemon(t *testing.T) {
	router := newTestRouter()

	names := []string{"Bulbasaur", "Charmander", "Squirtle"}
	for _, name := range names {
		w := perform(router, http.MethodPost, "/api/pokemon", gin.H{"nome": name, "tipo_1": "Normal"})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := perform(router, http.MethodGet, "/api/pokemon", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var records []pokemon.Pokemon
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	assert.Len(t, records, len(names))
}

// Test fetching a just-created record returns identical field values
func TestGetPokemonByID(t *testing.T) {
	router := newTestRouter()

	w := perform(router, http.MethodPost, "/api/pokemon", gin.H{
		"nome":   "Bulbasaur",
		"tipo_1": "Grass",
		"tipo_2": "Poison",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created pokemon.Pokemon
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = perform(router, http.MethodGet, "/api/pokemon/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched pokemon.Pokemon
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)
}

// Test fetching a missing record answers 200 with a null body
func TestGetPokemonByID_Missing(t *testing.T) {
	router := newTestRouter()

	w := perform(router, http.MethodGet, "/api/pokemon/42", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

// Test that a non-integer id is rejected
func TestGetPokemonByID_BadID(t *testing.T) {
	router := newTestRouter()

	w := perform(router, http.MethodGet, "/api/pokemon/abc", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// Test replacing an existing record
func TestUpdatePokemon(t *testing.T) {
	router := newTestRouter()

	w := perform(router, http.MethodPost, "/api/pokemon", gin.H{"nome": "Bulbasaur", "tipo_1": "Grass"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = perform(router, http.MethodPut, "/api/pokemon/1", gin.H{
		"nome":   "Ivysaur",
		"tipo_1": "Grass",
		"tipo_2": "Poison",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated pokemon.Pokemon
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, uint(1), updated.ID)
	assert.Equal(t, "Ivysaur", updated.Nome)
	assert.Equal(t, "Poison", updated.Tipo2)
}

// Test updating a missing record answers 404 with the fixed message
func TestUpdatePokemon_Missing(t *testing.T) {
	router := newTestRouter()

	w := perform(router, http.MethodPut, "/api/pokemon/42", gin.H{"nome": "Mew", "tipo_1": "Psychic"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail": "Pokemon não encontrado"}`, w.Body.String())
}

// Test deleting an existing record removes it from subsequent listings
func TestDeletePokemon(t *testing.T) {
	router := newTestRouter()

	w := perform(router, http.MethodPost, "/api/pokemon", gin.H{"nome": "Pikachu", "tipo_1": "Electric"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = perform(router, http.MethodDelete, "/api/pokemon/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	// The record is gone from the listing and fetches answer null
	w = perform(router, http.MethodGet, "/api/pokemon", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = perform(router, http.MethodGet, "/api/pokemon/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

// Test deleting a missing record answers 404 with the fixed message
func TestDeletePokemon_Missing(t *testing.T) {
	router := newTestRouter()

	w := perform(router, http.MethodDelete, "/api/pokemon/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail": "Pokemon não encontrado"}`, w.Body.String())
}
