package pokemon_module

import (
	"github.com/gin-gonic/gin"
)

// Register routes for the pokemon module
func RegisterRoutes(g *gin.RouterGroup) {
	// Create base group for pokemon routes
	group := g.Group("/pokemon")

	group.POST("", CreatePokemon)
	group.GET("", GetAllPokemon)
	group.GET("/:id", GetPokemonByID)
	group.PUT("/:id", UpdatePokemon)
	group.DELETE("/:id", DeletePokemon)
}
