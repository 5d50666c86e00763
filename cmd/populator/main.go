package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/ethanbaker/pokedex/pkg/sdk"
	"gopkg.in/yaml.v3"
)

// seedEntry is one pokemon in the YAML seed file
type seedEntry struct {
	Nome  string `yaml:"nome"`
	Tipo1 string `yaml:"tipo_1"`
	Tipo2 string `yaml:"tipo_2"`
}

// Seed the pokedex backend from a YAML fixture file
func main() {
	var (
		file    = flag.String("file", "seed.yml", "path to the YAML seed file")
		baseURL = flag.String("url", "http://localhost:8080", "base URL of the pokedex API")
	)
	flag.Parse()

	// Read and parse the seed file
	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal("[POPULATOR]: Failed to read seed file: ", err)
	}

	var entries []seedEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		log.Fatal("[POPULATOR]: Failed to parse seed file: ", err)
	}

	// Create each record through the API
	client := sdk.NewClient(*baseURL)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	for _, entry := range entries {
		record, err := client.CreatePokemon(ctx, &sdk.PokemonRequest{
			Nome:  entry.Nome,
			Tipo1: entry.Tipo1,
			Tipo2: entry.Tipo2,
		})
		if err != nil {
			log.Fatalf("[POPULATOR]: Failed to create '%s': %v", entry.Nome, err)
		}

		log.Printf("[POPULATOR]: Created '%s' with id %d", record.Nome, record.ID)
	}

	log.Printf("[POPULATOR]: Seeded %d pokemon", len(entries))
}
