package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ethanbaker/pokedex/pkg/pokemon"
)

// Client wraps calls to the pokedex backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// doJSON is a helper to perform JSON requests to the backend
func (c *Client) doJSON(ctx context.Context, method, path string, in any, out any) error {
	// Create request body if input is provided
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(b)
	}

	// Create the request
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	// Perform the request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// On error, read body and return error
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("[BACKEND]: backend '%s %s' failed: %d: %s", method, path, resp.StatusCode, string(b))
	}

	// If no output expected, return early
	if out == nil {
		return nil
	}

	// Decode the response body into the output struct
	dec := json.NewDecoder(resp.Body)
	return dec.Decode(out)
}

// CreatePokemon creates a new pokemon record and returns it with its
// assigned id
func (c *Client) CreatePokemon(ctx context.Context, req *PokemonRequest) (*pokemon.Pokemon, error) {
	var out pokemon.Pokemon
	if err := c.doJSON(ctx, http.MethodPost, "/api/pokemon", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPokemon returns all stored pokemon records
func (c *Client) ListPokemon(ctx context.Context) ([]*pokemon.Pokemon, error) {
	var out []*pokemon.Pokemon
	if err := c.doJSON(ctx, http.MethodGet, "/api/pokemon", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPokemon returns the pokemon record with the given id, or nil when the
// backend reports no such record
func (c *Client) GetPokemon(ctx context.Context, id uint) (*pokemon.Pokemon, error) {
	var out *pokemon.Pokemon
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/pokemon/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdatePokemon replaces the pokemon record with the given id and returns
// the updated record
func (c *Client) UpdatePokemon(ctx context.Context, id uint, req *PokemonRequest) (*pokemon.Pokemon, error) {
	var out pokemon.Pokemon
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/pokemon/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePokemon removes the pokemon record with the given id
func (c *Client) DeletePokemon(ctx context.Context, id uint) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/pokemon/%d", id), nil, nil)
}
