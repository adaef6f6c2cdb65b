// Package client provides a small HTTP client for a stargen server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/keldric/stargen/internal/stargen"
)

// RequestBuilder provides a fluent API for building generation requests.
// Use it to pin a seed and toggle the system-level generation options.
type RequestBuilder struct {
	seed        *int64
	seedText    string
	openCluster bool
	garden      bool
}

// NewRequest creates a new request builder. With no options set, the
// server generates a fresh random system.
func NewRequest() *RequestBuilder {
	return &RequestBuilder{}
}

// Seed pins an integer seed so the server returns a reproducible system.
// An integer seed takes precedence over a text seed.
func (rb *RequestBuilder) Seed(seed int64) *RequestBuilder {
	rb.seed = &seed
	return rb
}

// SeedText pins a text seed. The server hashes it to an integer seed.
func (rb *RequestBuilder) SeedText(text string) *RequestBuilder {
	rb.seedText = text
	return rb
}

// OpenCluster marks the system as forming inside an open star cluster,
// which biases generation toward multiple stars.
func (rb *RequestBuilder) OpenCluster() *RequestBuilder {
	rb.openCluster = true
	return rb
}

// GardenWorld asks the server to guarantee a habitable garden world.
func (rb *RequestBuilder) GardenWorld() *RequestBuilder {
	rb.garden = true
	return rb
}

type generatePayload struct {
	Seed        *int64 `json:"seed,omitempty"`
	SeedText    string `json:"seed_text,omitempty"`
	OpenCluster bool   `json:"open_cluster,omitempty"`
	GardenWorld bool   `json:"garden_world,omitempty"`
}

// Client talks to a stargen server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client, for timeouts or
// custom transports.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the server at baseURL
// (e.g., "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Generate asks the server for a star system. A nil builder requests a
// fresh random system.
func (c *Client) Generate(ctx context.Context, rb *RequestBuilder) (*stargen.StarSystem, error) {
	if rb == nil {
		rb = NewRequest()
	}

	jsonData, err := json.Marshal(generatePayload{
		Seed:        rb.seed,
		SeedText:    rb.seedText,
		OpenCluster: rb.openCluster,
		GardenWorld: rb.garden,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	u, err := url.JoinPath(c.baseURL, "generate")
	if err != nil {
		return nil, fmt.Errorf("failed to build URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body))
	}

	var sys stargen.StarSystem
	if err := json.NewDecoder(resp.Body).Decode(&sys); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &sys, nil
}

// Health checks that the server is up.
func (c *Client) Health(ctx context.Context) error {
	u, err := url.JoinPath(c.baseURL, "healthz")
	if err != nil {
		return fmt.Errorf("failed to build URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
