// Package supabase wraps the hosted backend: the shared gateway handle, blob
// storage, and the insert push channel.
package supabase

import (
	"fmt"

	"github.com/supabase-community/supabase-go"

	"diaa-designs-backend/internal/config"
)

// Client is the shared gateway handle. It is constructed once in main and
// passed to whatever needs it; there is no package-level instance.
type Client struct {
	Supabase *supabase.Client
	Config   *config.Config
}

func NewClient(cfg *config.Config) (*Client, error) {
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}

	return &Client{
		Supabase: client,
		Config:   cfg,
	}, nil
}

// Ping probes the REST endpoint with a HEAD count against cv_orders. Used by
// the health check and once at startup.
func (c *Client) Ping() error {
	_, _, err := c.Supabase.From("cv_orders").Select("id", "exact", true).Execute()
	if err != nil {
		return fmt.Errorf("supabase connection check failed: %w", err)
	}
	return nil
}
