package placesapi

import (
	"context"
	"net/http"
)

// DatabaseStatus probes the backend's database connectivity. Success is the
// only contract; the payload carries no data.
func (c *Client) DatabaseStatus(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "api/db_connectivity", nil, nil, nil)
}

// ServerStatus probes the API process itself.
func (c *Client) ServerStatus(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "api/server_connectivity", nil, nil, nil)
}
