package supermarket

import (
	"net/http"
	"time"

	"go.trai.ch/mart/internal/core/ports"
)

// NewClientForTest creates a Client with a custom cache path, http client and clock.
func NewClientForTest(path string, client *http.Client, logger ports.Logger, now func() time.Time) (*Client, error) {
	c, err := newClient(path, client, logger)
	if err != nil {
		return nil, err
	}
	c.now = now
	return c, nil
}
