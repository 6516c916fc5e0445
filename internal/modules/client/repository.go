package client

import "context"

// Repository defines client data storage.
type Repository interface {
	CreateClient(ctx context.Context, c *Client) error
	GetClientByID(ctx context.Context, id string) (*Client, error)
	ListClients(ctx context.Context) ([]*Client, error)
}
