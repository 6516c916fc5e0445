package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Service defines the client management business logic.
type Service interface {
	CreateClient(ctx context.Context, req CreateClientRequest) (*Client, error)
	GetClient(ctx context.Context, id string) (*Client, error)
	ListClients(ctx context.Context) ([]*Client, error)

	// GetClientName resolves the display name used in deficit alerts.
	GetClientName(ctx context.Context, id string) (string, error)
}

type service struct {
	repo Repository
}

// NewService creates a new client service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateClient(ctx context.Context, req CreateClientRequest) (*Client, error) {
	if req.FirstName == "" || req.LastName == "" {
		return nil, fmt.Errorf("first_name and last_name are required")
	}

	c := &Client{
		ID:        uuid.New(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := s.repo.CreateClient(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to persist client: %w", err)
	}
	return c, nil
}

func (s *service) GetClient(ctx context.Context, id string) (*Client, error) {
	return s.repo.GetClientByID(ctx, id)
}

func (s *service) ListClients(ctx context.Context) ([]*Client, error) {
	return s.repo.ListClients(ctx)
}

func (s *service) GetClientName(ctx context.Context, id string) (string, error) {
	c, err := s.repo.GetClientByID(ctx, id)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(c.FirstName + " " + c.LastName), nil
}
