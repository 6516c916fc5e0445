package boutique

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines the boutique management business logic.
type Service interface {
	CreateBoutique(ctx context.Context, req CreateBoutiqueRequest) (*Boutique, error)
	GetBoutique(ctx context.Context, id string) (*Boutique, error)
	ListBoutiques(ctx context.Context) ([]*Boutique, error)

	// GetBoutiqueName resolves the display name used in deficit alerts.
	GetBoutiqueName(ctx context.Context, id string) (string, error)
}

type service struct {
	repo Repository
}

// NewService creates a new boutique service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateBoutique(ctx context.Context, req CreateBoutiqueRequest) (*Boutique, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("boutique name is required")
	}
	if req.Country == "" {
		return nil, fmt.Errorf("country is required")
	}

	b := &Boutique{
		ID:       uuid.New(),
		Name:     req.Name,
		Address:  req.Address,
		City:     req.City,
		Country:  req.Country,
		Phone:    req.Phone,
		Email:    req.Email,
		IsActive: true,
	}
	if err := s.repo.CreateBoutique(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to persist boutique: %w", err)
	}
	return b, nil
}

func (s *service) GetBoutique(ctx context.Context, id string) (*Boutique, error) {
	return s.repo.GetBoutiqueByID(ctx, id)
}

func (s *service) ListBoutiques(ctx context.Context) ([]*Boutique, error) {
	return s.repo.ListBoutiques(ctx)
}

func (s *service) GetBoutiqueName(ctx context.Context, id string) (string, error) {
	b, err := s.repo.GetBoutiqueByID(ctx, id)
	if err != nil {
		return "", err
	}
	return b.Name, nil
}
