package stock

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines the stock management business logic.
type Service interface {
	// CreateItem registers a new sellable item.
	CreateItem(ctx context.Context, req CreateItemRequest) (*Item, error)

	// GetItem retrieves an item by id.
	GetItem(ctx context.Context, id string) (*Item, error)

	// ListItems returns all active items.
	ListItems(ctx context.Context) ([]*Item, error)

	// ListBoutiqueStock returns the stock levels of one boutique.
	ListBoutiqueStock(ctx context.Context, boutiqueID string) ([]*BoutiqueStock, error)

	// GetQuantities returns an item's name plus its boutique-scoped and
	// global quantities.
	GetQuantities(ctx context.Context, itemID, boutiqueID string) (itemName string, shopQty, globalQty int, err error)

	// Restock adds quantity of an item to a boutique.
	Restock(ctx context.Context, req RestockRequest) error
}

type service struct {
	repo Repository
}

// NewService creates a new stock service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateItem(ctx context.Context, req CreateItemRequest) (*Item, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("item name is required")
	}
	if req.PriceCents < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if req.GlobalQuantity < 0 {
		return nil, fmt.Errorf("global quantity cannot be negative")
	}

	item := &Item{
		ID:             uuid.New(),
		Name:           req.Name,
		Description:    req.Description,
		PriceCents:     req.PriceCents,
		Currency:       "EUR",
		GlobalQuantity: req.GlobalQuantity,
		IsActive:       true,
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to persist item: %w", err)
	}
	return item, nil
}

func (s *service) GetItem(ctx context.Context, id string) (*Item, error) {
	return s.repo.GetItemByID(ctx, id)
}

func (s *service) ListItems(ctx context.Context) ([]*Item, error) {
	return s.repo.ListItems(ctx)
}

func (s *service) ListBoutiqueStock(ctx context.Context, boutiqueID string) ([]*BoutiqueStock, error) {
	return s.repo.ListBoutiqueStock(ctx, boutiqueID)
}

func (s *service) GetQuantities(ctx context.Context, itemID, boutiqueID string) (string, int, int, error) {
	return s.repo.GetQuantities(ctx, itemID, boutiqueID)
}

func (s *service) Restock(ctx context.Context, req RestockRequest) error {
	if req.Quantity <= 0 {
		return fmt.Errorf("restock quantity must be > 0")
	}
	if req.ItemID == "" || req.BoutiqueID == "" {
		return fmt.Errorf("item_id and boutique_id are required")
	}
	return s.repo.Restock(ctx, req.ItemID, req.BoutiqueID, req.Quantity)
}
