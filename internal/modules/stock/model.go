package stock

import (
	"time"

	"github.com/google/uuid"
)

// Item is a sellable article tracked across all boutiques. GlobalQuantity is
// the total stock of the item; the sum of boutique-scoped quantities never
// exceeds it.
type Item struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	PriceCents     int64     `json:"price_cents"`
	Currency       string    `json:"currency"`
	GlobalQuantity int       `json:"global_quantity"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BoutiqueStock is the quantity of one item held at one boutique.
type BoutiqueStock struct {
	ID         uuid.UUID `json:"id"`
	BoutiqueID uuid.UUID `json:"boutique_id"`
	ItemID     uuid.UUID `json:"item_id"`
	Quantity   int       `json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateItemRequest is the payload for registering a new item.
type CreateItemRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	PriceCents     int64  `json:"price_cents"`
	GlobalQuantity int    `json:"global_quantity"`
}

// RestockRequest is the payload for adding stock of an item to a boutique.
// The added quantity raises both the boutique-scoped and the global level.
type RestockRequest struct {
	ItemID     string `json:"item_id"`
	BoutiqueID string `json:"boutique_id"`
	Quantity   int    `json:"quantity"`
}
