package stock

import "context"

// Repository defines data access for items and boutique stock levels.
type Repository interface {
	// CreateItem registers a new item.
	CreateItem(ctx context.Context, item *Item) error

	// GetItemByID retrieves an item.
	GetItemByID(ctx context.Context, id string) (*Item, error)

	// ListItems returns all active items.
	ListItems(ctx context.Context) ([]*Item, error)

	// ListBoutiqueStock returns the stock levels held at one boutique.
	ListBoutiqueStock(ctx context.Context, boutiqueID string) ([]*BoutiqueStock, error)

	// GetQuantities returns the item name plus its boutique-scoped and global
	// quantities. A boutique that never stocked the item reads as zero.
	GetQuantities(ctx context.Context, itemID, boutiqueID string) (itemName string, shopQty, globalQty int, err error)

	// Restock raises both the boutique-scoped and the global quantity in one
	// transaction, creating the boutique stock row on first restock.
	Restock(ctx context.Context, itemID, boutiqueID string, qty int) error
}
