package boutique

import "context"

// Repository defines boutique data storage.
type Repository interface {
	CreateBoutique(ctx context.Context, b *Boutique) error
	GetBoutiqueByID(ctx context.Context, id string) (*Boutique, error)
	ListBoutiques(ctx context.Context) ([]*Boutique, error)
}
