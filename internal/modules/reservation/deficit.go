package reservation

import "fmt"

// StockDeficit is the computed shortfall between requested and available
// quantity for one reservation line. It is a pure value: never persisted,
// safe to share between goroutines.
type StockDeficit struct {
	ItemName          string
	QuantityRequested int
	QuantityAvailable int
	BoutiqueID        string
}

// ComputeDeficit builds a StockDeficit after validating its inputs.
func ComputeDeficit(itemName string, requested, available int, boutiqueID string) (*StockDeficit, error) {
	if itemName == "" {
		return nil, fmt.Errorf("%w: item name is required", ErrInvalidInput)
	}
	if requested < 0 {
		return nil, fmt.Errorf("%w: requested quantity cannot be negative", ErrInvalidInput)
	}
	if available < 0 {
		return nil, fmt.Errorf("%w: available quantity cannot be negative", ErrInvalidInput)
	}
	if boutiqueID == "" {
		return nil, fmt.Errorf("%w: boutique id is required", ErrInvalidInput)
	}
	return &StockDeficit{
		ItemName:          itemName,
		QuantityRequested: requested,
		QuantityAvailable: available,
		BoutiqueID:        boutiqueID,
	}, nil
}

// Deficit is the missing quantity, never negative.
func (d *StockDeficit) Deficit() int {
	if d.QuantityRequested <= d.QuantityAvailable {
		return 0
	}
	return d.QuantityRequested - d.QuantityAvailable
}

// HasDeficit reports whether any quantity is missing.
func (d *StockDeficit) HasDeficit() bool { return d.Deficit() > 0 }

// IsOutOfStock reports whether nothing is available at all.
func (d *StockDeficit) IsOutOfStock() bool { return d.QuantityAvailable == 0 }

// DeficitPercentage is the missing share of the requested quantity, in
// percent, clamped to [0, 100]. A zero request yields 0.
func (d *StockDeficit) DeficitPercentage() float64 {
	if d.QuantityRequested == 0 {
		return 0
	}
	pct := float64(d.Deficit()) / float64(d.QuantityRequested) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Description renders the deficit for humans.
func (d *StockDeficit) Description() string {
	if !d.HasDeficit() {
		return "Sufficient stock"
	}
	return fmt.Sprintf("Deficit: requested %d, available %d", d.QuantityRequested, d.QuantityAvailable)
}

// DeficitReport is the serializable projection of a StockDeficit, used in
// notification payloads.
type DeficitReport struct {
	ItemName          string  `json:"item_name"`
	BoutiqueID        string  `json:"boutique_id"`
	QuantityRequested int     `json:"quantity_requested"`
	QuantityAvailable int     `json:"quantity_available"`
	Deficit           int     `json:"deficit"`
	HasDeficit        bool    `json:"has_deficit"`
	IsOutOfStock      bool    `json:"is_out_of_stock"`
	DeficitPercentage float64 `json:"deficit_percentage"`
	Description       string  `json:"description"`
}

// Report materializes all derived fields.
func (d *StockDeficit) Report() DeficitReport {
	return DeficitReport{
		ItemName:          d.ItemName,
		BoutiqueID:        d.BoutiqueID,
		QuantityRequested: d.QuantityRequested,
		QuantityAvailable: d.QuantityAvailable,
		Deficit:           d.Deficit(),
		HasDeficit:        d.HasDeficit(),
		IsOutOfStock:      d.IsOutOfStock(),
		DeficitPercentage: d.DeficitPercentage(),
		Description:       d.Description(),
	}
}
