package reservation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDeficit(t *testing.T) {
	d, err := ComputeDeficit("Dress", 5, 3, "shop1")
	require.NoError(t, err)
	assert.Equal(t, 2, d.Deficit())
	assert.True(t, d.HasDeficit())
	assert.False(t, d.IsOutOfStock())
	assert.InDelta(t, 40.0, d.DeficitPercentage(), 0.001)
	assert.Equal(t, "Deficit: requested 5, available 3", d.Description())
}

func TestComputeDeficit_SufficientStock(t *testing.T) {
	d, err := ComputeDeficit("Scarf", 2, 10, "shop1")
	require.NoError(t, err)
	assert.Equal(t, 0, d.Deficit())
	assert.False(t, d.HasDeficit())
	assert.False(t, d.IsOutOfStock())
	assert.Zero(t, d.DeficitPercentage())
	assert.Equal(t, "Sufficient stock", d.Description())
}

func TestComputeDeficit_OutOfStock(t *testing.T) {
	d, err := ComputeDeficit("Coat", 4, 0, "shop1")
	require.NoError(t, err)
	assert.Equal(t, 4, d.Deficit())
	assert.True(t, d.IsOutOfStock())
	assert.InDelta(t, 100.0, d.DeficitPercentage(), 0.001)
}

func TestComputeDeficit_ZeroRequested(t *testing.T) {
	d, err := ComputeDeficit("Hat", 0, 0, "shop1")
	require.NoError(t, err)
	assert.Equal(t, 0, d.Deficit())
	assert.False(t, d.HasDeficit())
	assert.True(t, d.IsOutOfStock())
	assert.Zero(t, d.DeficitPercentage())
}

func TestComputeDeficit_PercentageBounds(t *testing.T) {
	for requested := 0; requested <= 10; requested++ {
		for available := 0; available <= 10; available++ {
			d, err := ComputeDeficit("Item", requested, available, "shop1")
			require.NoError(t, err)
			pct := d.DeficitPercentage()
			assert.GreaterOrEqual(t, pct, 0.0)
			assert.LessOrEqual(t, pct, 100.0)
			assert.Equal(t, d.Deficit() > 0, d.HasDeficit())
		}
	}
}

func TestComputeDeficit_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		itemName  string
		requested int
		available int
		shopID    string
	}{
		{"empty item name", "", 1, 1, "shop1"},
		{"negative requested", "Dress", -1, 1, "shop1"},
		{"negative available", "Dress", 1, -1, "shop1"},
		{"empty shop id", "Dress", 1, 1, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeDeficit(tt.itemName, tt.requested, tt.available, tt.shopID)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}

func TestDeficitReport(t *testing.T) {
	d, err := ComputeDeficit("Dress", 5, 3, "shop1")
	require.NoError(t, err)

	r := d.Report()
	assert.Equal(t, "Dress", r.ItemName)
	assert.Equal(t, "shop1", r.BoutiqueID)
	assert.Equal(t, 5, r.QuantityRequested)
	assert.Equal(t, 3, r.QuantityAvailable)
	assert.Equal(t, 2, r.Deficit)
	assert.True(t, r.HasDeficit)
	assert.False(t, r.IsOutOfStock)
	assert.InDelta(t, 40.0, r.DeficitPercentage, 0.001)
	assert.Equal(t, "Deficit: requested 5, available 3", r.Description)
}
