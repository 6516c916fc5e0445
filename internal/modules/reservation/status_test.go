package reservation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCapabilities(t *testing.T) {
	tests := []struct {
		status      Status
		confirmable bool
		cancellable bool
		stockIssue  bool
		autoReady   bool
	}{
		{StatusPending, true, true, false, false},
		{StatusPendingStock, true, true, true, true},
		{StatusConfirmed, false, false, false, false},
		{StatusCancelled, false, false, false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.confirmable, tt.status.IsConfirmable())
			assert.Equal(t, tt.cancellable, tt.status.IsCancellable())
			assert.Equal(t, tt.stockIssue, tt.status.HasStockIssue())
			assert.Equal(t, tt.autoReady, tt.status.CanTransitionToReady())
		})
	}
}

func TestIsValidTransition(t *testing.T) {
	allowed := map[[2]Status]bool{
		{StatusPending, StatusConfirmed}:      true,
		{StatusPending, StatusCancelled}:      true,
		{StatusPendingStock, StatusConfirmed}: true,
		{StatusPendingStock, StatusCancelled}: true,
		{StatusPendingStock, StatusPending}:   true,
	}

	all := []Status{StatusPending, StatusPendingStock, StatusConfirmed, StatusCancelled}
	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]Status{from, to}]
			assert.Equal(t, want, IsValidTransition(from, to),
				"transition %s -> %s", from, to)
		}
	}
}

func TestTerminalStatesHaveNoOutgoingTransitions(t *testing.T) {
	all := []Status{StatusPending, StatusPendingStock, StatusConfirmed, StatusCancelled}
	for _, to := range all {
		assert.False(t, IsValidTransition(StatusConfirmed, to))
		assert.False(t, IsValidTransition(StatusCancelled, to))
	}
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("pending_stock")
	require.NoError(t, err)
	assert.Equal(t, StatusPendingStock, s)

	s, err = ParseStatus("  CONFIRMED ")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, s)

	_, err = ParseStatus("SHIPPED")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidStatus))

	_, err = ParseStatus("")
	assert.True(t, errors.Is(err, ErrInvalidStatus))
}
