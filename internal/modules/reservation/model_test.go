package reservation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAmounts(t *testing.T) {
	r := &Reservation{}
	require.NoError(t, r.SetAmounts(10000, 3000, 7000))
	assert.EqualValues(t, 10000, r.TotalCents)
	assert.EqualValues(t, 3000, r.DepositCents)
	assert.EqualValues(t, 7000, r.RemainingCents)
}

func TestSetAmounts_Inconsistent(t *testing.T) {
	r := &Reservation{}
	require.NoError(t, r.SetAmounts(10000, 3000, 7000))

	err := r.SetAmounts(10000, 3000, 6000)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInconsistentAmounts))

	// The rejected mutation left the previous breakdown untouched.
	assert.EqualValues(t, 10000, r.TotalCents)
	assert.EqualValues(t, 3000, r.DepositCents)
	assert.EqualValues(t, 7000, r.RemainingCents)
}

func TestSetAmounts_Negative(t *testing.T) {
	r := &Reservation{}
	for _, amounts := range [][3]int64{
		{-1, 0, -1},
		{100, -50, 150},
		{100, 150, -50},
	} {
		err := r.SetAmounts(amounts[0], amounts[1], amounts[2])
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInconsistentAmounts))
	}
}

func TestSetAmounts_ZeroIsValid(t *testing.T) {
	r := &Reservation{}
	assert.NoError(t, r.SetAmounts(0, 0, 0))
}

func TestIsPending(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusPending, true},
		{StatusPendingStock, true},
		{StatusConfirmed, false},
		{StatusCancelled, false},
	}
	for _, tt := range tests {
		r := &Reservation{Status: tt.status}
		assert.Equal(t, tt.want, r.IsPending(), "status %s", tt.status)
	}
}
