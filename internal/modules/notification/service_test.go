package notification

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariekamara/boutique-backend/internal/modules/reservation"
)

func deficits(counts ...int) []reservation.DeficitReport {
	var out []reservation.DeficitReport
	for i, d := range counts {
		out = append(out, reservation.DeficitReport{
			ItemName:   fmt.Sprintf("Item %d", i),
			Deficit:    d,
			HasDeficit: d > 0,
		})
	}
	return out
}

func TestDerivePriority(t *testing.T) {
	tests := []struct {
		name string
		in   []reservation.DeficitReport
		want Priority
	}{
		{"one small deficit", deficits(2), PriorityNormal},
		{"two items under total threshold", deficits(9, 10), PriorityNormal},
		{"three items", deficits(1, 1, 1), PriorityHigh},
		{"total reaches 20", deficits(20), PriorityHigh},
		{"four items total 49", deficits(12, 12, 12, 13), PriorityHigh},
		{"five items", deficits(1, 1, 1, 1, 1), PriorityCritical},
		{"total reaches 50", deficits(50), PriorityCritical},
		{"sufficient lines are ignored", deficits(0, 0, 0, 0, 2), PriorityNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DerivePriority(tt.in))
		})
	}
}

type recordingGateway struct {
	sent     []Priority
	failWith error
}

func (g *recordingGateway) SendDeficitAlert(ctx context.Context, alert reservation.DeficitAlert, priority Priority) (string, error) {
	if g.failWith != nil {
		return "", g.failWith
	}
	g.sent = append(g.sent, priority)
	return "REF-1", nil
}

func testAlert() reservation.DeficitAlert {
	return reservation.DeficitAlert{
		ReservationID:     uuid.New(),
		ReservationNumber: "RSV-20260831-AB12",
		Deficits:          deficits(2),
	}
}

func TestNotifyDeficit_FansOutToAllChannels(t *testing.T) {
	email := &recordingGateway{}
	push := &recordingGateway{}
	svc := NewService(GatewayRegistry{ChannelEmail: email, ChannelPush: push},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, svc.NotifyDeficit(context.Background(), testAlert()))
	require.Len(t, email.sent, 1)
	require.Len(t, push.sent, 1)
	assert.Equal(t, PriorityNormal, email.sent[0])
}

func TestNotifyDeficit_PartialFailureIsSwallowed(t *testing.T) {
	email := &recordingGateway{failWith: fmt.Errorf("smtp down")}
	push := &recordingGateway{}
	svc := NewService(GatewayRegistry{ChannelEmail: email, ChannelPush: push},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.NoError(t, svc.NotifyDeficit(context.Background(), testAlert()))
	assert.Len(t, push.sent, 1)
}

func TestNotifyDeficit_TotalFailure(t *testing.T) {
	email := &recordingGateway{failWith: fmt.Errorf("smtp down")}
	svc := NewService(GatewayRegistry{ChannelEmail: email},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Error(t, svc.NotifyDeficit(context.Background(), testAlert()))
}

func TestNotifyDeficit_NoDeficitsIsNoop(t *testing.T) {
	email := &recordingGateway{}
	svc := NewService(GatewayRegistry{ChannelEmail: email},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	alert := testAlert()
	alert.Deficits = nil
	require.NoError(t, svc.NotifyDeficit(context.Background(), alert))
	assert.Empty(t, email.sent)
}
