package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mariekamara/boutique-backend/internal/modules/reservation"
)

// Service fans deficit alerts out to every registered gateway. It implements
// reservation.Notifier and is always invoked after the creating transaction
// has committed; a failed channel is logged and never blocks the others.
type Service struct {
	gateways GatewayRegistry
	log      *slog.Logger
}

// NewService creates a new notification service.
func NewService(gateways GatewayRegistry, log *slog.Logger) *Service {
	return &Service{gateways: gateways, log: log}
}

// NotifyDeficit derives the alert priority and delivers it on every channel.
// The returned error reports only a total delivery failure (no channel
// succeeded); partial failures are logged.
func (s *Service) NotifyDeficit(ctx context.Context, alert reservation.DeficitAlert) error {
	if len(alert.Deficits) == 0 {
		return nil
	}
	priority := DerivePriority(alert.Deficits)

	delivered := 0
	for channel, gateway := range s.gateways {
		ref, err := gateway.SendDeficitAlert(ctx, alert, priority)
		if err != nil {
			s.log.Error("deficit alert channel failed",
				"channel", string(channel),
				"reservation_id", alert.ReservationID.String(),
				"priority", string(priority),
				"error", err)
			continue
		}
		delivered++
		s.log.Info("deficit alert delivered",
			"channel", string(channel),
			"reservation_id", alert.ReservationID.String(),
			"priority", string(priority),
			"ref", ref)
	}

	if delivered == 0 && len(s.gateways) > 0 {
		return fmt.Errorf("deficit alert for reservation %s failed on all channels", alert.ReservationID)
	}
	return nil
}
