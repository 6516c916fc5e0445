package notification

import "github.com/mariekamara/boutique-backend/internal/modules/reservation"

// Priority ranks a deficit alert for boutique administrators.
type Priority string

const (
	PriorityNormal   Priority = "NORMAL"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

// Channel identifies a delivery mechanism for alerts.
type Channel string

const (
	ChannelEmail Channel = "EMAIL"
	ChannelPush  Channel = "PUSH"
)

// DerivePriority ranks an alert by how many items are short and how many
// units are missing in total.
func DerivePriority(deficits []reservation.DeficitReport) Priority {
	itemCount := 0
	totalDeficit := 0
	for _, d := range deficits {
		if d.HasDeficit {
			itemCount++
			totalDeficit += d.Deficit
		}
	}
	switch {
	case itemCount >= 5 || totalDeficit >= 50:
		return PriorityCritical
	case itemCount >= 3 || totalDeficit >= 20:
		return PriorityHigh
	default:
		return PriorityNormal
	}
}
