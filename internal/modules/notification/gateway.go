package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/mariekamara/boutique-backend/internal/modules/reservation"
)

// Gateway is the channel-agnostic interface every alert adapter must
// implement. To add a new channel (e.g., SMS, Slack), implement this
// interface and register it.
type Gateway interface {
	// SendDeficitAlert delivers one alert at the given priority and returns
	// a delivery reference.
	SendDeficitAlert(ctx context.Context, alert reservation.DeficitAlert, priority Priority) (string, error)
}

// GatewayRegistry maps channels to their Gateway implementations.
type GatewayRegistry map[Channel]Gateway

// ── Email Adapter ─────────────────────────────────────────────────────────────
// In production, replace the stub with an actual SMTP or transactional-email
// API call (e.g., SendGrid, Mailjet).

type emailGateway struct {
	smtpHost string
	smtpPort string
	from     string
}

func NewEmailGateway(smtpHost, smtpPort, from string) Gateway {
	return &emailGateway{smtpHost: smtpHost, smtpPort: smtpPort, from: from}
}

func (g *emailGateway) SendDeficitAlert(ctx context.Context, alert reservation.DeficitAlert, priority Priority) (string, error) {
	// ── PRODUCTION INTEGRATION POINT ──────────────────────────────────────────
	// Replace this block with an actual SMTP send:
	//
	// 1. Dial g.smtpHost:g.smtpPort, authenticate.
	// 2. Subject: "[{priority}] Stock deficit — reservation {number}"
	// 3. Body: boutique, client, pickup date, monetary breakdown, one line
	//    per DeficitReport (use the Description field).
	// 4. Recipients: the boutique's administrator addresses.
	// ──────────────────────────────────────────────────────────────────────────

	ref := fmt.Sprintf("MAIL-%s-%s", time.Now().UTC().Format("20060102150405"), alert.ReservationNumber)
	return ref, nil
}

// ── Push Adapter ──────────────────────────────────────────────────────────────
// In production, replace the stub with an actual push-provider API call
// (e.g., Firebase Cloud Messaging).

type pushGateway struct {
	apiKey  string
	baseURL string
}

func NewPushGateway(apiKey, baseURL string) Gateway {
	return &pushGateway{apiKey: apiKey, baseURL: baseURL}
}

func (g *pushGateway) SendDeficitAlert(ctx context.Context, alert reservation.DeficitAlert, priority Priority) (string, error) {
	// ── PRODUCTION INTEGRATION POINT ──────────────────────────────────────────
	// Replace this block with an actual FCM call:
	//
	// 1. POST {g.baseURL}/v1/projects/{project}/messages:send
	//    Authorization: Bearer {g.apiKey}
	// 2. Topic: boutique admins of alert.BoutiqueID
	// 3. data: { reservation_id, priority, deficit_count }
	// ──────────────────────────────────────────────────────────────────────────

	ref := fmt.Sprintf("PUSH-%s-%s", time.Now().UTC().Format("20060102150405"), alert.ReservationNumber)
	return ref, nil
}
