// Package notify holds Notifier implementations. Email and push delivery
// live behind the same port; the default implementation records the
// notification in the structured log, which is what the deployment's log
// shipper turns into alerts.
package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gearguard/maintenance-system/internal/core/ports"
)

// LogNotifier writes notifications to the structured log.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Send(_ context.Context, notification ports.Notification) error {
	n.log.Info().
		Str("kind", string(notification.Kind)).
		Str("request_id", notification.RequestID).
		Str("recipient_id", notification.RecipientID).
		Str("subject", notification.Subject).
		Msg("notification dispatched")
	return nil
}
