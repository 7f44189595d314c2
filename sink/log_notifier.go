package sink

import (
	"context"
	"log/slog"

	"santa-lab/domain/event"
)

// LogNotifier is the in-repo Notifier: it records deliveries in the log.
// Real deployments plug an email gateway behind contract.Notifier instead.
// Receivers only appear at debug level so routine logs keep the secret.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, notices []event.AssignmentNotice) error {
	for _, notice := range notices {
		n.log.Info("Assignment notice delivered",
			"group", notice.Group,
			"year", notice.Year,
			"giver", notice.GiverName,
			"email", notice.GiverEmail,
		)
		n.log.Debug("Assignment detail",
			"giver", notice.GiverName,
			"receiver", notice.ReceiverName,
			"wish", notice.ReceiverWish,
		)
	}
	return nil
}
