package workers

import (
	"context"
	"log/slog"
	"time"

	"santa-lab/observability"
)

// HeartbeatWorker periodically logs liveness plus the current draw stats.
// It is the daemon's only recurring job: draws themselves run on demand.
type HeartbeatWorker struct {
	log      *slog.Logger
	monitor  *observability.Monitor
	interval time.Duration
}

func NewHeartbeatWorker(log *slog.Logger, monitor *observability.Monitor, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, monitor: monitor, interval: interval}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Info("Starting heartbeat worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			stats := w.monitor.Snapshot()
			w.log.Info("Heartbeat",
				"draws_run", stats.DrawsRun,
				"draws_exhausted", stats.DrawsExhausted,
				"attempts_total", stats.AttemptsTotal,
				"ram_bytes", stats.RAMBytes,
				"cpu_percent", stats.CPUPercent,
			)
		}
	}
}
