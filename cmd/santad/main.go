package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"santa-lab/internal"
	"santa-lab/observability"
	"santa-lab/runtime/workers"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the daemon lifecycle, and
// centralizes error reporting. This pattern is preferred over calling
// os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for the background workers.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := internal.LoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	// Read-only with BypassLockGuard: santactl keeps the write lock while
	// the daemon only observes.
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Supervision & Monitoring
	monitor := observability.NewMonitor(log)
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(workers.NewHeartbeatWorker(log, monitor, config.HeartbeatInterval))

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Debug inspector over the draw keyspace
	statsProvider := func() map[string]any {
		stats := monitor.Snapshot()
		return map[string]any{
			"Status":         "Inspector (Read-Only)",
			"Time":           time.Now().Format(time.RFC822),
			"DrawsRun":       stats.DrawsRun,
			"DrawsExhausted": stats.DrawsExhausted,
			"RAMBytes":       stats.RAMBytes,
		}
	}
	internal.StartDebugServer(db, config.DebugPort, "/inspect", nil, statsProvider)
	log.Info("Inspector started", "url", fmt.Sprintf("http://localhost:%d/inspect", config.DebugPort))

	// 6. Run workers until a signal arrives
	go sup.Run(ctx)

	<-ctx.Done()
	log.Info("Shutting down gracefully...")
	sup.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
