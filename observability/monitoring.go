package observability

import (
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// DrawStats aggregates draw telemetry plus a process snapshot.
type DrawStats struct {
	DrawsRun       uint64    `json:"draws_run"`
	DrawsExhausted uint64    `json:"draws_exhausted"`
	AttemptsTotal  uint64    `json:"attempts_total"`
	LastDrawAt     time.Time `json:"last_draw_at"`
	LastAttempts   int       `json:"last_attempts"`
	LastDuration   string    `json:"last_duration"`

	RAMBytes   uint64  `json:"ram_bytes"`
	CPUPercent float64 `json:"cpu_percent"`
}

// Monitor collects draw telemetry in real time.
// Counters are atomic; the last-draw snapshot is guarded by the mutex.
type Monitor struct {
	log *slog.Logger
	mu  sync.RWMutex

	drawsRun       uint64
	drawsExhausted uint64
	attemptsTotal  uint64

	lastDrawAt   time.Time
	lastAttempts int
	lastDuration time.Duration

	proc *process.Process
}

func NewMonitor(log *slog.Logger) *Monitor {
	// Process handle failures degrade to counters-only stats.
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Warn("Self-process handle unavailable, system stats disabled", "error", err)
		proc = nil
	}
	return &Monitor{log: log, proc: proc}
}

// RecordDraw registers one finished search, successful or exhausted.
func (m *Monitor) RecordDraw(attempts int, duration time.Duration, exhausted bool) {
	atomic.AddUint64(&m.drawsRun, 1)
	atomic.AddUint64(&m.attemptsTotal, uint64(attempts)) // #nosec G115 -- attempts is a bounded positive budget
	if exhausted {
		atomic.AddUint64(&m.drawsExhausted, 1)
	}

	m.mu.Lock()
	m.lastDrawAt = time.Now().UTC()
	m.lastAttempts = attempts
	m.lastDuration = duration
	m.mu.Unlock()
}

// Snapshot returns the current stats, including process RAM/CPU when available.
func (m *Monitor) Snapshot() DrawStats {
	m.mu.RLock()
	stats := DrawStats{
		DrawsRun:       atomic.LoadUint64(&m.drawsRun),
		DrawsExhausted: atomic.LoadUint64(&m.drawsExhausted),
		AttemptsTotal:  atomic.LoadUint64(&m.attemptsTotal),
		LastDrawAt:     m.lastDrawAt,
		LastAttempts:   m.lastAttempts,
		LastDuration:   m.lastDuration.String(),
	}
	m.mu.RUnlock()

	if m.proc != nil {
		if memInfo, err := m.proc.MemoryInfo(); err == nil {
			stats.RAMBytes = memInfo.RSS
		}
		if cpuPercent, err := m.proc.CPUPercent(); err == nil {
			stats.CPUPercent = cpuPercent
		}
	}

	return stats
}
