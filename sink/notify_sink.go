package sink

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"santa-lab/contract"
	"santa-lab/domain/event"
)

// NotifySink buffers assignment notices and hands them to the Notifier in
// batches. The flush is triggered either by reaching a size threshold
// (maxBatch) or a time-based deadline (flushTimeout), so a small group's
// notices are not stuck waiting for a batch that will never fill.
type NotifySink struct {
	mu            sync.Mutex
	timer         *time.Timer
	notifier      contract.Notifier
	log           *slog.Logger
	notices       []event.AssignmentNotice
	maxBatch      int
	flushTimeout  time.Duration
	notifyTimeout time.Duration
}

func NewNotifySink(
	notifier contract.Notifier,
	log *slog.Logger,
	maxBatch int,
	flushTimeout time.Duration,
	notifyTimeout time.Duration,
) *NotifySink {
	return &NotifySink{
		notifier:      notifier,
		log:           log,
		maxBatch:      maxBatch,
		flushTimeout:  flushTimeout,
		notifyTimeout: notifyTimeout,
	}
}

// Consume implements contract.EventSink. Events that are not assignment
// notices are ignored.
func (s *NotifySink) Consume(ctx context.Context, e event.DomainEvent) error {
	notice, ok := e.(event.AssignmentNotice)
	if !ok {
		return nil
	}

	s.mu.Lock()
	s.notices = append(s.notices, notice)

	// First event of a new batch: arm a background timer so data is not
	// stuck when throughput is low.
	if len(s.notices) == 1 && s.timer == nil {
		s.timer = time.AfterFunc(s.flushTimeout, func() {
			if err := s.flush(context.Background()); err != nil {
				s.log.Error("Batching: timeout flush failed", "error", err)
			}
		})
	}

	isFull := len(s.notices) >= s.maxBatch
	s.mu.Unlock()

	if isFull {
		return s.flush(ctx)
	}

	return nil
}

// Flush forces delivery of whatever is buffered. Called on shutdown so no
// giver misses their notice because the batch never filled.
func (s *NotifySink) Flush(ctx context.Context) error {
	return s.flush(ctx)
}

// flush swaps the buffer out under the lock and delivers outside of it,
// so new notices can accumulate while the notifier works.
func (s *NotifySink) flush(ctx context.Context) error {
	s.mu.Lock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	// Concurrent flushes may race to an already-drained buffer.
	if len(s.notices) == 0 {
		s.mu.Unlock()
		return nil
	}

	batch := s.notices
	s.notices = make([]event.AssignmentNotice, 0, s.maxBatch)

	s.mu.Unlock()

	batchCtx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()

	s.log.Debug("Delivering notification batch", "size", len(batch))
	return s.notifier.Notify(batchCtx, batch)
}
