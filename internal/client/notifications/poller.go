package notifications

import (
	"context"
	"time"
)

// StartPolling begins the fetch-and-merge loop: one immediate cycle, then
// one per interval until StopPolling, ClearNotifications, or ctx
// cancellation. Calling it while a loop is already running is a no-op.
func (s *Store) StartPolling(ctx context.Context) {
	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return
	}
	pollCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.pollSeq++
	seq := s.pollSeq
	gen := s.generation
	s.mu.Unlock()

	go s.poll(pollCtx, seq, gen)
}

// StopPolling cancels the running loop if any. Idempotent.
func (s *Store) StopPolling() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Polling reports whether a poll loop is currently scheduled.
func (s *Store) Polling() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

func (s *Store) poll(ctx context.Context, seq, gen uint64) {
	defer s.release(seq)

	s.log.Info(ctx, "notification polling started", "interval", s.interval)

	s.fetchAndMerge(ctx, gen)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info(ctx, "notification polling stopped")
			return
		case <-ticker.C:
			s.fetchAndMerge(ctx, gen)
		}
	}
}

// release clears the cancel handle when the loop exits on its own (parent
// context cancelled), so a later StartPolling is not blocked. The sequence
// check keeps a finished loop from clearing its successor's handle.
func (s *Store) release(seq uint64) {
	s.mu.Lock()
	if s.pollSeq == seq && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()
}
