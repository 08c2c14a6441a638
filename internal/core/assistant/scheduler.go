package assistant

import (
	"context"
	"sync"
	"time"
)

// Scheduler delivers deferred replies after a fixed thinking delay. At
// most one reply is pending per conversation; switching away from or
// deleting a conversation cancels its pending delivery so a stale reply
// is never applied.
type Scheduler struct {
	delay   time.Duration
	mu      sync.Mutex
	pending map[string]context.CancelFunc
	wg      sync.WaitGroup
}

func NewScheduler(delay time.Duration) *Scheduler {
	return &Scheduler{
		delay:   delay,
		pending: make(map[string]context.CancelFunc),
	}
}

// Schedule queues deliver to run after the delay, keyed by conversation.
// It reports false when that conversation already has a reply pending.
func (s *Scheduler) Schedule(conversationID string, deliver func()) bool {
	s.mu.Lock()
	if _, busy := s.pending[conversationID]; busy {
		s.mu.Unlock()
		return false
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.pending[conversationID] = cancel
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-timer.C:
			// Clear the pending slot before delivering so the callback
			// can schedule a follow-up for the same conversation.
			if s.clear(conversationID) {
				deliver()
			}
		case <-ctx.Done():
		}
	}()
	return true
}

// Pending reports whether a reply is still in flight for a conversation.
func (s *Scheduler) Pending(conversationID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, busy := s.pending[conversationID]
	return busy
}

// Cancel drops a pending delivery. It reports whether one existed.
func (s *Scheduler) Cancel(conversationID string) bool {
	s.mu.Lock()
	cancel, ok := s.pending[conversationID]
	if ok {
		delete(s.pending, conversationID)
	}
	s.mu.Unlock()
	if ok {
		cancel()
	}
	return ok
}

// Shutdown cancels everything in flight and waits for workers to stop.
func (s *Scheduler) Shutdown() {
	s.mu.Lock()
	for id, cancel := range s.pending {
		delete(s.pending, id)
		cancel()
	}
	s.mu.Unlock()
	s.wg.Wait()
}

// clear removes the pending slot if still present; a concurrent Cancel
// wins and the delivery is dropped.
func (s *Scheduler) clear(conversationID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pending[conversationID]; !ok {
		return false
	}
	delete(s.pending, conversationID)
	return true
}
