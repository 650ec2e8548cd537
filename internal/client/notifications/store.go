// Package notifications holds the client's notification list and keeps it
// synchronized with the server through a 30-second poll loop.
//
// The store never replaces the held list wholesale once populated: fetched
// results are merged by notification ID, updating the read flag of known
// items in place and prepending unknown ones. Item identity therefore stays
// stable across poll cycles, so anything holding a *models.Notification
// keeps observing the live object.
package notifications

import (
	"context"
	"sync"
	"time"

	"github.com/yuyuwang/yuyu-cli/internal/client/models"
	"github.com/yuyuwang/yuyu-cli/internal/logging"
	"github.com/yuyuwang/yuyu-cli/internal/notify"
)

// msgOperationFailed matches the web client's toast for failed mark-as-read
// calls.
const msgOperationFailed = "操作失败，请稍后重试"

// DefaultPollInterval is the poll cadence when none is configured.
const DefaultPollInterval = 30 * time.Second

// API is the slice of the platform client the store needs. *api.Client
// satisfies it; tests substitute fakes.
type API interface {
	Notifications(ctx context.Context) ([]*models.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) error
	MarkAllNotificationsRead(ctx context.Context) error
}

// Store owns the in-memory notification list. All access goes through its
// methods; observers registered with Subscribe run after each change.
type Store struct {
	mu    sync.Mutex
	items []*models.Notification

	// generation guards against stale mutations: ClearNotifications bumps
	// it, and any in-flight result tagged with an older generation is
	// discarded instead of repopulating a cleared store.
	generation uint64

	// pollSeq identifies the active poll loop so a finished loop never
	// clears the cancel handle of its successor.
	pollSeq uint64
	cancel  context.CancelFunc

	api      API
	interval time.Duration
	log      logging.Logger
	sink     notify.Sink
	subs     []func()
}

func NewStore(api API, interval time.Duration, log logging.Logger, sink notify.Sink) *Store {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Store{api: api, interval: interval, log: log, sink: sink}
}

// Subscribe registers fn to run after every observable change.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Store) notifySubs() {
	s.mu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// Items returns a snapshot of the list. The slice is a copy; the elements
// are the live objects.
func (s *Store) Items() []*models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Notification, len(s.items))
	copy(out, s.items)
	return out
}

// UnreadCount derives the number of unread notifications from current state.
func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, n := range s.items {
		if !n.IsRead {
			count++
		}
	}
	return count
}

// Fetch performs one fetch-and-merge cycle immediately. Fetch failures are
// logged and swallowed; the next poll cycle retries naturally.
func (s *Store) Fetch(ctx context.Context) {
	s.mu.Lock()
	gen := s.generation
	s.mu.Unlock()
	s.fetchAndMerge(ctx, gen)
}

func (s *Store) fetchAndMerge(ctx context.Context, gen uint64) {
	fetched, err := s.api.Notifications(ctx)
	if err != nil {
		s.log.Warn(ctx, "notification fetch failed", "error", err)
		return
	}

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		s.log.Info(ctx, "discarding stale notification fetch", "generation", gen)
		return
	}
	s.merge(fetched)
	s.mu.Unlock()
	s.notifySubs()
}

// merge applies a freshly fetched list. Caller holds s.mu.
//
// Empty local list: take the fetched list wholesale, preserving server
// ordering. Otherwise, walk the fetched items in server order: a known ID
// has only its read flag overwritten, in place, at its current position;
// an unknown ID is prepended. Ordering stays correct only if the server
// returns newest first — a trust assumption, not verified here. The read
// flag is taken from the server even when that regresses a locally read
// item back to unread: the server is authoritative for read state.
func (s *Store) merge(fetched []*models.Notification) {
	if len(s.items) == 0 {
		s.items = fetched
		return
	}

	byID := make(map[int64]*models.Notification, len(s.items))
	for _, n := range s.items {
		byID[n.ID] = n
	}

	for _, incoming := range fetched {
		if existing, ok := byID[incoming.ID]; ok {
			existing.IsRead = incoming.IsRead
		} else {
			s.items = append([]*models.Notification{incoming}, s.items...)
			byID[incoming.ID] = incoming
		}
	}
}

// MarkAsRead marks one notification read. Absent or already-read items are
// silent no-ops with no server call. The local flag flips only after the
// server accepted the call — no optimistic update.
func (s *Store) MarkAsRead(ctx context.Context, id int64) error {
	s.mu.Lock()
	var target *models.Notification
	for _, n := range s.items {
		if n.ID == id {
			target = n
			break
		}
	}
	if target == nil || target.IsRead {
		s.mu.Unlock()
		return nil
	}
	gen := s.generation
	s.mu.Unlock()

	if err := s.api.MarkNotificationRead(ctx, id); err != nil {
		s.log.Error(ctx, "mark notification read failed", "id", id, "error", err)
		s.sink.Notify(notify.LevelError, msgOperationFailed)
		return err
	}

	s.mu.Lock()
	if gen == s.generation {
		for _, n := range s.items {
			if n.ID == id {
				n.IsRead = true
				break
			}
		}
	}
	s.mu.Unlock()
	s.notifySubs()
	return nil
}

// MarkAllAsRead marks every unread notification read. With zero unread it
// is a no-op and no call is issued.
func (s *Store) MarkAllAsRead(ctx context.Context) error {
	s.mu.Lock()
	unread := 0
	for _, n := range s.items {
		if !n.IsRead {
			unread++
		}
	}
	if unread == 0 {
		s.mu.Unlock()
		return nil
	}
	gen := s.generation
	s.mu.Unlock()

	if err := s.api.MarkAllNotificationsRead(ctx); err != nil {
		s.log.Error(ctx, "mark all notifications read failed", "error", err)
		s.sink.Notify(notify.LevelError, msgOperationFailed)
		return err
	}

	s.mu.Lock()
	if gen == s.generation {
		for _, n := range s.items {
			n.IsRead = true
		}
	}
	s.mu.Unlock()
	s.notifySubs()
	return nil
}

// ClearNotifications empties the list and stops polling. Used on logout so
// a prior session's notifications never leak into the next session's view;
// bumping the generation also invalidates any in-flight fetch.
func (s *Store) ClearNotifications() {
	s.mu.Lock()
	s.items = nil
	s.generation++
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.notifySubs()
}
