// Package session holds the client's authenticated-session state: the
// bearer token and the user profile. The store owns this state exclusively;
// all mutation goes through its methods, and observers registered with
// Subscribe are told after every mutation.
package session

import (
	"context"
	"sync"

	"github.com/yuyuwang/yuyu-cli/internal/client/models"
	"github.com/yuyuwang/yuyu-cli/internal/client/repositories/credentials"
	"github.com/yuyuwang/yuyu-cli/internal/common"
	"github.com/yuyuwang/yuyu-cli/internal/logging"
)

// Store is the session store. The zero profile (balance 0, claim
// ineligible) is the logged-out default.
type Store struct {
	mu      sync.RWMutex
	token   string
	profile models.User

	creds credentials.Repository
	log   logging.Logger
	subs  []func()
}

func NewStore(creds credentials.Repository, log logging.Logger) *Store {
	return &Store{creds: creds, log: log}
}

// Subscribe registers fn to be called after every store mutation. There is
// no unsubscribe; subscribers live as long as the store.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// notifySubs calls every subscriber outside the lock.
func (s *Store) notifySubs() {
	s.mu.RLock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn()
	}
}

// Token returns the current bearer token, or "" when logged out. Satisfies
// api.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsLoggedIn reports whether a credential is present. This is derived from
// current state, never cached.
func (s *Store) IsLoggedIn() bool {
	return s.Token() != ""
}

// Profile returns a copy of the current profile.
func (s *Store) Profile() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Restore rehydrates the token persisted by a previous run. A stored token
// that is recognizably expired is dropped instead of rehydrated, so the
// client does not start in a logged-in state it cannot use.
func (s *Store) Restore(ctx context.Context) error {
	token, err := s.creds.Get(ctx, common.CredentialKey)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}
	if tokenExpired(token) {
		s.log.Info(ctx, "stored credential expired, discarding")
		return s.creds.Delete(ctx, common.CredentialKey)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	s.notifySubs()
	return nil
}

// SetToken stores the token in memory and persists it. The token is opaque
// here; no shape validation is performed.
func (s *Store) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	s.notifySubs()

	if err := s.creds.Set(ctx, common.CredentialKey, token); err != nil {
		s.log.Error(ctx, "failed to persist credential", "error", err)
		return err
	}
	return nil
}

// SetProfile replaces the held profile wholesale.
func (s *Store) SetProfile(profile models.User) {
	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()
	s.notifySubs()
}

// RecordDailyClaim applies a successful daily-reward claim: the balance
// becomes newBalance and the claim flag clears. The network call belongs to
// the caller; this only records its outcome.
func (s *Store) RecordDailyClaim(newBalance int64) {
	s.mu.Lock()
	s.profile.FishBalance = newBalance
	s.profile.CanClaimDaily = false
	s.mu.Unlock()
	s.notifySubs()
}

// RecordSpend decrements the balance by amount. Insufficient balance is a
// silent no-op: callers are expected to have confirmed the spend against
// the server response already.
func (s *Store) RecordSpend(amount int64) {
	s.mu.Lock()
	if s.profile.FishBalance >= amount {
		s.profile.FishBalance -= amount
	}
	s.mu.Unlock()
	s.notifySubs()
}

// Logout clears the credential and resets the profile to its default in a
// single mutation, then removes the persisted token.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.profile = models.User{}
	s.mu.Unlock()
	s.notifySubs()

	if err := s.creds.Delete(ctx, common.CredentialKey); err != nil {
		s.log.Error(ctx, "failed to remove persisted credential", "error", err)
		return err
	}
	return nil
}
