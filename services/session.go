package services

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"deal-checker/models"
)

// slot is the per-session "current report" with its submission generation.
type slot struct {
	gen    uint64
	report *models.RawAnalysisReport
	cancel context.CancelFunc
}

// SessionStore keeps one current report per browser session. Every
// submission gets a generation number; only the latest generation may
// publish its result, and starting a new one cancels the previous request.
type SessionStore struct {
	mu    sync.Mutex
	slots *cache.Cache
}

// NewSessionStore creates a store whose idle sessions expire after ttl.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{slots: cache.New(ttl, 2*ttl)}
}

func (s *SessionStore) get(sessionID string) *slot {
	if v, ok := s.slots.Get(sessionID); ok {
		return v.(*slot)
	}
	return &slot{}
}

// Begin starts a new submission for sessionID. The held report is dropped
// and any in-flight submission of the session is cancelled. The returned
// context must be used for the upstream call.
func (s *SessionStore) Begin(ctx context.Context, sessionID string) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.get(sessionID)
	if cur.cancel != nil {
		cur.cancel()
	}

	ctx, cancel := context.WithCancel(ctx)
	next := &slot{gen: cur.gen + 1, cancel: cancel}
	s.slots.SetDefault(sessionID, next)
	return ctx, next.gen
}

// Commit publishes report if gen is still the session's latest submission.
// Stale completions are discarded and Commit returns false.
func (s *SessionStore) Commit(sessionID string, gen uint64, report *models.RawAnalysisReport) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.get(sessionID)
	if cur.gen != gen {
		return false
	}
	s.finish(cur)
	s.slots.SetDefault(sessionID, &slot{gen: gen, report: report})
	return true
}

// Fail clears the held report if gen is still the latest submission.
func (s *SessionStore) Fail(sessionID string, gen uint64) bool {
	return s.Commit(sessionID, gen, nil)
}

// Current returns the held report of sessionID, or nil.
func (s *SessionStore) Current(sessionID string) *models.RawAnalysisReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(sessionID).report
}

// Latest reports whether gen is the newest submission of sessionID.
func (s *SessionStore) Latest(sessionID string, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(sessionID).gen == gen
}

func (s *SessionStore) finish(cur *slot) {
	if cur.cancel != nil {
		cur.cancel()
		cur.cancel = nil
	}
}
