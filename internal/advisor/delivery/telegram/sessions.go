package telegram

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"insurance-advisor/internal/model"
)

// chatState is the per-chat conversation state. Its mutex serializes
// turns from the same chat so the session is never updated concurrently.
type chatState struct {
	mu      sync.Mutex
	session model.Session
}

// sessionStore keeps per-chat state and rate limiters with TTL eviction,
// so abandoned conversations age out on their own.
type sessionStore struct {
	mu       sync.Mutex
	states   *expirable.LRU[int64, *chatState]
	limiters *expirable.LRU[int64, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newSessionStore(ttl time.Duration, perMinute int) *sessionStore {
	return &sessionStore{
		states:   expirable.NewLRU[int64, *chatState](1000, nil, ttl),
		limiters: expirable.NewLRU[int64, *rate.Limiter](1000, nil, 5*time.Minute),
		rate:     rate.Limit(float64(perMinute) / 60.0),
		burst:    5,
	}
}

// state returns the chat's state, creating it on first contact.
func (s *sessionStore) state(chatID int64) *chatState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.states.Get(chatID); ok {
		return st
	}
	st := &chatState{session: model.NewSession()}
	s.states.Add(chatID, st)
	return st
}

// reset drops the chat's state so the next message starts fresh.
func (s *sessionStore) reset(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states.Remove(chatID)
}

// allow reports whether the chat is within its message budget.
func (s *sessionStore) allow(chatID int64) bool {
	s.mu.Lock()
	limiter, ok := s.limiters.Get(chatID)
	if !ok {
		limiter = rate.NewLimiter(s.rate, s.burst)
		s.limiters.Add(chatID, limiter)
	}
	s.mu.Unlock()

	return limiter.Allow()
}
