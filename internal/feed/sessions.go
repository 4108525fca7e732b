package feed

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sparkdate/spark/internal/entities"
)

var log = logrus.WithField("layer", "feed").WithField("package", "feed")

// FetchFunc fetches a fresh candidates sequence for the user.
type FetchFunc func(ctx context.Context, userID string) ([]*entities.Candidate, error)

// View is a snapshot of a discovery session.
type View struct {
	Current   *entities.Candidate
	Remaining int
	Total     int
	Exhausted bool
}

type session struct {
	feed      *Feed
	expiresAt time.Time
}

// Sessions keeps a discovery feed per user for ttl after the last access.
type Sessions struct {
	ttl   time.Duration
	fetch FetchFunc

	mu       sync.Mutex
	sessions map[string]*session

	now func() time.Time
}

// NewSessions ...
func NewSessions(ttl time.Duration, fetch FetchFunc) *Sessions {
	return &Sessions{
		ttl:      ttl,
		fetch:    fetch,
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

// Current returns the current view of the user's session, a new session is fetched if there is no live one.
// An exhausted session is kept until Reset so the user stays in the terminal state.
func (s *Sessions) Current(ctx context.Context, userID string) (View, error) {
	s.mu.Lock()
	if sess := s.live(userID); sess != nil {
		defer s.mu.Unlock()
		return view(sess.feed), nil
	}
	s.mu.Unlock()

	cc, err := s.fetch(ctx, userID)
	if err != nil {
		return View{}, err
	}

	log.WithField("user_id", userID).WithField("count", len(cc)).Debug("feed fetched")

	s.mu.Lock()
	defer s.mu.Unlock()

	// concurrent request could have started a session while fetching
	if sess := s.live(userID); sess != nil {
		return view(sess.feed), nil
	}

	sess := &session{
		feed:      New(cc),
		expiresAt: s.now().Add(s.ttl),
	}
	s.sessions[userID] = sess

	return view(sess.feed), nil
}

// Advance moves the user's session to the next candidate if candidateID is the current one.
// It returns false if the session is missing or points to another candidate.
func (s *Sessions) Advance(userID, candidateID string) (View, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.live(userID)
	if sess == nil {
		return View{}, false
	}

	c := sess.feed.Current()
	if c == nil || c.ID != candidateID {
		return view(sess.feed), false
	}

	sess.feed.Advance()

	return view(sess.feed), true
}

// Reset drops the user's session.
func (s *Sessions) Reset(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
}

// Cleanup removes expired sessions.
func (s *Sessions) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	var c int
	for k, v := range s.sessions {
		if now.After(v.expiresAt) {
			delete(s.sessions, k)
			c++
		}
	}

	return c
}

// Len returns count of sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

// live returns the user's session prolonging it, s.mu must be held.
func (s *Sessions) live(userID string) *session {
	now := s.now()

	sess, ok := s.sessions[userID]
	if !ok || now.After(sess.expiresAt) {
		return nil
	}

	sess.expiresAt = now.Add(s.ttl)

	return sess
}

func view(f *Feed) View {
	return View{
		Current:   f.Current(),
		Remaining: f.Remaining(),
		Total:     f.Len(),
		Exhausted: f.Exhausted(),
	}
}
