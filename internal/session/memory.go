package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Sarvajith2007/FINBOT/internal/models"
)

// MemoryStore is the in-process Store implementation. All methods are safe
// for concurrent use. Sessions returned by Get are deep copies; callers can
// read them without holding any lock.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session with the given profile.
func (s *MemoryStore) Create(_ context.Context, profile models.UserProfile) (*Session, error) {
	now := time.Now()
	sess := &Session{
		ID:        uuid.NewString(),
		Profile:   profile,
		Holdings:  models.Holdings{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return copySession(sess), nil
}

// Get retrieves a copy of a session by ID.
func (s *MemoryStore) Get(_ context.Context, sessionID string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, sessionID)
	}
	return copySession(sess), nil
}

// UpdateProfile replaces the session's profile.
func (s *MemoryStore) UpdateProfile(_ context.Context, sessionID string, profile models.UserProfile) error {
	return s.update(sessionID, func(sess *Session) {
		sess.Profile = profile
	})
}

// AddExpenses appends expense entries to the session's log.
func (s *MemoryStore) AddExpenses(_ context.Context, sessionID string, expenses []models.ExpenseEntry) error {
	return s.update(sessionID, func(sess *Session) {
		sess.Expenses = append(sess.Expenses, expenses...)
	})
}

// SetHoldings replaces the session's holdings snapshot.
func (s *MemoryStore) SetHoldings(_ context.Context, sessionID string, holdings models.Holdings) error {
	copied := make(models.Holdings, len(holdings))
	for class, amount := range holdings {
		copied[class] = amount
	}
	return s.update(sessionID, func(sess *Session) {
		sess.Holdings = copied
	})
}

// AppendTranscript appends messages to the session's transcript.
func (s *MemoryStore) AppendTranscript(_ context.Context, sessionID string, messages ...Message) error {
	return s.update(sessionID, func(sess *Session) {
		sess.Transcript = append(sess.Transcript, messages...)
	})
}

// Delete removes a session.
func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}

// Close releases the store's resources. A MemoryStore holds none.
func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) update(sessionID string, fn func(*Session)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, sessionID)
	}
	fn(sess)
	sess.UpdatedAt = time.Now()
	return nil
}

func copySession(sess *Session) *Session {
	copied := *sess
	copied.Expenses = append([]models.ExpenseEntry(nil), sess.Expenses...)
	copied.Transcript = append([]Message(nil), sess.Transcript...)
	copied.Holdings = make(models.Holdings, len(sess.Holdings))
	for class, amount := range sess.Holdings {
		copied.Holdings[class] = amount
	}
	copied.Profile.SavingsGoals = append([]models.SavingsGoal(nil), sess.Profile.SavingsGoals...)
	return &copied
}
