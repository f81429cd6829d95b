// Package session holds per-conversation state: the user profile, logged
// expenses, current holdings, and the chat transcript. State lives only for
// the life of the process; nothing is written to disk.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/Sarvajith2007/FINBOT/internal/models"
)

// ErrNotFound is returned when a session ID is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Message is one transcript entry, either side of the conversation.
type Message struct {
	Role      string    `json:"role"` // "user" or "advisor"
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is the full conversation state for one user.
type Session struct {
	ID         string                `json:"id"`
	Profile    models.UserProfile    `json:"profile"`
	Expenses   []models.ExpenseEntry `json:"expenses"`
	Holdings   models.Holdings       `json:"holdings"`
	Transcript []Message             `json:"transcript"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

// Store defines the interface for session state operations.
// This abstraction allows swapping backends (in-memory, Redis, etc.)
// without changing the handler layer.
type Store interface {
	// Create starts a new session with the given profile and returns it
	// with an assigned ID.
	Create(ctx context.Context, profile models.UserProfile) (*Session, error)

	// Get retrieves a session by its ID.
	// Returns ErrNotFound if the session does not exist.
	Get(ctx context.Context, sessionID string) (*Session, error)

	// UpdateProfile replaces the session's profile.
	UpdateProfile(ctx context.Context, sessionID string, profile models.UserProfile) error

	// AddExpenses appends expense entries to the session's log.
	AddExpenses(ctx context.Context, sessionID string, expenses []models.ExpenseEntry) error

	// SetHoldings replaces the session's holdings snapshot.
	SetHoldings(ctx context.Context, sessionID string, holdings models.Holdings) error

	// AppendTranscript appends messages to the session's transcript.
	AppendTranscript(ctx context.Context, sessionID string, messages ...Message) error

	// Delete removes a session. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, sessionID string) error

	// Close releases any resources held by the store.
	Close() error
}
