package sessionRepo

import (
	"errors"

	"bookie/models"
)

// ErrSessionNotFound signals that no session matches the presented token.
var ErrSessionNotFound = errors.New("session not found")

// ErrUserNotFound signals that the session's joined user record is missing
// or lacks required fields.
var ErrUserNotFound = errors.New("session user not found")

// SessionRepository defines data access methods for login sessions.
type SessionRepository interface {
	// Upsert replaces the session for session.Username, creating it if
	// absent. Enforces the single-session-per-user invariant.
	Upsert(session *models.Session) error
	// DeleteByUsername removes all sessions for the given username.
	DeleteByUsername(username string) error
	// GetByUsername returns the session for the given username, or nil if
	// absent.
	GetByUsername(username string) (*models.Session, error)
	// GetUserByToken resolves a token to its owning user through a single
	// logical joined query. Returns ErrSessionNotFound when no session
	// matches the token and ErrUserNotFound when the joined user record is
	// missing or incomplete.
	GetUserByToken(token string) (*models.User, error)
}
