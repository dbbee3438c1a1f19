package auth

import "bookie/models"

// AuthService validates bearer tokens and manages login sessions.
type AuthService interface {
	// Authenticate resolves a bearer token to its owning user. The three
	// failure shapes (missing token, unresolvable token, incomplete user
	// record) are distinct internally but all map to 401.
	Authenticate(token string) (*models.User, error)
	// Login verifies credentials and returns a fresh session token,
	// replacing any prior session for the username.
	Login(username, password string) (string, error)
	// Logout deletes the user's session(s).
	Logout(user *models.User) error
}
