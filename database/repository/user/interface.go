package userRepo

import "bookie/models"

// UserRepository defines data access methods for user records. Users are
// provisioned out-of-band; the API only reads them.
type UserRepository interface {
	// GetAll returns every user.
	GetAll() ([]models.User, error)
	// GetByID returns the user with the given id, or nil if absent.
	GetByID(id string) (*models.User, error)
	// GetByEmail returns the user with the given email, or nil if absent.
	GetByEmail(email string) (*models.User, error)
}
