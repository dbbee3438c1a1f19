package booking

import "bookie/models"

// BookingService is the sole authority over booking construction, mutation
// and the overlap rule. All failures are *utils.APIError values carrying the
// transport status for the API boundary.
type BookingService interface {
	// Create validates and persists a new booking for the requesting user,
	// returning the generated booking id.
	Create(details models.BookingCreate, user models.User) (string, error)
	// Update applies a partial update (start and/or duration) to an existing,
	// unexpired booking, re-validating the overlap rule.
	Update(bookingID string, details models.BookingUpdate) error
	// Delete removes a single booking after checking it exists.
	Delete(bookingID string) error
	// DeleteMany removes all bookings in the list. No existence pre-check:
	// deletion is idempotent over a list.
	DeleteMany(bookingIDs []string) error
	// Get returns a booking by id.
	Get(bookingID string) (*models.Booking, error)
	// GetAll returns bookings starting today or later, optionally filtered
	// to a single user.
	GetAll(user string) ([]models.Booking, error)
}
