package bookingRepo

import (
	"time"

	"bookie/models"
)

// BookingRepository defines data access methods for booking records.
type BookingRepository interface {
	// Insert stores a new booking document.
	Insert(booking *models.Booking) error
	// Replace swaps the stored document for the given id in full.
	Replace(id string, booking *models.Booking) error
	// Delete removes all bookings whose id is in the given list. Idempotent:
	// ids with no matching document are ignored.
	Delete(ids []string) error
	// GetByID returns the booking with the given id, or nil if absent.
	GetByID(id string) (*models.Booking, error)
	// GetUpcoming returns bookings starting today (UTC) or later.
	GetUpcoming() ([]models.Booking, error)
	// GetUpcomingByUser returns a user's bookings starting today or later.
	GetUpcomingByUser(user string) ([]models.Booking, error)
	// GetByRoomAndDay returns the room's bookings whose start falls within
	// [start, start of the next calendar day) in UTC. Pre-filter for the
	// overlap check.
	GetByRoomAndDay(room string, start time.Time) ([]models.Booking, error)
}
