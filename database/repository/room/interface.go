package roomRepo

import "bookie/models"

// RoomRepository defines data access methods for room records. Rooms are
// managed out-of-band; the API only reads them.
type RoomRepository interface {
	// GetAll returns every room.
	GetAll() ([]models.Room, error)
	// GetByID returns the room with the given id, or nil if absent.
	GetByID(id string) (*models.Room, error)
}
