package booking

import (
	"time"

	"go.uber.org/zap"

	bookingRepo "bookie/database/repository/booking"
	roomRepo "bookie/database/repository/room"
	"bookie/models"
	"bookie/utils"
)

// DefaultBookingService implements BookingService against the document store.
//
// The overlap check is a read-then-write with no isolation: two concurrent
// creations for the same slot can both pass the pre-check. Accepted risk;
// stronger guarantees would need a conditional write in the store.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	RoomRepo roomRepo.RoomRepository
}

// Create validates and persists a new booking for the requesting user.
func (s *DefaultBookingService) Create(details models.BookingCreate, user models.User) (string, error) {
	echo := map[string]interface{}{"booking": map[string]interface{}{
		"room":     details.Room,
		"start":    details.Start,
		"duration": details.Duration,
	}}

	now := time.Now().UTC()
	if details.Start.Before(now) {
		return "", utils.NewValidationError(utils.MsgBookingExpired, echo)
	}

	room, err := s.RoomRepo.GetByID(details.Room)
	if err != nil {
		return "", utils.NewInternalError(echo)
	}
	if room == nil {
		return "", utils.NewNotFoundError(utils.MsgRoomNotFound, echo)
	}

	b := models.Booking{
		ID:           utils.GetID(),
		User:         user.ID,
		Room:         details.Room,
		Start:        details.Start.UTC(),
		Duration:     details.Duration,
		LastModified: now,
	}

	if err := s.checkOverlap(b, ""); err != nil {
		return "", err
	}

	utils.GetLogger().Info("Creating Booking",
		zap.String("id", b.ID), zap.String("room", b.Room), zap.String("user", b.User))
	if err := s.Repo.Insert(&b); err != nil {
		return "", utils.NewInternalError(echo)
	}
	return b.ID, nil
}

// Update applies a partial update to an existing, unexpired booking.
func (s *DefaultBookingService) Update(bookingID string, details models.BookingUpdate) error {
	idEcho := map[string]interface{}{"booking": map[string]interface{}{"id": bookingID}}

	// An empty payload, or a supplied field that is explicitly null, is a
	// malformed update rather than a no-op.
	if details.Empty() || details.HasNull() {
		return utils.NewValidationError(utils.MsgBookingUpdateError,
			map[string]interface{}{"booking": details.Supplied()})
	}

	now := time.Now().UTC()
	if details.Start != nil && details.Start.Before(now) {
		return utils.NewValidationError(utils.MsgBookingExpired, idEcho)
	}
	if details.Duration != nil && *details.Duration <= 0 {
		return utils.NewValidationError(utils.MsgValidationError, map[string]interface{}{
			"errors": []string{"duration must be greater than 0"},
		})
	}

	existing, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return utils.NewInternalError(idEcho)
	}
	if existing == nil {
		return utils.NewNotFoundError(utils.MsgBookingNotFound, idEcho)
	}

	// Expired bookings are immutable regardless of the proposed values.
	if existing.Start.Before(now) {
		return utils.NewValidationError(utils.MsgBookingExpired, idEcho)
	}

	updated := *existing
	if details.Start != nil {
		updated.Start = details.Start.UTC()
	}
	if details.Duration != nil {
		updated.Duration = *details.Duration
	}

	if err := s.checkOverlap(updated, bookingID); err != nil {
		return err
	}

	updated.LastModified = now
	utils.GetLogger().Info("Updating Booking",
		zap.String("id", bookingID), zap.Any("fields", details.Supplied()))
	if err := s.Repo.Replace(bookingID, &updated); err != nil {
		return utils.NewInternalError(idEcho)
	}
	return nil
}

// Delete removes a single booking, checking existence first.
func (s *DefaultBookingService) Delete(bookingID string) error {
	idEcho := map[string]interface{}{"booking": map[string]interface{}{"id": bookingID}}

	existing, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return utils.NewInternalError(idEcho)
	}
	if existing == nil {
		return utils.NewNotFoundError(utils.MsgBookingNotFound, idEcho)
	}
	return s.DeleteMany([]string{bookingID})
}

// DeleteMany removes all bookings in the list, ignoring absent ids.
func (s *DefaultBookingService) DeleteMany(bookingIDs []string) error {
	utils.GetLogger().Info("Deleting Bookings", zap.Strings("ids", bookingIDs))
	if err := s.Repo.Delete(bookingIDs); err != nil {
		return utils.NewInternalError(map[string]interface{}{
			"booking": map[string]interface{}{"id": bookingIDs},
		})
	}
	return nil
}

// Get returns a booking by id.
func (s *DefaultBookingService) Get(bookingID string) (*models.Booking, error) {
	idEcho := map[string]interface{}{"booking": map[string]interface{}{"id": bookingID}}

	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, utils.NewInternalError(idEcho)
	}
	if b == nil {
		return nil, utils.NewNotFoundError(utils.MsgBookingNotFound, idEcho)
	}
	return b, nil
}

// GetAll returns bookings starting today (UTC) or later, optionally filtered
// to a single user.
func (s *DefaultBookingService) GetAll(user string) ([]models.Booking, error) {
	var (
		bookings []models.Booking
		err      error
	)
	if user == "" {
		bookings, err = s.Repo.GetUpcoming()
	} else {
		bookings, err = s.Repo.GetUpcomingByUser(user)
	}
	if err != nil {
		return nil, utils.NewInternalError(nil)
	}
	return bookings, nil
}

// checkOverlap rejects b when it overlaps any same-room booking on the
// calendar day of its start. The day-bounded query is a pragmatic pre-filter
// rather than a full-table scan. excludeID drops the booking being updated
// from the candidate set.
func (s *DefaultBookingService) checkOverlap(b models.Booking, excludeID string) error {
	candidates, err := s.Repo.GetByRoomAndDay(b.Room, b.Start)
	if err != nil {
		return utils.NewInternalError(map[string]interface{}{
			"booking": map[string]interface{}{"room": b.Room},
		})
	}
	for _, other := range candidates {
		if other.ID == excludeID {
			continue
		}
		if b.Overlaps(other) {
			return utils.NewValidationError(utils.MsgBookingOverlaps, map[string]interface{}{
				"booking": map[string]interface{}{
					"room":     b.Room,
					"start":    b.Start,
					"duration": b.Duration,
				},
			})
		}
	}
	return nil
}
