// File: utils/messages.go
package utils

// Client-facing error messages. Authentication failures are distinguishable
// internally but kept generic towards the client.
const (
	MsgValidationError     = "Validation error"
	MsgInternalServerError = "Internal server error"
	MsgInvalidAuthMethod   = "Invalid authentication method used"
	MsgUserNotFound        = "Requesting user does not exist"
	MsgNotAuthenticated    = "Requesting user is not authenticated"

	MsgBookingCreateError = "Unable to create Booking"
	MsgBookingUpdateError = "Unable to update Booking(s)"
	MsgBookingDeleteError = "Unable to delete Booking(s)"
	MsgBookingNotFound    = "Booking does not exist"
	MsgBookingExpired     = "Booking has already expired"
	MsgBookingOverlaps    = "Booking overlaps with other Bookings"

	MsgRoomNotFound = "Room does not exist"
)
