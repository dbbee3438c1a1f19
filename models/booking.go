package models

import "time"

// Booking represents a time-bounded reservation of a room.
type Booking struct {
	ID           string    `bson:"id" json:"id"`     // Server-generated, immutable
	User         string    `bson:"user" json:"user"` // Owning user id, set at creation
	Room         string    `bson:"room" json:"room"`
	Start        time.Time `bson:"start" json:"start"`       // UTC
	Duration     float64   `bson:"duration" json:"duration"` // Hours, > 0
	LastModified time.Time `bson:"last_modified" json:"lastModified"`
}

// End returns the instant the booking finishes.
func (b Booking) End() time.Time {
	return b.Start.Add(time.Duration(b.Duration * float64(time.Hour)))
}

// Overlaps reports whether two bookings intersect as half-open intervals
// [start, end). Bookings that exactly abut do not overlap.
func (b Booking) Overlaps(other Booking) bool {
	return b.Start.Before(other.End()) && other.Start.Before(b.End())
}
