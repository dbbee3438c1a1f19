package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// BookingCreate carries the client-supplied fields for a new booking.
type BookingCreate struct {
	Room     string    `json:"room" binding:"required,len=32"`
	Start    time.Time `json:"start" binding:"required"`
	Duration float64   `json:"duration" binding:"required,gt=0"`
}

// BookingUpdate carries a partial booking update. A field absent from the
// payload is left untouched; a field explicitly set to null is recorded so the
// update can be rejected instead of silently nulling a required value. Gin's
// binding cannot tell those two cases apart, hence the custom unmarshalling.
type BookingUpdate struct {
	Start    *time.Time
	Duration *float64

	HasStart    bool
	HasDuration bool
}

func (u *BookingUpdate) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["start"]; ok {
		u.HasStart = true
		if !bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			var t time.Time
			if err := json.Unmarshal(v, &t); err != nil {
				return err
			}
			u.Start = &t
		}
	}
	if v, ok := raw["duration"]; ok {
		u.HasDuration = true
		if !bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			var d float64
			if err := json.Unmarshal(v, &d); err != nil {
				return err
			}
			u.Duration = &d
		}
	}
	return nil
}

// Empty reports whether the payload supplied no updatable field at all.
func (u BookingUpdate) Empty() bool {
	return !u.HasStart && !u.HasDuration
}

// HasNull reports whether any supplied field was explicitly null.
func (u BookingUpdate) HasNull() bool {
	return (u.HasStart && u.Start == nil) || (u.HasDuration && u.Duration == nil)
}

// Supplied returns the fields that were present in the payload, for echoing
// back in error details.
func (u BookingUpdate) Supplied() map[string]interface{} {
	fields := make(map[string]interface{})
	if u.HasStart {
		if u.Start != nil {
			fields["start"] = *u.Start
		} else {
			fields["start"] = nil
		}
	}
	if u.HasDuration {
		if u.Duration != nil {
			fields["duration"] = *u.Duration
		} else {
			fields["duration"] = nil
		}
	}
	return fields
}
