package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingUpdateUnmarshal(t *testing.T) {
	t.Run("EmptyPayload", func(t *testing.T) {
		var u BookingUpdate
		require.NoError(t, json.Unmarshal([]byte(`{}`), &u))
		assert.True(t, u.Empty())
		assert.False(t, u.HasNull())
	})

	t.Run("ExplicitNullStart", func(t *testing.T) {
		var u BookingUpdate
		require.NoError(t, json.Unmarshal([]byte(`{"start": null}`), &u))
		assert.True(t, u.HasStart)
		assert.Nil(t, u.Start)
		assert.True(t, u.HasNull())
		assert.False(t, u.Empty())
	})

	t.Run("ExplicitNullDuration", func(t *testing.T) {
		var u BookingUpdate
		require.NoError(t, json.Unmarshal([]byte(`{"duration": null}`), &u))
		assert.True(t, u.HasDuration)
		assert.Nil(t, u.Duration)
		assert.True(t, u.HasNull())
	})

	t.Run("BothFields", func(t *testing.T) {
		var u BookingUpdate
		require.NoError(t, json.Unmarshal([]byte(`{"start": "2030-06-01T10:00:00Z", "duration": 1.5}`), &u))
		require.NotNil(t, u.Start)
		assert.Equal(t, time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC), u.Start.UTC())
		require.NotNil(t, u.Duration)
		assert.Equal(t, 1.5, *u.Duration)
		assert.False(t, u.HasNull())
	})

	t.Run("UnknownFieldsIgnored", func(t *testing.T) {
		var u BookingUpdate
		require.NoError(t, json.Unmarshal([]byte(`{"room": "x"}`), &u))
		assert.True(t, u.Empty())
	})

	t.Run("Supplied", func(t *testing.T) {
		var u BookingUpdate
		require.NoError(t, json.Unmarshal([]byte(`{"duration": 2}`), &u))
		fields := u.Supplied()
		assert.Len(t, fields, 1)
		assert.Equal(t, 2.0, fields["duration"])
	})
}
