package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusIsValid(t *testing.T) {
	assert.True(t, BookingStatusPending.IsValid())
	assert.True(t, BookingStatusConfirmed.IsValid())
	assert.True(t, BookingStatusCancelled.IsValid())
	assert.False(t, BookingStatus("unknown").IsValid())
}

func TestBookingStatusCanTransitionTo(t *testing.T) {
	t.Run("PendingCanConfirmOrCancel", func(t *testing.T) {
		assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusConfirmed))
		assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusCancelled))
	})

	t.Run("ConfirmedIsTerminal", func(t *testing.T) {
		assert.False(t, BookingStatusConfirmed.CanTransitionTo(BookingStatusPending))
		assert.False(t, BookingStatusConfirmed.CanTransitionTo(BookingStatusCancelled))
	})

	t.Run("CancelledIsTerminal", func(t *testing.T) {
		assert.False(t, BookingStatusCancelled.CanTransitionTo(BookingStatusPending))
		assert.False(t, BookingStatusCancelled.CanTransitionTo(BookingStatusConfirmed))
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		assert.False(t, BookingStatus("unknown").CanTransitionTo(BookingStatusConfirmed))
	})
}
