package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingStateTransitions(t *testing.T) {
	b := &Booking{Status: BookingStatusPending}
	state := GetBookingState(b.Status)

	require.NoError(t, state.Confirm(b))
	assert.Equal(t, BookingStatusConfirmed, b.Status)

	b2 := &Booking{Status: BookingStatusPending}
	require.NoError(t, GetBookingState(b2.Status).Cancel(b2))
	assert.Equal(t, BookingStatusCancelled, b2.Status)
}

func TestConfirmedStateTransitions(t *testing.T) {
	b := &Booking{Status: BookingStatusConfirmed}
	state := GetBookingState(b.Status)

	assert.Error(t, state.Confirm(b))

	require.NoError(t, state.Cancel(b))
	assert.Equal(t, BookingStatusCancelled, b.Status)
}

func TestCancelledStateIsTerminal(t *testing.T) {
	b := &Booking{Status: BookingStatusCancelled}
	state := GetBookingState(b.Status)

	assert.Error(t, state.Confirm(b))
	assert.Error(t, state.Cancel(b))
	assert.Equal(t, BookingStatusCancelled, b.Status)
}
