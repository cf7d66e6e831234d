package models

import (
	"testing"
	"time"

	"resbook/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stateNow = time.Date(2027, 1, 6, 10, 0, 0, 0, time.UTC)

func TestPendingStateApprove(t *testing.T) {
	b := &Booking{Status: constants.BookingStatusPending}
	require.NoError(t, GetBookingState(b.Status).Approve(b, stateNow))

	assert.Equal(t, constants.BookingStatusApproved, b.Status)
	require.NotNil(t, b.ApprovedAt)
	assert.Equal(t, stateNow, *b.ApprovedAt)
}

func TestPendingStateReject(t *testing.T) {
	b := &Booking{Status: constants.BookingStatusPending}
	require.NoError(t, GetBookingState(b.Status).Reject(b))
	assert.Equal(t, constants.BookingStatusRejected, b.Status)
}

func TestPendingStateCancel(t *testing.T) {
	b := &Booking{Status: constants.BookingStatusPending}
	require.NoError(t, GetBookingState(b.Status).Cancel(b, stateNow))

	assert.Equal(t, constants.BookingStatusCancelledByUser, b.Status)
	require.NotNil(t, b.CancelledAt)
}

func TestPendingStateCannotAutoRelease(t *testing.T) {
	b := &Booking{Status: constants.BookingStatusPending}
	assert.Error(t, GetBookingState(b.Status).AutoRelease(b, stateNow))
	assert.Equal(t, constants.BookingStatusPending, b.Status)
}

func TestApprovedStateCancel(t *testing.T) {
	b := &Booking{Status: constants.BookingStatusApproved}
	require.NoError(t, GetBookingState(b.Status).Cancel(b, stateNow))
	assert.Equal(t, constants.BookingStatusCancelledByUser, b.Status)
}

func TestApprovedStateAutoRelease(t *testing.T) {
	b := &Booking{Status: constants.BookingStatusApproved}
	require.NoError(t, GetBookingState(b.Status).AutoRelease(b, stateNow))

	assert.Equal(t, constants.BookingStatusAutoReleased, b.Status)
	require.NotNil(t, b.AutoReleasedAt)
	assert.Equal(t, constants.AutoReleaseNote, b.AdminNote)
}

func TestApprovedStateCannotApproveOrReject(t *testing.T) {
	b := &Booking{Status: constants.BookingStatusApproved}
	state := GetBookingState(b.Status)

	assert.Error(t, state.Approve(b, stateNow))
	assert.Error(t, state.Reject(b))
	assert.Equal(t, constants.BookingStatusApproved, b.Status)
}

func TestTerminalStatesRejectEverything(t *testing.T) {
	terminal := []int{
		constants.BookingStatusRejected,
		constants.BookingStatusExpired,
		constants.BookingStatusAutoReleased,
		constants.BookingStatusCancelledByUser,
	}

	for _, status := range terminal {
		b := &Booking{Status: status}
		state := GetBookingState(status)

		assert.Error(t, state.Approve(b, stateNow))
		assert.Error(t, state.Reject(b))
		assert.Error(t, state.Cancel(b, stateNow))
		assert.Error(t, state.AutoRelease(b, stateNow))
		assert.Equal(t, status, b.Status)
		assert.True(t, b.IsTerminal())
	}
}

func TestOverlapRelevant(t *testing.T) {
	assert.True(t, OverlapRelevant(constants.BookingStatusPending))
	assert.True(t, OverlapRelevant(constants.BookingStatusApproved))
	assert.False(t, OverlapRelevant(constants.BookingStatusRejected))
	assert.False(t, OverlapRelevant(constants.BookingStatusExpired))
	assert.False(t, OverlapRelevant(constants.BookingStatusAutoReleased))
	assert.False(t, OverlapRelevant(constants.BookingStatusCancelledByUser))
}
