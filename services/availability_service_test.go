package services

import (
	"testing"
	"time"

	"resbook/builders"
	"resbook/constants"
	"resbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func availabilityFixture(t *testing.T) (*AvailabilityService, *memBookingRepo, *memUserRepo) {
	t.Helper()
	users := newMemUserRepo()
	bookings := newMemBookingRepo(users)
	return NewAvailabilityService(bookings), bookings, users
}

var availDate = time.Date(2027, 1, 6, 0, 0, 0, 0, time.UTC)

func TestAvailableSlotsEmptyDay(t *testing.T) {
	svc, _, _ := availabilityFixture(t)
	resource := &models.Resource{ID: 1, Name: "Room A"}

	slots, err := svc.AvailableSlots(resource, availDate, 1)
	require.NoError(t, err)

	// 09:00-18:00 chia slot 1 giờ = 9 slot, tất cả trống
	require.Len(t, slots, 9)
	assert.Equal(t, time.Date(2027, 1, 6, 9, 0, 0, 0, time.UTC), slots[0].StartTime)
	assert.Equal(t, time.Date(2027, 1, 6, 18, 0, 0, 0, time.UTC), slots[8].EndTime)
	for _, slot := range slots {
		assert.True(t, slot.Available)
		assert.Zero(t, slot.BookingID)
	}
}

func TestAvailableSlotsMarksOccupied(t *testing.T) {
	svc, bookings, users := availabilityFixture(t)

	owner := models.User{Name: "Linh Tran", Email: "linh@resbook.local"}
	require.NoError(t, users.Create(&owner))

	booked := builders.NewBookingBuilder().
		WithUser(owner.ID).
		WithResource(1).
		WithStatus(constants.BookingStatusApproved).
		WithWindow(time.Date(2027, 1, 6, 10, 0, 0, 0, time.UTC), time.Date(2027, 1, 6, 12, 0, 0, 0, time.UTC)).
		Build()
	require.NoError(t, bookings.Create(booked))

	resource := &models.Resource{ID: 1, Name: "Room A"}
	slots, err := svc.AvailableSlots(resource, availDate, 1)
	require.NoError(t, err)
	require.Len(t, slots, 9)

	// 10:00-11:00 và 11:00-12:00 bận, kèm thông tin người giữ chỗ
	for _, slot := range slots {
		hour := slot.StartTime.Hour()
		if hour == 10 || hour == 11 {
			assert.False(t, slot.Available)
			assert.Equal(t, booked.ID, slot.BookingID)
			assert.Equal(t, "Linh Tran", slot.BookedBy)
			assert.Equal(t, "approved", slot.BookingStatus)
		} else {
			assert.True(t, slot.Available)
		}
	}
}

func TestAvailableSlotsIgnoresNonApproved(t *testing.T) {
	svc, bookings, _ := availabilityFixture(t)

	for _, status := range []int{
		constants.BookingStatusPending,
		constants.BookingStatusRejected,
		constants.BookingStatusCancelledByUser,
		constants.BookingStatusAutoReleased,
	} {
		b := builders.NewBookingBuilder().
			WithResource(1).
			WithStatus(status).
			WithWindow(time.Date(2027, 1, 6, 10, 0, 0, 0, time.UTC), time.Date(2027, 1, 6, 11, 0, 0, 0, time.UTC)).
			Build()
		require.NoError(t, bookings.Create(b))
	}

	resource := &models.Resource{ID: 1}
	slots, err := svc.AvailableSlots(resource, availDate, 1)
	require.NoError(t, err)
	for _, slot := range slots {
		assert.True(t, slot.Available)
	}
}

func TestAvailableSlotsDropsTrailingPartialSlot(t *testing.T) {
	svc, _, _ := availabilityFixture(t)
	resource := &models.Resource{ID: 1}

	// Slot 2 giờ: 9-11, 11-13, 13-15, 15-17; slot lẻ 17-19 bị bỏ
	slots, err := svc.AvailableSlots(resource, availDate, 2)
	require.NoError(t, err)
	require.Len(t, slots, 4)
	assert.Equal(t, 17, slots[3].EndTime.Hour())
}

func TestAvailableSlotsFractionalDuration(t *testing.T) {
	svc, _, _ := availabilityFixture(t)
	resource := &models.Resource{ID: 1}

	// 9 giờ làm việc chia slot 1.5 giờ = 6 slot
	slots, err := svc.AvailableSlots(resource, availDate, 1.5)
	require.NoError(t, err)
	assert.Len(t, slots, 6)
}

func TestAvailableSlotsCoercesInvalidDuration(t *testing.T) {
	svc, _, _ := availabilityFixture(t)
	resource := &models.Resource{ID: 1}

	slots, err := svc.AvailableSlots(resource, availDate, 0)
	require.NoError(t, err)
	assert.Len(t, slots, 9)

	slots, err = svc.AvailableSlots(resource, availDate, -3)
	require.NoError(t, err)
	assert.Len(t, slots, 9)
}
