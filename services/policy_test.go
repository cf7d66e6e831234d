package services

import (
	"testing"

	"resbook/constants"
	"resbook/models"

	"github.com/stretchr/testify/assert"
)

func TestAdminCanPerformEverything(t *testing.T) {
	actions := []Action{
		ActionReadBooking, ActionCreateBooking, ActionUpdateBooking,
		ActionApproveBooking, ActionCancelBooking, ActionCheckIn,
		ActionDeleteBooking, ActionManageResource, ActionManageHoliday,
		ActionReleaseExpired, ActionReadAudit,
	}
	for _, action := range actions {
		assert.True(t, CanPerform(constants.RoleAdmin, action, 99, 1), string(action))
	}
}

func TestEmployeeOwnBookingOnly(t *testing.T) {
	const owner, stranger = uint(5), uint(6)

	ownActions := []Action{ActionUpdateBooking, ActionCancelBooking, ActionCheckIn}
	for _, action := range ownActions {
		assert.True(t, CanPerform(constants.RoleEmployee, action, owner, owner), string(action))
		assert.False(t, CanPerform(constants.RoleEmployee, action, owner, stranger), string(action))
	}
}

func TestEmployeeCannotAdminister(t *testing.T) {
	adminOnly := []Action{
		ActionApproveBooking, ActionDeleteBooking, ActionManageResource,
		ActionManageHoliday, ActionReleaseExpired, ActionReadAudit,
	}
	for _, action := range adminOnly {
		// Kể cả trên booking của chính mình
		assert.False(t, CanPerform(constants.RoleEmployee, action, 5, 5), string(action))
	}
}

func TestEmployeeUpdatesOwnPendingOnly(t *testing.T) {
	const owner, stranger = uint(5), uint(6)

	pending := &models.Booking{UserID: owner, Status: constants.BookingStatusPending}
	approved := &models.Booking{UserID: owner, Status: constants.BookingStatusApproved}

	assert.True(t, CanUpdateBooking(constants.RoleEmployee, pending, owner))
	assert.False(t, CanUpdateBooking(constants.RoleEmployee, approved, owner))
	assert.False(t, CanUpdateBooking(constants.RoleEmployee, pending, stranger))

	// Admin sửa được ở mọi trạng thái
	assert.True(t, CanUpdateBooking(constants.RoleAdmin, approved, stranger))
}

func TestEmployeeCanReadAndCreate(t *testing.T) {
	assert.True(t, CanPerform(constants.RoleEmployee, ActionReadBooking, 99, 5))
	assert.True(t, CanPerform(constants.RoleEmployee, ActionCreateBooking, 0, 5))
}
