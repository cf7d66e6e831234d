package services

import (
	"resbook/constants"
	"resbook/models"
)

// Action các hành động cần kiểm tra quyền
type Action string

const (
	ActionReadBooking    Action = "read_booking"
	ActionCreateBooking  Action = "create_booking"
	ActionUpdateBooking  Action = "update_booking"
	ActionApproveBooking Action = "approve_booking"
	ActionCancelBooking  Action = "cancel_booking"
	ActionCheckIn        Action = "check_in"
	ActionDeleteBooking  Action = "delete_booking"
	ActionManageResource Action = "manage_resource"
	ActionManageHoliday  Action = "manage_holiday"
	ActionReleaseExpired Action = "release_expired"
	ActionReadAudit      Action = "read_audit"
)

// CanPerform policy tập trung cho toàn bộ phân quyền.
// Admin làm được mọi thứ; employee chỉ thao tác trên booking của mình.
func CanPerform(role int, action Action, resourceOwnerID, actorID uint) bool {
	if role == constants.RoleAdmin {
		return true
	}

	switch action {
	case ActionReadBooking, ActionCreateBooking:
		return true
	case ActionUpdateBooking, ActionCancelBooking, ActionCheckIn:
		return resourceOwnerID == actorID
	}

	// approve / delete / manage / release / audit chỉ dành cho admin
	return false
}

// CanUpdateBooking bổ sung điều kiện trạng thái lên trên quyền sở hữu:
// nhân viên chỉ được sửa booking của mình khi còn pending, admin thì không giới hạn.
func CanUpdateBooking(role int, booking *models.Booking, actorID uint) bool {
	if !CanPerform(role, ActionUpdateBooking, booking.UserID, actorID) {
		return false
	}
	return role == constants.RoleAdmin || booking.Status == constants.BookingStatusPending
}
