package models

import (
	"time"

	"resbook/constants"
)

type Booking struct {
	ID                   uint       `json:"id" gorm:"primaryKey"`
	UserID               uint       `json:"userId"`
	User                 *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ResourceID           uint       `json:"resourceId"`
	Resource             *Resource  `json:"resource,omitempty" gorm:"foreignKey:ResourceID"`
	StartTime            time.Time  `json:"startTime"`
	EndTime              time.Time  `json:"endTime"`
	Status               int        `json:"status" gorm:"default:0;index"`
	ApprovedAt           *time.Time `json:"approvedAt,omitempty"`
	CancelledAt          *time.Time `json:"cancelledAt,omitempty"`
	CheckedInAt          *time.Time `json:"checkedInAt,omitempty"`
	AutoReleasedAt       *time.Time `json:"autoReleasedAt,omitempty"`
	AdminNote            string     `json:"adminNote,omitempty"`
	AllowSmallerCapacity bool       `json:"allowSmallerCapacity"`
	AuditLogs            []AuditLog `json:"-" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
	CreatedAt            time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

// StatusName trả về tên trạng thái hiện tại
func (b *Booking) StatusName() string {
	return constants.BookingStatusName(b.Status)
}

// IsTerminal kiểm tra booking đã ở trạng thái cuối chưa
func (b *Booking) IsTerminal() bool {
	switch b.Status {
	case constants.BookingStatusRejected,
		constants.BookingStatusExpired,
		constants.BookingStatusAutoReleased,
		constants.BookingStatusCancelledByUser:
		return true
	}
	return false
}

// OverlapRelevant cho biết trạng thái này có tham gia kiểm tra trùng lịch không.
// Booking đã bị từ chối / hết hạn / hủy thì bỏ qua.
func OverlapRelevant(status int) bool {
	switch status {
	case constants.BookingStatusPending, constants.BookingStatusApproved:
		return true
	}
	return false
}
