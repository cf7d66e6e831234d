package models

import (
	"time"
)

// Notification lưu lại các thông báo đã gửi cho user
type Notification struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           uint      `json:"userId" gorm:"index"`
	BookingID        uint      `json:"bookingId"`
	NotificationType string    `json:"notificationType"`
	Channel          string    `json:"channel"`
	Message          string    `json:"message"`
	IsRead           bool      `json:"isRead" gorm:"default:false"`
	SentAt           time.Time `json:"sentAt"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
