package models

import (
	"time"
)

// AuditLog bản ghi append-only cho mỗi lần đổi trạng thái booking
type AuditLog struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	BookingID   uint      `json:"bookingId" gorm:"index"`
	ResourceID  uint      `json:"resourceId" gorm:"index"`
	PerformedBy uint      `json:"performedBy"`
	Performer   *User     `json:"performer,omitempty" gorm:"foreignKey:PerformedBy"`
	Action      string    `json:"action"`
	OldStatus   int       `json:"oldStatus"`
	NewStatus   int       `json:"newStatus"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
