package dto

import (
	"time"

	"resbook/types"
)

// AuditLogResponse bản ghi audit trả về client
type AuditLogResponse struct {
	ID            uint               `json:"id"`
	BookingID     uint               `json:"bookingId"`
	ResourceID    uint               `json:"resourceId"`
	Performer     *types.UserSummary `json:"performer,omitempty"`
	Action        string             `json:"action"`
	OldStatus     int                `json:"oldStatus"`
	NewStatus     int                `json:"newStatus"`
	OldStatusName string             `json:"oldStatusName"`
	NewStatusName string             `json:"newStatusName"`
	Message       string             `json:"message"`
	CreatedAt     time.Time          `json:"createdAt"`
}
