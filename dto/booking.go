package dto

import (
	"time"

	"resbook/types"
)

// CreateBookingRequest payload tạo booking mới
type CreateBookingRequest struct {
	UserID               uint      `json:"userId"`
	ResourceID           uint      `json:"resourceId" binding:"required"`
	StartTime            time.Time `json:"startTime" binding:"required"`
	EndTime              time.Time `json:"endTime" binding:"required"`
	AllowSmallerCapacity bool      `json:"allowSmallerCapacity"`
}

// UpdateBookingRequest payload sửa booking, field nil thì giữ nguyên
type UpdateBookingRequest struct {
	ResourceID *uint      `json:"resourceId"`
	StartTime  *time.Time `json:"startTime"`
	EndTime    *time.Time `json:"endTime"`
	Status     *int       `json:"status" binding:"omitempty,min=0,max=5"`
	AdminNote  *string    `json:"adminNote"`
}

// BookingResponse thông tin booking trả về client
type BookingResponse struct {
	ID                   uint               `json:"id"`
	User                 *types.UserSummary `json:"user,omitempty"`
	Resource             *ResourceSummary   `json:"resource,omitempty"`
	StartTime            time.Time          `json:"startTime"`
	EndTime              time.Time          `json:"endTime"`
	Status               int                `json:"status"`
	StatusName           string             `json:"statusName"`
	ApprovedAt           *time.Time         `json:"approvedAt,omitempty"`
	CancelledAt          *time.Time         `json:"cancelledAt,omitempty"`
	CheckedInAt          *time.Time         `json:"checkedInAt,omitempty"`
	AutoReleasedAt       *time.Time         `json:"autoReleasedAt,omitempty"`
	AdminNote            string             `json:"adminNote,omitempty"`
	AllowSmallerCapacity bool               `json:"allowSmallerCapacity"`
	CreatedAt            time.Time          `json:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt"`
}

// Suggestions gợi ý khi slot bị trùng: resource thay thế + slot còn trống
type Suggestions struct {
	AvailableResources []ResourceSummary `json:"available_resources"`
	AvailableSlots     []Slot            `json:"available_slots"`
}
