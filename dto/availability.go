package dto

import (
	"time"
)

// Slot một khoảng giờ trong khung làm việc, kèm thông tin người giữ chỗ nếu bận
type Slot struct {
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Available     bool      `json:"available"`
	BookingID     uint      `json:"booking_id,omitempty"`
	BookedBy      string    `json:"booked_by,omitempty"`
	BookingStatus string    `json:"booking_status,omitempty"`
}

// AvailabilityResponse lưới slot của một resource trong một ngày
type AvailabilityResponse struct {
	ResourceID        uint    `json:"resource_id"`
	ResourceName      string  `json:"resource_name"`
	QueryDate         string  `json:"query_date"`
	SlotDurationHours float64 `json:"slot_duration_hours"`
	AvailableSlots    []Slot  `json:"available_slots"`
}
