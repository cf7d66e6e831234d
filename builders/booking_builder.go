package builders

import (
	"time"

	"resbook/constants"
	"resbook/models"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{Status: constants.BookingStatusPending},
	}
}

// WithID gán id
func (b *BookingBuilder) WithID(id uint) *BookingBuilder {
	b.booking.ID = id
	return b
}

// WithUser thêm thông tin user
func (b *BookingBuilder) WithUser(userID uint) *BookingBuilder {
	b.booking.UserID = userID
	return b
}

// WithResource thêm thông tin resource
func (b *BookingBuilder) WithResource(resourceID uint) *BookingBuilder {
	b.booking.ResourceID = resourceID
	return b
}

// WithStatus thêm trạng thái
func (b *BookingBuilder) WithStatus(status int) *BookingBuilder {
	b.booking.Status = status
	return b
}

// WithWindow thêm khung giờ đặt
func (b *BookingBuilder) WithWindow(start, end time.Time) *BookingBuilder {
	b.booking.StartTime = start
	b.booking.EndTime = end
	return b
}

// WithApprovedAt thêm thời điểm duyệt
func (b *BookingBuilder) WithApprovedAt(at time.Time) *BookingBuilder {
	b.booking.ApprovedAt = &at
	return b
}

// WithCheckedInAt thêm thời điểm check-in
func (b *BookingBuilder) WithCheckedInAt(at time.Time) *BookingBuilder {
	b.booking.CheckedInAt = &at
	return b
}

// WithAdminNote thêm ghi chú của admin
func (b *BookingBuilder) WithAdminNote(note string) *BookingBuilder {
	b.booking.AdminNote = note
	return b
}

// Build tạo booking hoàn chỉnh
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
