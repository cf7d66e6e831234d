package repository

import (
	"time"

	"resbook/models"
)

// BookingFilter điều kiện lọc + phân trang cho danh sách booking
type BookingFilter struct {
	UserID     uint // 0 = không lọc
	ResourceID uint
	Status     *int
	Limit      int
	Offset     int
}

// ResourceFilter điều kiện lọc cho danh sách resource
type ResourceFilter struct {
	ResourceType string
	Location     string
	IsActive     *bool
	Limit        int
	Offset       int
}

// BookingRepository store cho booking, kèm các truy vấn phục vụ overlap engine
type BookingRepository interface {
	Create(b *models.Booking) error
	Save(b *models.Booking) error
	Delete(id uint) error
	FindByID(id uint) (*models.Booking, error)
	List(f BookingFilter) ([]models.Booking, int64, error)

	// ApprovedOverlapExists: existing.start < end AND existing.end > start,
	// chỉ tính booking approved, bỏ qua chính nó khi update
	ApprovedOverlapExists(resourceID uint, start, end time.Time, excludeID uint) (bool, error)
	ApprovedOnDate(resourceID uint, date time.Time) ([]models.Booking, error)
	ExpiredApproved(cutoff time.Time) ([]models.Booking, error)

	// CheckIn chỉ ghi khi status vẫn còn approved, trả về false nếu đã bị đổi
	CheckIn(id uint, at time.Time) (bool, error)

	// CreateAuditLog nằm ở đây vì audit log thuộc sở hữu của booking và
	// phải được ghi trong cùng transaction với lần đổi trạng thái
	CreateAuditLog(a *models.AuditLog) error

	// Transaction chạy fn trong một transaction, LockResource giữ row lock
	// trên resource để chặn hai lần duyệt chồng nhau
	Transaction(fn func(tx BookingRepository) error) error
	LockResource(resourceID uint) error
}

// ResourceRepository store cho resource
type ResourceRepository interface {
	Create(r *models.Resource) error
	Save(r *models.Resource) error
	Delete(id uint) error
	FindByID(id uint) (*models.Resource, error)
	FindByName(name string) (*models.Resource, error)
	List(f ResourceFilter) ([]models.Resource, int64, error)
	ActiveByType(resourceType string, excludeID uint) ([]models.Resource, error)
	TurfExists(excludeID uint) (bool, error)
}

// HolidayRepository store cho ngày lễ
type HolidayRepository interface {
	Create(h *models.Holiday) error
	Save(h *models.Holiday) error
	Delete(id uint) error
	FindByID(id uint) (*models.Holiday, error)
	FindByDate(date time.Time) (*models.Holiday, error)
	List() ([]models.Holiday, error)
}

// UserRepository store cho user
type UserRepository interface {
	Create(u *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	List(limit, offset int) ([]models.User, int64, error)
}

// AuditLogRepository mặt đọc của audit log; ghi đi qua BookingRepository
type AuditLogRepository interface {
	ListByBooking(bookingID uint) ([]models.AuditLog, error)
	List(limit, offset int) ([]models.AuditLog, int64, error)
}

// NotificationRepository store cho notification đã gửi
type NotificationRepository interface {
	Create(n *models.Notification) error
	ListByUser(userID uint) ([]models.Notification, error)
	MarkRead(id uint) error
}
