package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"resbook/constants"
	"resbook/models"
)

type gormBookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &gormBookingRepository{db: db}
}

func (r *gormBookingRepository) Create(b *models.Booking) error {
	return r.db.Create(b).Error
}

func (r *gormBookingRepository) Save(b *models.Booking) error {
	return r.db.Save(b).Error
}

func (r *gormBookingRepository) Delete(id uint) error {
	// Audit log xóa theo cascade constraint trên association
	return r.db.Select(clause.Associations).Delete(&models.Booking{ID: id}).Error
}

func (r *gormBookingRepository) FindByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.Preload("User").Preload("Resource").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *gormBookingRepository) List(f BookingFilter) ([]models.Booking, int64, error) {
	tx := r.db.Model(&models.Booking{})

	if f.UserID != 0 {
		tx = tx.Where("user_id = ?", f.UserID)
	}
	if f.ResourceID != 0 {
		tx = tx.Where("resource_id = ?", f.ResourceID)
	}
	if f.Status != nil {
		tx = tx.Where("status = ?", *f.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []models.Booking
	tx = tx.Preload("User").Preload("Resource").Order("created_at desc")
	if f.Limit > 0 {
		tx = tx.Limit(f.Limit)
	}
	if err := tx.Offset(f.Offset).Find(&bookings).Error; err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *gormBookingRepository) ApprovedOverlapExists(resourceID uint, start, end time.Time, excludeID uint) (bool, error) {
	var count int64
	tx := r.db.Model(&models.Booking{}).
		Where("resource_id = ?", resourceID).
		Where("status = ?", constants.BookingStatusApproved).
		Where("start_time < ? AND end_time > ?", end, start)
	if excludeID != 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormBookingRepository) ApprovedOnDate(resourceID uint, date time.Time) ([]models.Booking, error) {
	dayStart := time.Date(date.UTC().Year(), date.UTC().Month(), date.UTC().Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var bookings []models.Booking
	err := r.db.Preload("User").
		Where("resource_id = ?", resourceID).
		Where("status = ?", constants.BookingStatusApproved).
		Where("start_time >= ? AND start_time < ?", dayStart, dayEnd).
		Order("start_time asc").
		Find(&bookings).Error
	return bookings, err
}

func (r *gormBookingRepository) ExpiredApproved(cutoff time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.
		Where("status = ?", constants.BookingStatusApproved).
		Where("checked_in_at IS NULL").
		Where("start_time < ?", cutoff).
		Find(&bookings).Error
	return bookings, err
}

func (r *gormBookingRepository) CheckIn(id uint, at time.Time) (bool, error) {
	// Update có điều kiện: sweep chạy song song có thể đã release booking này
	res := r.db.Model(&models.Booking{}).
		Where("id = ?", id).
		Where("status = ?", constants.BookingStatusApproved).
		Update("checked_in_at", at)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *gormBookingRepository) CreateAuditLog(a *models.AuditLog) error {
	return r.db.Create(a).Error
}

func (r *gormBookingRepository) Transaction(fn func(tx BookingRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormBookingRepository{db: tx})
	})
}

func (r *gormBookingRepository) LockResource(resourceID uint) error {
	var resource models.Resource
	return r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&resource, resourceID).Error
}
