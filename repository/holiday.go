package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"resbook/models"
)

type gormHolidayRepository struct {
	db *gorm.DB
}

func NewHolidayRepository(db *gorm.DB) HolidayRepository {
	return &gormHolidayRepository{db: db}
}

func (r *gormHolidayRepository) Create(h *models.Holiday) error {
	return r.db.Create(h).Error
}

func (r *gormHolidayRepository) Save(h *models.Holiday) error {
	return r.db.Save(h).Error
}

func (r *gormHolidayRepository) Delete(id uint) error {
	return r.db.Delete(&models.Holiday{}, id).Error
}

func (r *gormHolidayRepository) FindByID(id uint) (*models.Holiday, error) {
	var holiday models.Holiday
	if err := r.db.First(&holiday, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &holiday, nil
}

func (r *gormHolidayRepository) FindByDate(date time.Time) (*models.Holiday, error) {
	dayStart := time.Date(date.UTC().Year(), date.UTC().Month(), date.UTC().Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var holiday models.Holiday
	err := r.db.Where("holiday_date >= ? AND holiday_date < ?", dayStart, dayEnd).First(&holiday).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &holiday, nil
}

func (r *gormHolidayRepository) List() ([]models.Holiday, error) {
	var holidays []models.Holiday
	err := r.db.Order("holiday_date asc").Find(&holidays).Error
	return holidays, err
}
