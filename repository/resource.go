package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"resbook/constants"
	"resbook/models"
)

type gormResourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &gormResourceRepository{db: db}
}

func (r *gormResourceRepository) Create(res *models.Resource) error {
	return r.db.Create(res).Error
}

func (r *gormResourceRepository) Save(res *models.Resource) error {
	return r.db.Save(res).Error
}

func (r *gormResourceRepository) Delete(id uint) error {
	return r.db.Delete(&models.Resource{}, id).Error
}

func (r *gormResourceRepository) FindByID(id uint) (*models.Resource, error) {
	var resource models.Resource
	if err := r.db.First(&resource, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &resource, nil
}

func (r *gormResourceRepository) FindByName(name string) (*models.Resource, error) {
	var resource models.Resource
	if err := r.db.Where("LOWER(name) = ?", strings.ToLower(name)).First(&resource).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &resource, nil
}

func (r *gormResourceRepository) List(f ResourceFilter) ([]models.Resource, int64, error) {
	tx := r.db.Model(&models.Resource{})

	if f.ResourceType != "" {
		tx = tx.Where("resource_type = ?", f.ResourceType)
	}
	if f.Location != "" {
		tx = tx.Where("location = ?", f.Location)
	}
	if f.IsActive != nil {
		tx = tx.Where("is_active = ?", *f.IsActive)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var resources []models.Resource
	if f.Limit > 0 {
		tx = tx.Limit(f.Limit)
	}
	if err := tx.Offset(f.Offset).Order("name asc").Find(&resources).Error; err != nil {
		return nil, 0, err
	}
	return resources, total, nil
}

func (r *gormResourceRepository) ActiveByType(resourceType string, excludeID uint) ([]models.Resource, error) {
	var resources []models.Resource
	tx := r.db.Where("resource_type = ?", resourceType).Where("is_active = ?", true)
	if excludeID != 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	err := tx.Order("id asc").Find(&resources).Error
	return resources, err
}

func (r *gormResourceRepository) TurfExists(excludeID uint) (bool, error) {
	var count int64
	tx := r.db.Model(&models.Resource{}).Where("resource_type = ?", constants.ResourceTypeTurf)
	if excludeID != 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
