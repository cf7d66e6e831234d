package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"

	"resbook/constants"
)

type Resource struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	Name         string          `json:"name" gorm:"uniqueIndex" validate:"required"`
	ResourceType string          `json:"resourceType" gorm:"index" validate:"required"`
	Description  string          `json:"description,omitempty"`
	Location     string          `json:"location,omitempty"`
	IsActive     bool            `json:"isActive" gorm:"default:true"`
	Properties   json.RawMessage `json:"properties,omitempty" gorm:"type:jsonb"`
	Tags         pq.StringArray  `json:"tags,omitempty" gorm:"type:text[]"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	Bookings     []Booking       `json:"-" gorm:"foreignKey:ResourceID"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsTurf kiểm tra resource có phải loại turf không
func (r *Resource) IsTurf() bool {
	return r.ResourceType == constants.ResourceTypeTurf
}

// ValidateType kiểm tra loại resource hợp lệ
func (r *Resource) ValidateType() error {
	if !constants.ValidResourceType(r.ResourceType) {
		return fmt.Errorf("invalid resource type: %s", r.ResourceType)
	}
	return nil
}

func validateProperties(properties json.RawMessage) error {
	if len(properties) == 0 {
		return nil
	}

	var props map[string]interface{}
	if err := json.Unmarshal(properties, &props); err != nil {
		return fmt.Errorf("properties must be a JSON object: %v", err)
	}

	return nil
}

func (r *Resource) Validate() error {
	validate := validator.New()

	if err := validate.Struct(r); err != nil {
		return err
	}

	if err := r.ValidateType(); err != nil {
		return err
	}

	return validateProperties(r.Properties)
}
