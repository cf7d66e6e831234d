package dto

import (
	"encoding/json"
	"time"
)

// CreateResourceRequest payload tạo resource mới
type CreateResourceRequest struct {
	Name         string          `json:"name" binding:"required"`
	ResourceType string          `json:"resourceType" binding:"required"`
	Description  string          `json:"description"`
	Location     string          `json:"location"`
	IsActive     *bool           `json:"isActive"`
	Properties   json.RawMessage `json:"properties"`
	Tags         []string        `json:"tags"`
}

// UpdateResourceRequest payload sửa resource
type UpdateResourceRequest struct {
	Name         *string         `json:"name"`
	ResourceType *string         `json:"resourceType"`
	Description  *string         `json:"description"`
	Location     *string         `json:"location"`
	IsActive     *bool           `json:"isActive"`
	Properties   json.RawMessage `json:"properties"`
	Tags         []string        `json:"tags"`
}

// ResourceSummary thông tin rút gọn của resource cho suggestion / booking
type ResourceSummary struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	ResourceType string `json:"resource_type"`
	Location     string `json:"location,omitempty"`
}

// ResourceResponse thông tin đầy đủ trả về client
type ResourceResponse struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	ResourceType string          `json:"resourceType"`
	Description  string          `json:"description,omitempty"`
	Location     string          `json:"location,omitempty"`
	IsActive     bool            `json:"isActive"`
	Properties   json.RawMessage `json:"properties,omitempty"`
	Tags         []string        `json:"tags,omitempty"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
