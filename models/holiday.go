package models

import (
	"time"
)

type Holiday struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	HolidayDate time.Time `json:"holidayDate" gorm:"index"` // Ngày nghỉ lễ, chỉ dùng phần ngày
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
