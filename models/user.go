package models

import (
	"time"

	"resbook/constants"
)

type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	EmployeeID string    `gorm:"unique" json:"employeeId"`
	Name       string    `gorm:"default:New User" json:"name"`
	Email      string    `gorm:"unique" json:"email"`
	Password   string    `json:"-"`
	Role       int       `gorm:"default:0" json:"role"`
	Avatar     string    `json:"avatar,omitempty"`
	Bookings   []Booking `json:"-" gorm:"foreignKey:UserID"`
}

// IsAdmin kiểm tra user có phải admin không
func (u *User) IsAdmin() bool {
	return u.Role == constants.RoleAdmin
}
