package dto

import "time"

// LoginInput payload đăng nhập, identifier là email hoặc employee id
type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// RegisterInput payload đăng ký tài khoản
type RegisterInput struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
}

// GoogleUser thông tin lấy từ Google ID token
type GoogleUser struct {
	Name          string
	Email         string
	VerifiedEmail bool
	Picture       string
}

// UserLoginResponse thông tin user sau khi đăng nhập
type UserLoginResponse struct {
	UserID     uint      `json:"userId"`
	EmployeeID string    `json:"employeeId"`
	UserName   string    `json:"userName"`
	UserEmail  string    `json:"userEmail"`
	UserRole   int       `json:"userRole"`
	UserAvatar string    `json:"userAvatar,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
