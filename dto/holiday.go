package dto

import "time"

// CreateHolidayRequest payload tạo ngày lễ, ngày theo định dạng 02/01/2006
type CreateHolidayRequest struct {
	Name        string `json:"name" binding:"required"`
	HolidayDate string `json:"holidayDate" binding:"required"`
}

// UpdateHolidayRequest payload sửa ngày lễ
type UpdateHolidayRequest struct {
	ID          uint   `json:"id" binding:"required"`
	Name        string `json:"name"`
	HolidayDate string `json:"holidayDate"`
}

// HolidayResponse thông tin ngày lễ trả về client
type HolidayResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	HolidayDate string    `json:"holidayDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
