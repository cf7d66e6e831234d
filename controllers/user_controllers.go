package controllers

import (
	"strconv"

	"resbook/config"
	"resbook/models"
	"resbook/response"
	"resbook/types"

	"github.com/gin-gonic/gin"
)

func toUserSummary(u *models.User) types.UserSummary {
	return types.UserSummary{
		ID:         u.ID,
		EmployeeID: u.EmployeeID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
	}
}

// GetUsers danh sách user, chỉ admin
func GetUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var total int64
	if err := config.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var users []models.User
	if err := config.DB.Order("id asc").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		response.ServerError(c)
		return
	}

	items := make([]types.UserSummary, 0, len(users))
	for i := range users {
		items = append(items, toUserSummary(&users[i]))
	}

	page := offset/limit + 1
	response.SuccessWithPagination(c, items, page, limit, int(total))
}

// GetProfile thông tin user đang đăng nhập
func GetProfile(c *gin.Context) {
	userID, _ := c.Get("userID")
	id, ok := userID.(uint)
	if !ok || id == 0 {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toUserSummary(&user))
}
