package controllers

import (
	"resbook/repository"
	"resbook/response"

	"github.com/gin-gonic/gin"
)

// NotificationController handler cho thông báo của user
type NotificationController struct {
	notifications repository.NotificationRepository
}

func NewNotificationController(notifications repository.NotificationRepository) *NotificationController {
	return &NotificationController{notifications: notifications}
}

// GetMyNotifications danh sách thông báo của user đang đăng nhập
func (ct *NotificationController) GetMyNotifications(c *gin.Context) {
	userID, _ := c.Get("userID")
	id, ok := userID.(uint)
	if !ok || id == 0 {
		response.Unauthorized(c)
		return
	}

	items, err := ct.notifications.ListByUser(id)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, items)
}

// MarkNotificationRead đánh dấu thông báo đã đọc
func (ct *NotificationController) MarkNotificationRead(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ct.notifications.MarkRead(id); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
