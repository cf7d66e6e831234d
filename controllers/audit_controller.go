package controllers

import (
	"strconv"

	"resbook/dto"
	"resbook/repository"
	"resbook/response"

	"github.com/gin-gonic/gin"
)

// AuditController handler cho lịch sử chuyển trạng thái toàn hệ thống, chỉ admin
type AuditController struct {
	audits repository.AuditLogRepository
}

func NewAuditController(audits repository.AuditLogRepository) *AuditController {
	return &AuditController{audits: audits}
}

// GetAuditLogs toàn bộ audit log, mới nhất trước
func (ct *AuditController) GetAuditLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	logs, total, err := ct.audits.List(limit, offset)
	if err != nil {
		response.ServerError(c)
		return
	}

	items := make([]dto.AuditLogResponse, 0, len(logs))
	for i := range logs {
		items = append(items, toAuditLogResponse(&logs[i]))
	}

	page := offset/limit + 1
	response.SuccessWithPagination(c, items, page, limit, int(total))
}
