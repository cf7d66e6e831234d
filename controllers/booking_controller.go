package controllers

import (
	stderrors "errors"
	"strconv"

	"resbook/constants"
	"resbook/dto"
	"resbook/errors"
	"resbook/models"
	"resbook/repository"
	"resbook/response"
	"resbook/services"
	"resbook/types"

	"github.com/gin-gonic/gin"
)

// BookingController gom các handler cho booking, audit đi kèm booking
type BookingController struct {
	service *services.BookingService
	audits  repository.AuditLogRepository
}

func NewBookingController(service *services.BookingService, audits repository.AuditLogRepository) *BookingController {
	return &BookingController{service: service, audits: audits}
}

func currentUser(c *gin.Context) (uint, int) {
	userID, _ := c.Get("userID")
	userRole, _ := c.Get("userRole")
	id, _ := userID.(uint)
	role, _ := userRole.(int)
	return id, role
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// writeBookingError ánh xạ lỗi nghiệp vụ sang HTTP status
func writeBookingError(c *gin.Context, err error) {
	var vf *services.ValidationFailure
	if stderrors.As(err, &vf) {
		response.Unprocessable(c, vf)
		return
	}

	if appErr := errors.GetAppError(err); appErr != nil {
		if appErr.Code == errors.ErrCodeInvalidLifecycle {
			response.Conflict(c, appErr.Message)
			return
		}
		response.BadRequest(c, appErr.Message)
		return
	}

	switch {
	case stderrors.Is(err, errors.ErrBookingNotFound),
		stderrors.Is(err, errors.ErrResourceNotFound),
		stderrors.Is(err, errors.ErrUserNotFound):
		response.NotFound(c)
	default:
		response.ServerError(c)
	}
}

func toBookingResponse(b *models.Booking) dto.BookingResponse {
	resp := dto.BookingResponse{
		ID:                   b.ID,
		StartTime:            b.StartTime,
		EndTime:              b.EndTime,
		Status:               b.Status,
		StatusName:           b.StatusName(),
		ApprovedAt:           b.ApprovedAt,
		CancelledAt:          b.CancelledAt,
		CheckedInAt:          b.CheckedInAt,
		AutoReleasedAt:       b.AutoReleasedAt,
		AdminNote:            b.AdminNote,
		AllowSmallerCapacity: b.AllowSmallerCapacity,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}
	if b.User != nil {
		resp.User = &types.UserSummary{
			ID:         b.User.ID,
			EmployeeID: b.User.EmployeeID,
			Name:       b.User.Name,
			Email:      b.User.Email,
			Role:       b.User.Role,
		}
	}
	if b.Resource != nil {
		resp.Resource = &dto.ResourceSummary{
			ID:           b.Resource.ID,
			Name:         b.Resource.Name,
			ResourceType: b.Resource.ResourceType,
			Location:     b.Resource.Location,
		}
	}
	return resp
}

// CreateBooking tạo booking mới ở trạng thái pending
func (ct *BookingController) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	actorID, role := currentUser(c)
	ownerID := actorID
	// Admin được tạo hộ booking cho nhân viên khác
	if req.UserID != 0 && req.UserID != actorID {
		if role != constants.RoleAdmin {
			response.Forbidden(c)
			return
		}
		ownerID = req.UserID
	}

	booking, err := ct.service.CreateBooking(services.CreateBookingInput{
		UserID:               ownerID,
		ResourceID:           req.ResourceID,
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		AllowSmallerCapacity: req.AllowSmallerCapacity,
		PerformerID:          actorID,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	response.Created(c, toBookingResponse(booking))
}

// GetBookings danh sách booking, nhân viên chỉ thấy booking của mình
func (ct *BookingController) GetBookings(c *gin.Context) {
	actorID, role := currentUser(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	filter := repository.BookingFilter{Limit: limit, Offset: offset}

	if resourceID, err := strconv.ParseUint(c.Query("resourceId"), 10, 64); err == nil {
		filter.ResourceID = uint(resourceID)
	}
	if statusStr := c.Query("status"); statusStr != "" {
		if status, err := strconv.Atoi(statusStr); err == nil &&
			status >= constants.BookingStatusPending && status <= constants.BookingStatusCancelledByUser {
			filter.Status = &status
		}
	}

	if role == constants.RoleAdmin {
		if userID, err := strconv.ParseUint(c.Query("userId"), 10, 64); err == nil {
			filter.UserID = uint(userID)
		}
	} else {
		filter.UserID = actorID
	}

	bookings, total, err := ct.service.ListBookings(filter)
	if err != nil {
		response.ServerError(c)
		return
	}

	items := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		items = append(items, toBookingResponse(&bookings[i]))
	}

	page := offset/limit + 1
	response.SuccessWithPagination(c, items, page, limit, int(total))
}

// GetBookingDetail chi tiết một booking
func (ct *BookingController) GetBookingDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := ct.service.GetBooking(id)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	actorID, role := currentUser(c)
	if !services.CanPerform(role, services.ActionReadBooking, booking.UserID, actorID) {
		response.Forbidden(c)
		return
	}

	response.Success(c, toBookingResponse(booking))
}

// UpdateBooking sửa booking: đổi giờ, đổi resource, chuyển trạng thái.
// Đổi trạng thái approve/reject/auto-release là việc của admin,
// nhân viên chỉ được cancel booking của mình.
func (ct *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	booking, err := ct.service.GetBooking(id)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	actorID, role := currentUser(c)
	if req.Status != nil {
		switch *req.Status {
		case constants.BookingStatusCancelledByUser:
			if !services.CanPerform(role, services.ActionCancelBooking, booking.UserID, actorID) {
				response.Forbidden(c)
				return
			}
		default:
			if !services.CanPerform(role, services.ActionApproveBooking, booking.UserID, actorID) {
				response.Forbidden(c)
				return
			}
		}
	} else if !services.CanUpdateBooking(role, booking, actorID) {
		response.Forbidden(c)
		return
	}

	updated, err := ct.service.UpdateBooking(id, req, actorID)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	invalidateAvailabilityCache(updated.ResourceID)
	response.Success(c, toBookingResponse(updated))
}

// CancelBooking hủy booking bởi chính chủ hoặc admin
func (ct *BookingController) CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := ct.service.GetBooking(id)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	actorID, role := currentUser(c)
	if !services.CanPerform(role, services.ActionCancelBooking, booking.UserID, actorID) {
		response.Forbidden(c)
		return
	}

	cancelled, err := ct.service.CancelBooking(id, actorID)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	invalidateAvailabilityCache(cancelled.ResourceID)
	response.Success(c, toBookingResponse(cancelled))
}

// CheckInBooking xác nhận sử dụng, chỉ hợp lệ khi booking đang approved
func (ct *BookingController) CheckInBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := ct.service.GetBooking(id)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	actorID, role := currentUser(c)
	if !services.CanPerform(role, services.ActionCheckIn, booking.UserID, actorID) {
		response.Forbidden(c)
		return
	}

	checked, err := ct.service.CheckIn(id, actorID)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	response.Success(c, toBookingResponse(checked))
}

// DeleteBooking xóa hẳn booking, chỉ admin
func (ct *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := ct.service.GetBooking(id)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	if err := ct.service.DeleteBooking(id); err != nil {
		writeBookingError(c, err)
		return
	}

	invalidateAvailabilityCache(booking.ResourceID)
	response.Success(c, nil)
}

// ReleaseExpiredBookings chạy quét auto release theo yêu cầu, trả về số booking đã release.
// Cùng logic với cron sweep nhưng cho admin kích hoạt ngay.
func (ct *BookingController) ReleaseExpiredBookings(c *gin.Context) {
	actorID, role := currentUser(c)
	if !services.CanPerform(role, services.ActionReleaseExpired, 0, actorID) {
		response.Forbidden(c)
		return
	}

	released, err := ct.service.ReleaseExpiredBookings()
	if err != nil {
		response.ServerError(c)
		return
	}

	if released > 0 {
		invalidateAllAvailabilityCaches()
	}
	response.Success(c, gin.H{"releasedCount": released})
}

// GetBookingAudits lịch sử chuyển trạng thái của một booking
func (ct *BookingController) GetBookingAudits(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if _, err := ct.service.GetBooking(id); err != nil {
		writeBookingError(c, err)
		return
	}

	logs, err := ct.audits.ListByBooking(id)
	if err != nil {
		response.ServerError(c)
		return
	}

	items := make([]dto.AuditLogResponse, 0, len(logs))
	for i := range logs {
		items = append(items, toAuditLogResponse(&logs[i]))
	}

	response.Success(c, items)
}

func toAuditLogResponse(a *models.AuditLog) dto.AuditLogResponse {
	resp := dto.AuditLogResponse{
		ID:            a.ID,
		BookingID:     a.BookingID,
		ResourceID:    a.ResourceID,
		Action:        a.Action,
		OldStatus:     a.OldStatus,
		NewStatus:     a.NewStatus,
		OldStatusName: constants.BookingStatusName(a.OldStatus),
		NewStatusName: constants.BookingStatusName(a.NewStatus),
		Message:       a.Message,
		CreatedAt:     a.CreatedAt,
	}
	if a.Performer != nil {
		resp.Performer = &types.UserSummary{
			ID:         a.Performer.ID,
			EmployeeID: a.Performer.EmployeeID,
			Name:       a.Performer.Name,
			Email:      a.Performer.Email,
			Role:       a.Performer.Role,
		}
	}
	return resp
}
