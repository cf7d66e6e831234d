package controllers

import (
	"net/url"
	"strconv"
	"time"

	"resbook/config"
	"resbook/models"
	"resbook/response"
	"resbook/services"

	"resbook/dto"

	"github.com/gin-gonic/gin"
)

func toHolidayResponse(h *models.Holiday) dto.HolidayResponse {
	return dto.HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		HolidayDate: h.HolidayDate.Format("02/01/2006"),
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

func invalidateHolidayCache() {
	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil {
		cacheKey := "holidays:all"
		_ = services.DeleteFromRedis(config.Ctx, rdb, cacheKey)
	}
}

// GetHolidays lấy tất cả ngày lễ, cache trong Redis
func GetHolidays(c *gin.Context) {
	var holidays []models.Holiday

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	nameFilter := c.Query("name")
	page := 0
	limit := 10

	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	// Không filter thì thử cache trước
	if nameFilter == "" && pageStr == "" && limitStr == "" {
		rdb, err := config.ConnectRedis()
		if err == nil {
			if err := services.GetFromRedis(config.Ctx, rdb, "holidays:all", &holidays); err == nil && len(holidays) > 0 {
				responses := make([]dto.HolidayResponse, 0, len(holidays))
				for i := range holidays {
					responses = append(responses, toHolidayResponse(&holidays[i]))
				}
				response.SuccessWithPagination(c, responses, page, limit, len(responses))
				return
			}
		}
	}

	tx := config.DB.Model(&models.Holiday{})
	if nameFilter != "" {
		decodedNameFilter, err := url.QueryUnescape(nameFilter)
		if err != nil {
			response.ServerError(c)
			return
		}
		tx = tx.Where("name ILIKE ?", "%"+decodedNameFilter+"%")
	}

	var totalHolidays int64
	if err := tx.Count(&totalHolidays).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := tx.Order("holiday_date asc").Offset(page * limit).Limit(limit).Find(&holidays).Error; err != nil {
		response.ServerError(c)
		return
	}

	if nameFilter == "" && pageStr == "" && limitStr == "" {
		rdb, err := config.ConnectRedis()
		if err == nil {
			_ = services.SetToRedis(config.Ctx, rdb, "holidays:all", holidays, 60*time.Minute)
		}
	}

	responses := make([]dto.HolidayResponse, 0, len(holidays))
	for i := range holidays {
		responses = append(responses, toHolidayResponse(&holidays[i]))
	}

	response.SuccessWithPagination(c, responses, page, limit, int(totalHolidays))
}

// CreateHoliday tạo ngày lễ mới
func CreateHoliday(c *gin.Context) {
	var request dto.CreateHolidayRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	holidayDate, err := time.Parse("02/01/2006", request.HolidayDate)
	if err != nil {
		response.BadRequest(c, "Invalid holiday date, expected format dd/mm/yyyy")
		return
	}

	holiday := models.Holiday{
		Name:        request.Name,
		HolidayDate: holidayDate,
	}

	if err := config.DB.Create(&holiday).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateHolidayCache()
	response.Created(c, toHolidayResponse(&holiday))
}

func GetDetailHoliday(c *gin.Context) {
	var holiday models.Holiday
	if err := config.DB.Where("id = ?", c.Param("id")).First(&holiday).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toHolidayResponse(&holiday))
}

// UpdateHoliday cập nhật ngày lễ
func UpdateHoliday(c *gin.Context) {
	var holiday models.Holiday
	var request dto.UpdateHolidayRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}
	if err := config.DB.First(&holiday, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Name != "" {
		holiday.Name = request.Name
	}
	if request.HolidayDate != "" {
		holidayDate, err := time.Parse("02/01/2006", request.HolidayDate)
		if err != nil {
			response.BadRequest(c, "Invalid holiday date, expected format dd/mm/yyyy")
			return
		}
		holiday.HolidayDate = holidayDate
	}

	if err := config.DB.Save(&holiday).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateHolidayCache()
	response.Success(c, toHolidayResponse(&holiday))
}

func DeleteHoliday(c *gin.Context) {
	var holiday models.Holiday
	if err := config.DB.First(&holiday, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Delete(&holiday).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateHolidayCache()
	response.Success(c, nil)
}
