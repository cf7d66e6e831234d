package validator

import (
	"fmt"
	"time"

	"resbook/models"
	"resbook/utils"
)

// Thông báo lỗi trả cho client, giữ nguyên từng chữ vì phía FE đang match theo text
const (
	MsgEndBeforeStart  = "must be after the start time"
	MsgStartInPast     = "cannot be in the past"
	MsgDifferentDays   = "Booking must start and end on the same day"
	MsgOutsideBusiness = "Bookings are only allowed between 9:00 and 18:00"
	MsgWeekend         = "Bookings are not allowed on Saturdays and Sundays"
	MsgOverlap         = "This resource is already booked (Approved) for the selected time slot"
)

// HolidayMessage message cho ngày lễ, kèm tên ngày lễ
func HolidayMessage(name string) string {
	return fmt.Sprintf("Bookings are not allowed on National Holidays (%s)", name)
}

// HolidayLookup tra cứu ngày lễ theo ngày
type HolidayLookup interface {
	FindByDate(date time.Time) (*models.Holiday, error)
}

// OverlapChecker kiểm tra trùng lịch với các booking đã approved
type OverlapChecker interface {
	ApprovedOverlapExists(resourceID uint, start, end time.Time, excludeID uint) (bool, error)
}

// BookingCandidate dữ liệu cần validate cho một booking mới hoặc đang sửa
type BookingCandidate struct {
	ID         uint
	ResourceID uint
	StartTime  time.Time
	EndTime    time.Time
	// StatusContext: nil khi tạo mới, ngược lại là trạng thái hiện có của bản ghi
	StatusContext *int
	IsNew         bool
}

// BookingValidator gom toàn bộ rule trước khi commit một booking
type BookingValidator struct {
	holidays HolidayLookup
	overlaps OverlapChecker
}

func NewBookingValidator(holidays HolidayLookup, overlaps OverlapChecker) *BookingValidator {
	return &BookingValidator{
		holidays: holidays,
		overlaps: overlaps,
	}
}

// Validate chạy tất cả rule và gom lại toàn bộ vi phạm, không dừng ở lỗi đầu tiên.
// Rule nào thiếu dữ liệu đầu vào thì bỏ qua rule đó.
func (v *BookingValidator) Validate(c BookingCandidate, now time.Time) (ValidationErrors, error) {
	var errs ValidationErrors

	hasStart := !c.StartTime.IsZero()
	hasEnd := !c.EndTime.IsZero()

	if hasStart && hasEnd && !c.EndTime.After(c.StartTime) {
		errs = append(errs, ValidationError{Field: "end_time", Message: MsgEndBeforeStart})
	}

	if hasStart && c.IsNew && c.StartTime.Before(now) {
		errs = append(errs, ValidationError{Field: "start_time", Message: MsgStartInPast})
	}

	if hasStart && hasEnd && !utils.SameCalendarDay(c.StartTime, c.EndTime) {
		errs = append(errs, ValidationError{Field: "base", Message: MsgDifferentDays})
	}

	if hasStart && hasEnd && !utils.WithinBusinessHours(c.StartTime, c.EndTime) {
		errs = append(errs, ValidationError{Field: "base", Message: MsgOutsideBusiness})
	}

	if hasStart && utils.IsWeekend(c.StartTime) {
		errs = append(errs, ValidationError{Field: "base", Message: MsgWeekend})
	}

	if hasStart && v.holidays != nil {
		holiday, err := v.holidays.FindByDate(c.StartTime)
		if err != nil {
			return nil, err
		}
		if holiday != nil {
			errs = append(errs, ValidationError{Field: "base", Message: HolidayMessage(holiday.Name)})
		}
	}

	// Chỉ check trùng lịch khi bản ghi còn tham gia giữ chỗ:
	// booking bị rejected/expired/cancelled/auto_released không chặn và không bị chặn
	if hasStart && hasEnd && c.ResourceID != 0 && v.overlaps != nil && v.overlapApplies(c) {
		conflict, err := v.overlaps.ApprovedOverlapExists(c.ResourceID, c.StartTime, c.EndTime, c.ID)
		if err != nil {
			return nil, err
		}
		if conflict {
			errs = append(errs, ValidationError{Field: "base", Message: MsgOverlap})
		}
	}

	return errs, nil
}

func (v *BookingValidator) overlapApplies(c BookingCandidate) bool {
	if c.StatusContext == nil {
		return true
	}
	return models.OverlapRelevant(*c.StatusContext)
}

// IsOverlapViolation kiểm tra danh sách lỗi có chứa lỗi trùng lịch không
func IsOverlapViolation(errs ValidationErrors) bool {
	for _, e := range errs {
		if e.Message == MsgOverlap {
			return true
		}
	}
	return false
}
