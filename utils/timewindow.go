package utils

import (
	"time"

	"resbook/constants"
)

// SameCalendarDay kiểm tra hai thời điểm có cùng ngày không
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// IsWeekend kiểm tra thứ bảy / chủ nhật
func IsWeekend(t time.Time) bool {
	wd := t.UTC().Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// WithinBusinessHours kiểm tra [start, end] nằm trong khung giờ làm việc.
// Kết thúc đúng 18:00:00 vẫn hợp lệ, qua 18:00 là không.
func WithinBusinessHours(start, end time.Time) bool {
	start = start.UTC()
	end = end.UTC()

	if start.Hour() < constants.BusinessHourStart {
		return false
	}
	if start.Hour() >= constants.BusinessHourEnd {
		return false
	}
	if end.Hour() > constants.BusinessHourEnd {
		return false
	}
	if end.Hour() == constants.BusinessHourEnd && (end.Minute() > 0 || end.Second() > 0) {
		return false
	}
	return true
}

// Overlaps kiểm tra hai khoảng [s1,e1) và [s2,e2) có giao nhau không.
// Chạm biên (end == start) không tính là giao nhau.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// DayBounds trả về đầu ngày và đầu ngày kế tiếp theo UTC
func DayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.UTC().Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// BusinessWindow trả về mốc mở cửa và đóng cửa của một ngày
func BusinessWindow(date time.Time) (time.Time, time.Time) {
	y, m, d := date.UTC().Date()
	open := time.Date(y, m, d, constants.BusinessHourStart, 0, 0, 0, time.UTC)
	close := time.Date(y, m, d, constants.BusinessHourEnd, 0, 0, 0, time.UTC)
	return open, close
}
