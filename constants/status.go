package constants

// Booking status
// Giá trị số phải giữ nguyên để audit/report đọc lại đúng
const (
	BookingStatusPending         = 0
	BookingStatusApproved        = 1
	BookingStatusRejected        = 2
	BookingStatusExpired         = 3
	BookingStatusAutoReleased    = 4
	BookingStatusCancelledByUser = 5
)

// User role
const (
	RoleEmployee = 0
	RoleAdmin    = 1
)

// Resource type
const (
	ResourceTypeMeetingRoom = "meeting-room"
	ResourceTypeLaptop      = "laptop"
	ResourceTypePhone       = "phone"
	ResourceTypeTurf        = "turf"
)

// TurfName tên cố định cho resource loại turf
const TurfName = "Turf"

// Khung giờ làm việc mặc định (09:00 - 18:00)
const (
	BusinessHourStart = 9
	BusinessHourEnd   = 18
)

// CheckInGraceMinutes số phút chờ check-in trước khi auto release
const CheckInGraceMinutes = 15

// AutoReleaseNote ghi chú gắn vào booking khi bị auto release
const AutoReleaseNote = "Automatically released due to no check-in"

// BookingStatusName trả về tên trạng thái booking
func BookingStatusName(status int) string {
	switch status {
	case BookingStatusPending:
		return "pending"
	case BookingStatusApproved:
		return "approved"
	case BookingStatusRejected:
		return "rejected"
	case BookingStatusExpired:
		return "expired"
	case BookingStatusAutoReleased:
		return "auto_released"
	case BookingStatusCancelledByUser:
		return "cancelled_by_user"
	default:
		return "unknown"
	}
}

// ValidResourceType kiểm tra loại resource hợp lệ
func ValidResourceType(t string) bool {
	switch t {
	case ResourceTypeMeetingRoom, ResourceTypeLaptop, ResourceTypePhone, ResourceTypeTurf:
		return true
	}
	return false
}
