package services

import (
	"time"

	"resbook/dto"
	"resbook/models"
	"resbook/repository"
	"resbook/utils"
)

// AvailabilityService chia khung giờ làm việc thành các slot và đánh dấu slot bận
type AvailabilityService struct {
	bookings repository.BookingRepository
}

func NewAvailabilityService(bookings repository.BookingRepository) *AvailabilityService {
	return &AvailabilityService{bookings: bookings}
}

// AvailableSlots trả về lưới slot của resource trong một ngày.
// durationHours <= 0 thì dùng mặc định 1 giờ. Slot lẻ cuối ngày bị bỏ.
func (s *AvailabilityService) AvailableSlots(resource *models.Resource, date time.Time, durationHours float64) ([]dto.Slot, error) {
	if durationHours <= 0 {
		durationHours = 1
	}
	slotDuration := time.Duration(durationHours * float64(time.Hour))

	open, close := utils.BusinessWindow(date)

	approved, err := s.bookings.ApprovedOnDate(resource.ID, date)
	if err != nil {
		return nil, err
	}

	slots := []dto.Slot{}
	for current := open; current.Before(close); {
		slotEnd := current.Add(slotDuration)
		if slotEnd.After(close) {
			break
		}

		slot := dto.Slot{
			StartTime: current,
			EndTime:   slotEnd,
			Available: true,
		}

		// Slot bận khi giao với một booking approved bất kỳ trong ngày
		for i := range approved {
			booking := &approved[i]
			if utils.Overlaps(current, slotEnd, booking.StartTime, booking.EndTime) {
				slot.Available = false
				slot.BookingID = booking.ID
				slot.BookingStatus = booking.StatusName()
				if booking.User != nil {
					slot.BookedBy = booking.User.Name
				}
				break
			}
		}

		slots = append(slots, slot)
		current = slotEnd
	}

	return slots, nil
}
