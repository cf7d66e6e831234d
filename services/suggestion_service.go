package services

import (
	"time"

	"resbook/dto"
	"resbook/models"
	"resbook/repository"
)

// SuggestionService gợi ý phương án thay thế khi slot yêu cầu đã bị giữ
type SuggestionService struct {
	resources    repository.ResourceRepository
	bookings     repository.BookingRepository
	availability *AvailabilityService
}

func NewSuggestionService(resources repository.ResourceRepository, bookings repository.BookingRepository, availability *AvailabilityService) *SuggestionService {
	return &SuggestionService{
		resources:    resources,
		bookings:     bookings,
		availability: availability,
	}
}

// Suggest trả về hai danh sách độc lập: resource cùng loại còn trống trong
// khung giờ yêu cầu, và các slot còn trống của chính resource đó trong ngày.
// Danh sách rỗng vẫn là kết quả hợp lệ.
func (s *SuggestionService) Suggest(resource *models.Resource, start, end time.Time) (*dto.Suggestions, error) {
	suggestions := &dto.Suggestions{
		AvailableResources: []dto.ResourceSummary{},
		AvailableSlots:     []dto.Slot{},
	}

	candidates, err := s.resources.ActiveByType(resource.ResourceType, resource.ID)
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		candidate := &candidates[i]
		conflict, err := s.bookings.ApprovedOverlapExists(candidate.ID, start, end, 0)
		if err != nil {
			return nil, err
		}
		if !conflict {
			suggestions.AvailableResources = append(suggestions.AvailableResources, dto.ResourceSummary{
				ID:           candidate.ID,
				Name:         candidate.Name,
				ResourceType: candidate.ResourceType,
				Location:     candidate.Location,
			})
		}
	}

	slots, err := s.availability.AvailableSlots(resource, start, 1)
	if err != nil {
		return nil, err
	}
	for _, slot := range slots {
		if slot.Available {
			suggestions.AvailableSlots = append(suggestions.AvailableSlots, slot)
		}
	}

	return suggestions, nil
}
