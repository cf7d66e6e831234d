package services

import (
	"testing"
	"time"

	"resbook/builders"
	"resbook/constants"
	"resbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type suggestionFixture struct {
	resources *memResourceRepo
	bookings  *memBookingRepo
	service   *SuggestionService
	roomA     models.Resource
	roomB     models.Resource
	roomC     models.Resource
	laptop    models.Resource
}

func newSuggestionFixture(t *testing.T) *suggestionFixture {
	t.Helper()
	f := &suggestionFixture{
		resources: newMemResourceRepo(),
		bookings:  newMemBookingRepo(nil),
	}
	f.service = NewSuggestionService(f.resources, f.bookings, NewAvailabilityService(f.bookings))

	f.roomA = models.Resource{Name: "Room A", ResourceType: constants.ResourceTypeMeetingRoom, IsActive: true}
	require.NoError(t, f.resources.Create(&f.roomA))
	f.roomB = models.Resource{Name: "Room B", ResourceType: constants.ResourceTypeMeetingRoom, IsActive: true}
	require.NoError(t, f.resources.Create(&f.roomB))
	f.roomC = models.Resource{Name: "Room C", ResourceType: constants.ResourceTypeMeetingRoom, IsActive: false}
	require.NoError(t, f.resources.Create(&f.roomC))
	f.laptop = models.Resource{Name: "Laptop 1", ResourceType: constants.ResourceTypeLaptop, IsActive: true}
	require.NoError(t, f.resources.Create(&f.laptop))
	return f
}

func approvedAt(t *testing.T, f *suggestionFixture, resourceID uint, startHour, endHour int) {
	t.Helper()
	b := builders.NewBookingBuilder().
		WithResource(resourceID).
		WithStatus(constants.BookingStatusApproved).
		WithWindow(
			time.Date(2027, 1, 6, startHour, 0, 0, 0, time.UTC),
			time.Date(2027, 1, 6, endHour, 0, 0, 0, time.UTC),
		).
		Build()
	require.NoError(t, f.bookings.Create(b))
}

func suggestionWindow() (time.Time, time.Time) {
	return time.Date(2027, 1, 6, 10, 0, 0, 0, time.UTC), time.Date(2027, 1, 6, 11, 0, 0, 0, time.UTC)
}

func TestSuggestAlternativeResources(t *testing.T) {
	f := newSuggestionFixture(t)
	approvedAt(t, f, f.roomA.ID, 10, 11)

	start, end := suggestionWindow()
	got, err := f.service.Suggest(&f.roomA, start, end)
	require.NoError(t, err)

	// Chỉ Room B: cùng loại, active, trống khung giờ đó.
	// Room C inactive và Laptop 1 khác loại đều bị loại.
	require.Len(t, got.AvailableResources, 1)
	assert.Equal(t, "Room B", got.AvailableResources[0].Name)
}

func TestSuggestExcludesBusyAlternatives(t *testing.T) {
	f := newSuggestionFixture(t)
	approvedAt(t, f, f.roomA.ID, 10, 11)
	approvedAt(t, f, f.roomB.ID, 10, 11)

	start, end := suggestionWindow()
	got, err := f.service.Suggest(&f.roomA, start, end)
	require.NoError(t, err)

	assert.Empty(t, got.AvailableResources)
	assert.NotNil(t, got.AvailableResources, "danh sách rỗng vẫn phải được khởi tạo")
}

func TestSuggestFreeSlotsOfSameResource(t *testing.T) {
	f := newSuggestionFixture(t)
	approvedAt(t, f, f.roomA.ID, 10, 12)

	start, end := suggestionWindow()
	got, err := f.service.Suggest(&f.roomA, start, end)
	require.NoError(t, err)

	// 9 slot trong ngày, 2 slot bận (10-11, 11-12)
	require.Len(t, got.AvailableSlots, 7)
	for _, slot := range got.AvailableSlots {
		assert.True(t, slot.Available)
		assert.NotEqual(t, 10, slot.StartTime.Hour())
		assert.NotEqual(t, 11, slot.StartTime.Hour())
	}
}

func TestSuggestFullyBookedDay(t *testing.T) {
	f := newSuggestionFixture(t)
	approvedAt(t, f, f.roomA.ID, 9, 18)
	approvedAt(t, f, f.roomB.ID, 9, 18)

	start, end := suggestionWindow()
	got, err := f.service.Suggest(&f.roomA, start, end)
	require.NoError(t, err)

	assert.Empty(t, got.AvailableResources)
	assert.Empty(t, got.AvailableSlots)
	assert.NotNil(t, got.AvailableSlots)
}
