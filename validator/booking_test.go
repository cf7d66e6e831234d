package validator

import (
	"testing"
	"time"

	"resbook/constants"
	"resbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHolidayLookup struct {
	holidays map[string]*models.Holiday
}

func (f *fakeHolidayLookup) FindByDate(date time.Time) (*models.Holiday, error) {
	if f.holidays == nil {
		return nil, nil
	}
	return f.holidays[date.UTC().Format("2006-01-02")], nil
}

type fakeOverlapChecker struct {
	conflict bool
	calls    int
}

func (f *fakeOverlapChecker) ApprovedOverlapExists(resourceID uint, start, end time.Time, excludeID uint) (bool, error) {
	f.calls++
	return f.conflict, nil
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// 2027-01-06 là thứ tư, 2027-01-09 là thứ bảy
var testNow = mustTime("2027-01-01T08:00:00Z")

func validCandidate() BookingCandidate {
	return BookingCandidate{
		ResourceID: 1,
		StartTime:  mustTime("2027-01-06T10:00:00Z"),
		EndTime:    mustTime("2027-01-06T11:00:00Z"),
		IsNew:      true,
	}
}

func newValidator(holidays *fakeHolidayLookup, overlaps *fakeOverlapChecker) *BookingValidator {
	if holidays == nil {
		holidays = &fakeHolidayLookup{}
	}
	if overlaps == nil {
		overlaps = &fakeOverlapChecker{}
	}
	return NewBookingValidator(holidays, overlaps)
}

func TestValidateAcceptsCleanBooking(t *testing.T) {
	errs, err := newValidator(nil, nil).Validate(validCandidate(), testNow)
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestValidateEndBeforeStart(t *testing.T) {
	c := validCandidate()
	c.StartTime = mustTime("2027-01-06T11:00:00Z")
	c.EndTime = mustTime("2027-01-06T10:00:00Z")

	errs, err := newValidator(nil, nil).Validate(c, testNow)
	require.NoError(t, err)
	assert.Contains(t, errs.Messages(), MsgEndBeforeStart)
}

func TestValidateEndEqualsStart(t *testing.T) {
	c := validCandidate()
	c.EndTime = c.StartTime

	errs, err := newValidator(nil, nil).Validate(c, testNow)
	require.NoError(t, err)
	assert.Contains(t, errs.Messages(), MsgEndBeforeStart)
}

func TestValidateStartInPast(t *testing.T) {
	c := validCandidate()
	c.StartTime = mustTime("2026-12-30T10:00:00Z")
	c.EndTime = mustTime("2026-12-30T11:00:00Z")

	errs, err := newValidator(nil, nil).Validate(c, testNow)
	require.NoError(t, err)
	assert.Contains(t, errs.Messages(), MsgStartInPast)
}

func TestValidateStartInPastSkippedForExistingRecord(t *testing.T) {
	// Sửa một booking cũ không được báo lỗi quá khứ
	status := constants.BookingStatusApproved
	c := validCandidate()
	c.ID = 7
	c.IsNew = false
	c.StatusContext = &status
	c.StartTime = mustTime("2026-12-30T10:00:00Z")
	c.EndTime = mustTime("2026-12-30T11:00:00Z")

	errs, err := newValidator(nil, nil).Validate(c, testNow)
	require.NoError(t, err)
	assert.NotContains(t, errs.Messages(), MsgStartInPast)
}

func TestValidateDifferentDays(t *testing.T) {
	c := validCandidate()
	c.StartTime = mustTime("2027-01-06T17:00:00Z")
	c.EndTime = mustTime("2027-01-07T10:00:00Z")

	errs, err := newValidator(nil, nil).Validate(c, testNow)
	require.NoError(t, err)
	assert.Contains(t, errs.Messages(), MsgDifferentDays)
}

func TestValidateOutsideBusinessHours(t *testing.T) {
	c := validCandidate()
	c.StartTime = mustTime("2027-01-06T08:00:00Z")
	c.EndTime = mustTime("2027-01-06T10:00:00Z")

	errs, err := newValidator(nil, nil).Validate(c, testNow)
	require.NoError(t, err)
	assert.Contains(t, errs.Messages(), MsgOutsideBusiness)
}

func TestValidateEndExactlyAtClose(t *testing.T) {
	c := validCandidate()
	c.StartTime = mustTime("2027-01-06T17:00:00Z")
	c.EndTime = mustTime("2027-01-06T18:00:00Z")

	errs, err := newValidator(nil, nil).Validate(c, testNow)
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestValidateWeekend(t *testing.T) {
	c := validCandidate()
	c.StartTime = mustTime("2027-01-09T10:00:00Z")
	c.EndTime = mustTime("2027-01-09T11:00:00Z")

	errs, err := newValidator(nil, nil).Validate(c, testNow)
	require.NoError(t, err)
	assert.Contains(t, errs.Messages(), MsgWeekend)
}

func TestValidateHoliday(t *testing.T) {
	holidays := &fakeHolidayLookup{holidays: map[string]*models.Holiday{
		"2027-01-06": {Name: "Founders Day"},
	}}

	errs, err := newValidator(holidays, nil).Validate(validCandidate(), testNow)
	require.NoError(t, err)
	assert.Contains(t, errs.Messages(), "Bookings are not allowed on National Holidays (Founders Day)")
}

func TestValidateOverlap(t *testing.T) {
	overlaps := &fakeOverlapChecker{conflict: true}

	errs, err := newValidator(nil, overlaps).Validate(validCandidate(), testNow)
	require.NoError(t, err)
	assert.Contains(t, errs.Messages(), MsgOverlap)
	assert.True(t, IsOverlapViolation(errs))
}

func TestValidateOverlapSkippedForTerminalStatus(t *testing.T) {
	// Booking đã hủy không tham gia giữ chỗ nên không check trùng lịch
	status := constants.BookingStatusCancelledByUser
	overlaps := &fakeOverlapChecker{conflict: true}
	c := validCandidate()
	c.ID = 3
	c.IsNew = false
	c.StatusContext = &status

	errs, err := newValidator(nil, overlaps).Validate(c, testNow)
	require.NoError(t, err)
	assert.Zero(t, overlaps.calls)
	assert.False(t, IsOverlapViolation(errs))
}

func TestValidateAccumulatesAllViolations(t *testing.T) {
	// Thứ bảy + ngoài giờ + quá khứ + end trước start: cả bốn phải cùng xuất hiện
	holidays := &fakeHolidayLookup{holidays: map[string]*models.Holiday{
		"2026-12-26": {Name: "Boxing Day"},
	}}
	c := BookingCandidate{
		ResourceID: 1,
		StartTime:  mustTime("2026-12-26T20:00:00Z"), // thứ bảy, quá khứ, ngoài giờ
		EndTime:    mustTime("2026-12-26T19:00:00Z"),
		IsNew:      true,
	}

	errs, err := newValidator(holidays, &fakeOverlapChecker{conflict: true}).Validate(c, testNow)
	require.NoError(t, err)

	messages := errs.Messages()
	assert.Contains(t, messages, MsgEndBeforeStart)
	assert.Contains(t, messages, MsgStartInPast)
	assert.Contains(t, messages, MsgOutsideBusiness)
	assert.Contains(t, messages, MsgWeekend)
	assert.Contains(t, messages, "Bookings are not allowed on National Holidays (Boxing Day)")
	assert.Contains(t, messages, MsgOverlap)
	assert.Len(t, errs, 6)
}

func TestValidateSkipsRulesWithMissingInput(t *testing.T) {
	// Thiếu end time: chỉ các rule cần start mới chạy
	c := BookingCandidate{
		ResourceID: 1,
		StartTime:  mustTime("2027-01-06T10:00:00Z"),
		IsNew:      true,
	}

	overlaps := &fakeOverlapChecker{conflict: true}
	errs, err := newValidator(nil, overlaps).Validate(c, testNow)
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Zero(t, overlaps.calls)
}

func TestValidationErrorsFormatting(t *testing.T) {
	errs := ValidationErrors{
		{Field: "end_time", Message: MsgEndBeforeStart},
		{Field: "base", Message: MsgWeekend},
	}
	assert.True(t, errs.HasField("end_time"))
	assert.False(t, errs.HasField("start_time"))
	assert.Contains(t, errs.Error(), "2 error(s)")
}
