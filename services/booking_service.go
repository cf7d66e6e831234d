package services

import (
	stderrors "errors"
	"fmt"
	"time"

	"resbook/constants"
	"resbook/dto"
	"resbook/errors"
	"resbook/models"
	"resbook/repository"
	"resbook/services/logger"
	"resbook/services/notification"
	"resbook/validator"
)

// AdminChannel kênh thông báo realtime cho admin (websocket)
type AdminChannel interface {
	SendMessage(message string) error
}

// ValidationFailure lỗi validate trả về caller, kèm gợi ý nếu nguyên nhân là trùng lịch
type ValidationFailure struct {
	Errors      validator.ValidationErrors `json:"errors"`
	Suggestions *dto.Suggestions           `json:"suggestions,omitempty"`
}

func (e *ValidationFailure) Error() string {
	return e.Errors.Error()
}

// CreateBookingInput dữ liệu tạo booking, performer đi kèm tường minh để ghi audit
type CreateBookingInput struct {
	UserID               uint
	ResourceID           uint
	StartTime            time.Time
	EndTime              time.Time
	AllowSmallerCapacity bool
	PerformerID          uint
}

// BookingServiceOptions các phụ thuộc của BookingService
type BookingServiceOptions struct {
	Bookings      repository.BookingRepository
	Resources     repository.ResourceRepository
	Users         repository.UserRepository
	Holidays      repository.HolidayRepository
	Notifications repository.NotificationRepository
	Mailer        notification.Dispatcher
	AdminChannel  AdminChannel
	Logger        logger.Logger
	Now           func() time.Time
}

// BookingService nghiệp vụ chính: vòng đời booking, duyệt, check-in, auto release
type BookingService struct {
	bookings      repository.BookingRepository
	resources     repository.ResourceRepository
	users         repository.UserRepository
	holidays      repository.HolidayRepository
	notifications repository.NotificationRepository
	mailer        notification.Dispatcher
	adminChannel  AdminChannel
	logger        logger.Logger
	now           func() time.Time

	availability *AvailabilityService
	suggestions  *SuggestionService
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	availability := NewAvailabilityService(opts.Bookings)
	return &BookingService{
		bookings:      opts.Bookings,
		resources:     opts.Resources,
		users:         opts.Users,
		holidays:      opts.Holidays,
		notifications: opts.Notifications,
		mailer:        opts.Mailer,
		adminChannel:  opts.AdminChannel,
		logger:        opts.Logger,
		now:           opts.Now,
		availability:  availability,
		suggestions:   NewSuggestionService(opts.Resources, opts.Bookings, availability),
	}
}

// Availability expose calculator cho controller
func (s *BookingService) Availability() *AvailabilityService {
	return s.availability
}

// GetBooking lấy một booking theo id
func (s *BookingService) GetBooking(id uint) (*models.Booking, error) {
	booking, err := s.bookings.FindByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, errors.ErrBookingNotFound
	}
	return booking, nil
}

// ListBookings danh sách booking theo filter
func (s *BookingService) ListBookings(f repository.BookingFilter) ([]models.Booking, int64, error) {
	return s.bookings.List(f)
}

// CreateBooking tạo booking mới ở trạng thái pending.
// Validate + ghi bản ghi chạy trong một transaction có khóa row resource
// để hai request duyệt song song không cùng lách qua bước check trùng lịch.
func (s *BookingService) CreateBooking(in CreateBookingInput) (*models.Booking, error) {
	resource, err := s.resources.FindByID(in.ResourceID)
	if err != nil {
		return nil, err
	}
	if resource == nil {
		return nil, errors.ErrResourceNotFound
	}

	user, err := s.users.FindByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	if !resource.IsActive {
		return nil, &ValidationFailure{Errors: validator.ValidationErrors{
			{Field: "base", Message: "Resource is not active"},
		}}
	}

	now := s.now()
	booking := &models.Booking{
		UserID:               in.UserID,
		ResourceID:           in.ResourceID,
		StartTime:            in.StartTime.UTC(),
		EndTime:              in.EndTime.UTC(),
		Status:               constants.BookingStatusPending,
		AllowSmallerCapacity: in.AllowSmallerCapacity,
	}

	err = s.bookings.Transaction(func(tx repository.BookingRepository) error {
		if err := tx.LockResource(resource.ID); err != nil {
			return err
		}

		v := validator.NewBookingValidator(s.holidays, tx)
		verrs, err := v.Validate(validator.BookingCandidate{
			ResourceID: booking.ResourceID,
			StartTime:  booking.StartTime,
			EndTime:    booking.EndTime,
			IsNew:      true,
		}, now)
		if err != nil {
			return err
		}
		if len(verrs) > 0 {
			return &ValidationFailure{Errors: verrs}
		}

		return tx.Create(booking)
	})
	if err != nil {
		s.attachSuggestions(err, resource, booking.StartTime, booking.EndTime)
		return nil, err
	}

	booking.User = user
	booking.Resource = resource

	s.notifyAdminAsync(booking, resource, user)
	return booking, nil
}

// UpdateBooking sửa booking: đổi giờ, đổi resource, hoặc chuyển trạng thái.
// Chuyển trạng thái đi qua state machine; duyệt (approved) sẽ check trùng lịch lại.
func (s *BookingService) UpdateBooking(id uint, patch dto.UpdateBookingRequest, performerID uint) (*models.Booking, error) {
	booking, err := s.GetBooking(id)
	if err != nil {
		return nil, err
	}

	oldStatus := booking.Status
	targetStatus := oldStatus
	if patch.Status != nil {
		targetStatus = *patch.Status
	}

	targetResourceID := booking.ResourceID
	if patch.ResourceID != nil {
		targetResourceID = *patch.ResourceID
	}
	resource, err := s.resources.FindByID(targetResourceID)
	if err != nil {
		return nil, err
	}
	if resource == nil {
		return nil, errors.ErrResourceNotFound
	}

	newStart := booking.StartTime
	if patch.StartTime != nil {
		newStart = patch.StartTime.UTC()
	}
	newEnd := booking.EndTime
	if patch.EndTime != nil {
		newEnd = patch.EndTime.UTC()
	}
	timingChanged := !newStart.Equal(booking.StartTime) ||
		!newEnd.Equal(booking.EndTime) ||
		targetResourceID != booking.ResourceID

	now := s.now()
	err = s.bookings.Transaction(func(tx repository.BookingRepository) error {
		if err := tx.LockResource(targetResourceID); err != nil {
			return err
		}

		v := validator.NewBookingValidator(s.holidays, tx)
		verrs, err := v.Validate(validator.BookingCandidate{
			ID:            booking.ID,
			ResourceID:    targetResourceID,
			StartTime:     newStart,
			EndTime:       newEnd,
			StatusContext: &targetStatus,
			IsNew:         false,
		}, now)
		if err != nil {
			return err
		}
		if len(verrs) > 0 {
			return &ValidationFailure{Errors: verrs}
		}

		booking.ResourceID = targetResourceID
		booking.StartTime = newStart
		booking.EndTime = newEnd
		if patch.AdminNote != nil {
			booking.AdminNote = *patch.AdminNote
		}

		if targetStatus != oldStatus {
			if err := s.applyTransition(booking, targetStatus, now); err != nil {
				return err
			}
		}

		if err := tx.Save(booking); err != nil {
			return err
		}

		if targetStatus != oldStatus {
			return tx.CreateAuditLog(s.auditEntry(booking, oldStatus, performerID, now))
		}
		return nil
	})
	if err != nil {
		s.attachSuggestions(err, resource, newStart, newEnd)
		return nil, err
	}

	booking.Resource = resource
	if targetStatus != oldStatus || timingChanged {
		s.notifyOwnerAsync(booking)
	}
	return booking, nil
}

// CancelBooking hủy booking bởi chính chủ (hoặc admin thay mặt)
func (s *BookingService) CancelBooking(id uint, performerID uint) (*models.Booking, error) {
	booking, err := s.GetBooking(id)
	if err != nil {
		return nil, err
	}

	oldStatus := booking.Status
	now := s.now()
	state := models.GetBookingState(booking.Status)
	if err := state.Cancel(booking, now); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidLifecycle, err.Error(), nil)
	}

	err = s.bookings.Transaction(func(tx repository.BookingRepository) error {
		if err := tx.Save(booking); err != nil {
			return err
		}
		return tx.CreateAuditLog(s.auditEntry(booking, oldStatus, performerID, now))
	})
	if err != nil {
		return nil, err
	}

	s.notifyOwnerAsync(booking)
	return booking, nil
}

// DeleteBooking xóa hẳn booking kèm audit log của nó
func (s *BookingService) DeleteBooking(id uint) error {
	booking, err := s.GetBooking(id)
	if err != nil {
		return err
	}
	return s.bookings.Delete(booking.ID)
}

// CheckIn hành động có điều kiện, không phải chuyển trạng thái:
// chỉ cho phép khi booking đang approved, và phải còn approved tại thời điểm ghi
// (sweeper có thể vừa release xong).
func (s *BookingService) CheckIn(id uint, performerID uint) (*models.Booking, error) {
	booking, err := s.GetBooking(id)
	if err != nil {
		return nil, err
	}

	if booking.Status != constants.BookingStatusApproved {
		return nil, errors.NewAppError(errors.ErrCodeInvalidLifecycle, "Only approved bookings can be checked in", nil)
	}

	now := s.now()
	ok, err := s.bookings.CheckIn(booking.ID, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NewAppError(errors.ErrCodeInvalidLifecycle, "Only approved bookings can be checked in", nil)
	}

	booking.CheckedInAt = &now
	return booking, nil
}

// ReleaseExpiredBookings quét các booking approved quá hạn check-in và auto release.
// Idempotent: chạy lại ngay sau đó sẽ không còn gì để xử lý.
func (s *BookingService) ReleaseExpiredBookings() (int, error) {
	now := s.now()
	cutoff := now.Add(-time.Duration(constants.CheckInGraceMinutes) * time.Minute)

	expired, err := s.bookings.ExpiredApproved(cutoff)
	if err != nil {
		return 0, err
	}

	released := 0
	for i := range expired {
		booking := &expired[i]
		oldStatus := booking.Status

		state := models.GetBookingState(booking.Status)
		if err := state.AutoRelease(booking, now); err != nil {
			continue
		}

		err := s.bookings.Transaction(func(tx repository.BookingRepository) error {
			if err := tx.Save(booking); err != nil {
				return err
			}
			// Performer mặc định là chủ booking: đây là hành động hệ thống
			return tx.CreateAuditLog(s.auditEntry(booking, oldStatus, 0, now))
		})
		if err != nil {
			s.logger.Error("auto release failed for booking %d: %v", booking.ID, err)
			continue
		}

		released++
		s.notifyOwnerAsync(booking)
	}

	return released, nil
}

// applyTransition chuyển trạng thái qua state machine, lỗi là InvalidLifecycleAction
func (s *BookingService) applyTransition(booking *models.Booking, targetStatus int, now time.Time) error {
	state := models.GetBookingState(booking.Status)

	var err error
	switch targetStatus {
	case constants.BookingStatusApproved:
		err = state.Approve(booking, now)
	case constants.BookingStatusRejected:
		err = state.Reject(booking)
	case constants.BookingStatusCancelledByUser:
		err = state.Cancel(booking, now)
	case constants.BookingStatusAutoReleased:
		err = state.AutoRelease(booking, now)
	default:
		err = fmt.Errorf("cannot transition to %s", constants.BookingStatusName(targetStatus))
	}
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidLifecycle, err.Error(), nil)
	}
	return nil
}

func (s *BookingService) auditEntry(booking *models.Booking, oldStatus int, performerID uint, now time.Time) *models.AuditLog {
	if performerID == 0 {
		performerID = booking.UserID
	}
	return &models.AuditLog{
		BookingID:   booking.ID,
		ResourceID:  booking.ResourceID,
		PerformedBy: performerID,
		Action:      "status_change",
		OldStatus:   oldStatus,
		NewStatus:   booking.Status,
		Message: fmt.Sprintf("Status changed from %s to %s",
			constants.BookingStatusName(oldStatus), constants.BookingStatusName(booking.Status)),
		CreatedAt: now,
	}
}

// attachSuggestions gắn gợi ý vào ValidationFailure khi nguyên nhân là trùng lịch
func (s *BookingService) attachSuggestions(err error, resource *models.Resource, start, end time.Time) {
	var vf *ValidationFailure
	if !stderrors.As(err, &vf) {
		return
	}
	if !validator.IsOverlapViolation(vf.Errors) {
		return
	}
	suggestions, sErr := s.suggestions.Suggest(resource, start, end)
	if sErr != nil {
		s.logger.Warn("cannot build suggestions for resource %d: %v", resource.ID, sErr)
		return
	}
	vf.Suggestions = suggestions
}

func (s *BookingService) windowLabel(booking *models.Booking) string {
	return fmt.Sprintf("%s - %s",
		booking.StartTime.Format("2006-01-02 15:04"),
		booking.EndTime.Format("15:04"))
}

// notifyAdminAsync báo kênh admin có request mới.
// Chạy nền, lỗi chỉ log, không ảnh hưởng transaction đã commit.
func (s *BookingService) notifyAdminAsync(booking *models.Booking, resource *models.Resource, user *models.User) {
	go func() {
		builder := notification.NewBookingMessageBuilder(user.Name, resource.Name, booking.StatusName(), s.windowLabel(booking))

		if s.mailer != nil {
			subject := notification.RequestReceivedSubject(resource.Name, user.Name)
			if err := s.mailer.Send(notification.AdminEmail(), subject, builder.BuildAdminAlert()); err != nil {
				s.logger.Error("cannot send admin email for booking %d: %v", booking.ID, err)
			}
		}

		if s.adminChannel != nil {
			message := fmt.Sprintf("🔔 New booking request #%d: %s by %s", booking.ID, resource.Name, user.Name)
			if err := s.adminChannel.SendMessage(message); err != nil {
				s.logger.Error("cannot broadcast admin alert for booking %d: %v", booking.ID, err)
			}
		}
	}()
}

// notifyOwnerAsync báo chủ booking trạng thái hiện tại
func (s *BookingService) notifyOwnerAsync(booking *models.Booking) {
	go func() {
		user := booking.User
		if user == nil {
			var err error
			user, err = s.users.FindByID(booking.UserID)
			if err != nil || user == nil {
				s.logger.Warn("cannot load owner of booking %d for notification", booking.ID)
				return
			}
		}
		resource := booking.Resource
		if resource == nil {
			var err error
			resource, err = s.resources.FindByID(booking.ResourceID)
			if err != nil || resource == nil {
				s.logger.Warn("cannot load resource of booking %d for notification", booking.ID)
				return
			}
		}

		builder := notification.NewBookingMessageBuilder(user.Name, resource.Name, booking.StatusName(), s.windowLabel(booking))
		subject := notification.StatusUpdatedSubject(resource.Name, booking.StatusName())

		if s.mailer != nil {
			if err := s.mailer.Send(user.Email, subject, builder.Build()); err != nil {
				s.logger.Error("cannot send status email for booking %d: %v", booking.ID, err)
			}
		}

		if s.notifications != nil {
			record := &models.Notification{
				UserID:           user.ID,
				BookingID:        booking.ID,
				NotificationType: "booking_status",
				Channel:          "email",
				Message:          subject,
				SentAt:           s.now(),
			}
			if err := s.notifications.Create(record); err != nil {
				s.logger.Error("cannot persist notification for booking %d: %v", booking.ID, err)
			}
		}
	}()
}
