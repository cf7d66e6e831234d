package models

import (
	"errors"
	"time"

	"resbook/constants"
)

// BookingState định nghĩa interface cho các trạng thái booking
type BookingState interface {
	Approve(b *Booking, now time.Time) error
	Reject(b *Booking) error
	Cancel(b *Booking, now time.Time) error
	AutoRelease(b *Booking, now time.Time) error
}

// PendingState trạng thái chờ duyệt
type PendingState struct{}

func (s *PendingState) Approve(b *Booking, now time.Time) error {
	b.Status = constants.BookingStatusApproved
	b.ApprovedAt = &now
	return nil
}

func (s *PendingState) Reject(b *Booking) error {
	b.Status = constants.BookingStatusRejected
	return nil
}

func (s *PendingState) Cancel(b *Booking, now time.Time) error {
	b.Status = constants.BookingStatusCancelledByUser
	b.CancelledAt = &now
	return nil
}

func (s *PendingState) AutoRelease(b *Booking, now time.Time) error {
	return errors.New("cannot auto release pending booking")
}

// ApprovedState trạng thái đã duyệt
type ApprovedState struct{}

func (s *ApprovedState) Approve(b *Booking, now time.Time) error {
	return errors.New("booking already approved")
}

func (s *ApprovedState) Reject(b *Booking) error {
	return errors.New("cannot reject approved booking")
}

func (s *ApprovedState) Cancel(b *Booking, now time.Time) error {
	b.Status = constants.BookingStatusCancelledByUser
	b.CancelledAt = &now
	return nil
}

func (s *ApprovedState) AutoRelease(b *Booking, now time.Time) error {
	b.Status = constants.BookingStatusAutoReleased
	b.AutoReleasedAt = &now
	b.AdminNote = constants.AutoReleaseNote
	return nil
}

// TerminalState các trạng thái cuối, không đổi được nữa
type TerminalState struct{}

func (s *TerminalState) Approve(b *Booking, now time.Time) error {
	return errors.New("booking is in a terminal state")
}

func (s *TerminalState) Reject(b *Booking) error {
	return errors.New("booking is in a terminal state")
}

func (s *TerminalState) Cancel(b *Booking, now time.Time) error {
	return errors.New("booking is in a terminal state")
}

func (s *TerminalState) AutoRelease(b *Booking, now time.Time) error {
	return errors.New("booking is in a terminal state")
}

// GetBookingState trả về state tương ứng với trạng thái booking
func GetBookingState(status int) BookingState {
	switch status {
	case constants.BookingStatusPending:
		return &PendingState{}
	case constants.BookingStatusApproved:
		return &ApprovedState{}
	default:
		return &TerminalState{}
	}
}
