package services

import (
	"sync"
	"time"

	"resbook/constants"
	"resbook/models"
	"resbook/repository"
	"resbook/utils"
)

// memBookingRepo bản in-memory của BookingRepository cho test
type memBookingRepo struct {
	mu       sync.Mutex
	nextID   uint
	bookings map[uint]models.Booking
	audits   []models.AuditLog
	users    *memUserRepo
}

func newMemBookingRepo(users *memUserRepo) *memBookingRepo {
	return &memBookingRepo{
		nextID:   1,
		bookings: map[uint]models.Booking{},
		users:    users,
	}
}

func (r *memBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = r.nextID
	r.nextID++
	r.bookings[b.ID] = *b
	return nil
}

func (r *memBookingRepo) Save(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[b.ID] = *b
	return nil
}

func (r *memBookingRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bookings, id)
	return nil
}

func (r *memBookingRepo) FindByID(id uint) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *memBookingRepo) List(f repository.BookingFilter) ([]models.Booking, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []models.Booking
	for _, b := range r.bookings {
		if f.UserID != 0 && b.UserID != f.UserID {
			continue
		}
		if f.ResourceID != 0 && b.ResourceID != f.ResourceID {
			continue
		}
		if f.Status != nil && b.Status != *f.Status {
			continue
		}
		matched = append(matched, b)
	}

	total := int64(len(matched))
	if f.Offset > 0 {
		if f.Offset >= len(matched) {
			return nil, total, nil
		}
		matched = matched[f.Offset:]
	}
	if f.Limit > 0 && len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}
	return matched, total, nil
}

func (r *memBookingRepo) ApprovedOverlapExists(resourceID uint, start, end time.Time, excludeID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == excludeID || b.ResourceID != resourceID {
			continue
		}
		if b.Status != constants.BookingStatusApproved {
			continue
		}
		if utils.Overlaps(b.StartTime, b.EndTime, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memBookingRepo) ApprovedOnDate(resourceID uint, date time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.ResourceID != resourceID || b.Status != constants.BookingStatusApproved {
			continue
		}
		if !utils.SameCalendarDay(b.StartTime, date) {
			continue
		}
		if r.users != nil {
			if u, _ := r.users.FindByID(b.UserID); u != nil {
				b.User = u
			}
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *memBookingRepo) ExpiredApproved(cutoff time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status != constants.BookingStatusApproved {
			continue
		}
		if b.CheckedInAt != nil {
			continue
		}
		if b.StartTime.Before(cutoff) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) CheckIn(id uint, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.Status != constants.BookingStatusApproved {
		return false, nil
	}
	b.CheckedInAt = &at
	r.bookings[id] = b
	return true, nil
}

func (r *memBookingRepo) CreateAuditLog(a *models.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = uint(len(r.audits) + 1)
	r.audits = append(r.audits, *a)
	return nil
}

func (r *memBookingRepo) Transaction(fn func(tx repository.BookingRepository) error) error {
	return fn(r)
}

func (r *memBookingRepo) LockResource(resourceID uint) error {
	return nil
}

func (r *memBookingRepo) auditCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.audits)
}

func (r *memBookingRepo) lastAudit() *models.AuditLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.audits) == 0 {
		return nil
	}
	a := r.audits[len(r.audits)-1]
	return &a
}

// memResourceRepo bản in-memory của ResourceRepository
type memResourceRepo struct {
	mu        sync.Mutex
	nextID    uint
	resources map[uint]models.Resource
}

func newMemResourceRepo() *memResourceRepo {
	return &memResourceRepo{nextID: 1, resources: map[uint]models.Resource{}}
}

func (r *memResourceRepo) Create(res *models.Resource) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	res.ID = r.nextID
	r.nextID++
	r.resources[res.ID] = *res
	return nil
}

func (r *memResourceRepo) Save(res *models.Resource) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resources[res.ID] = *res
	return nil
}

func (r *memResourceRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.resources, id)
	return nil
}

func (r *memResourceRepo) FindByID(id uint) (*models.Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.resources[id]
	if !ok {
		return nil, nil
	}
	return &res, nil
}

func (r *memResourceRepo) FindByName(name string) (*models.Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, res := range r.resources {
		if res.Name == name {
			out := res
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memResourceRepo) List(f repository.ResourceFilter) ([]models.Resource, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Resource
	for _, res := range r.resources {
		if f.ResourceType != "" && res.ResourceType != f.ResourceType {
			continue
		}
		if f.IsActive != nil && res.IsActive != *f.IsActive {
			continue
		}
		out = append(out, res)
	}
	return out, int64(len(out)), nil
}

func (r *memResourceRepo) ActiveByType(resourceType string, excludeID uint) ([]models.Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Resource
	for _, res := range r.resources {
		if res.ID == excludeID || !res.IsActive || res.ResourceType != resourceType {
			continue
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *memResourceRepo) TurfExists(excludeID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, res := range r.resources {
		if res.ID != excludeID && res.ResourceType == constants.ResourceTypeTurf {
			return true, nil
		}
	}
	return false, nil
}

// memUserRepo bản in-memory của UserRepository
type memUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1, users: map[uint]models.User{}}
}

func (r *memUserRepo) Create(u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) FindByID(id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List(limit, offset int) ([]models.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

// memHolidayRepo bản in-memory của HolidayRepository
type memHolidayRepo struct {
	mu       sync.Mutex
	nextID   uint
	holidays map[uint]models.Holiday
}

func newMemHolidayRepo() *memHolidayRepo {
	return &memHolidayRepo{nextID: 1, holidays: map[uint]models.Holiday{}}
}

func (r *memHolidayRepo) Create(h *models.Holiday) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	h.ID = r.nextID
	r.nextID++
	r.holidays[h.ID] = *h
	return nil
}

func (r *memHolidayRepo) Save(h *models.Holiday) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.holidays[h.ID] = *h
	return nil
}

func (r *memHolidayRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.holidays, id)
	return nil
}

func (r *memHolidayRepo) FindByID(id uint) (*models.Holiday, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.holidays[id]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

func (r *memHolidayRepo) FindByDate(date time.Time) (*models.Holiday, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, h := range r.holidays {
		if utils.SameCalendarDay(h.HolidayDate, date) {
			out := h
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memHolidayRepo) List() ([]models.Holiday, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Holiday
	for _, h := range r.holidays {
		out = append(out, h)
	}
	return out, nil
}

// memNotificationRepo bản in-memory của NotificationRepository
type memNotificationRepo struct {
	mu      sync.Mutex
	nextID  uint
	records []models.Notification
}

func newMemNotificationRepo() *memNotificationRepo {
	return &memNotificationRepo{nextID: 1}
}

func (r *memNotificationRepo) Create(n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n.ID = r.nextID
	r.nextID++
	r.records = append(r.records, *n)
	return nil
}

func (r *memNotificationRepo) ListByUser(userID uint) ([]models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Notification
	for _, n := range r.records {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *memNotificationRepo) MarkRead(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == id {
			r.records[i].IsRead = true
		}
	}
	return nil
}

// sentMail một email đã được gửi qua dispatcher giả
type sentMail struct {
	Recipient string
	Subject   string
	Body      string
}

// recordingDispatcher ghi lại email gửi ra, gửi async nên có channel để test chờ
type recordingDispatcher struct {
	mu    sync.Mutex
	sends []sentMail
	ch    chan sentMail
}

func newRecordingDispatcher() *recordingDispatcher {
	return &recordingDispatcher{ch: make(chan sentMail, 16)}
}

func (d *recordingDispatcher) Send(recipient, subject, body string) error {
	d.mu.Lock()
	d.sends = append(d.sends, sentMail{Recipient: recipient, Subject: subject, Body: body})
	d.mu.Unlock()
	d.ch <- sentMail{Recipient: recipient, Subject: subject, Body: body}
	return nil
}

func (d *recordingDispatcher) wait(timeout time.Duration) (sentMail, bool) {
	select {
	case m := <-d.ch:
		return m, true
	case <-time.After(timeout):
		return sentMail{}, false
	}
}

// recordingChannel kênh admin giả
type recordingChannel struct {
	mu       sync.Mutex
	messages []string
	ch       chan string
}

func newRecordingChannel() *recordingChannel {
	return &recordingChannel{ch: make(chan string, 16)}
}

func (r *recordingChannel) SendMessage(message string) error {
	r.mu.Lock()
	r.messages = append(r.messages, message)
	r.mu.Unlock()
	r.ch <- message
	return nil
}

func (r *recordingChannel) wait(timeout time.Duration) (string, bool) {
	select {
	case m := <-r.ch:
		return m, true
	case <-time.After(timeout):
		return "", false
	}
}
