package notification

import (
	"fmt"
	"net/smtp"
	"os"

	"github.com/olahol/melody"
)

// Dispatcher contract gửi thông báo: nhận người nhận, tiêu đề, nội dung.
// Gửi lỗi thì chỉ log, không được làm fail giao dịch booking.
type Dispatcher interface {
	Send(recipient, subject, body string) error
}

// SMTPService gửi email qua SMTP
type SMTPService struct {
	From     string
	Password string
	Host     string
	Port     string
}

func NewSMTPService() *SMTPService {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	return &SMTPService{
		From:     os.Getenv("SMTP_FROM"),
		Password: os.Getenv("SMTP_PASSWORD"),
		Host:     host,
		Port:     port,
	}
}

func (s *SMTPService) Send(recipient, subject, body string) error {
	to := []string{recipient}
	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" +
		"Subject: " + subject + "\n\n" + body)

	auth := smtp.PlainAuth("", s.From, s.Password, s.Host)
	return smtp.SendMail(s.Host+":"+s.Port, auth, s.From, to, msg)
}

// MelodyService broadcast thông báo qua websocket cho kênh admin
type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// AdminEmail địa chỉ nhận thông báo booking mới
func AdminEmail() string {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "facilities@resbook.local"
	}
	return email
}

// RequestReceivedSubject tiêu đề mail báo admin có request mới
func RequestReceivedSubject(resourceName, userName string) string {
	return fmt.Sprintf("New Booking Request: %s by %s", resourceName, userName)
}

// StatusUpdatedSubject tiêu đề mail báo user trạng thái mới
func StatusUpdatedSubject(resourceName, status string) string {
	return fmt.Sprintf("Booking Update: Your request for %s has been %s", resourceName, status)
}

// BookingMessageBuilder dựng nội dung thông báo cho một booking
type BookingMessageBuilder struct {
	userName     string
	resourceName string
	status       string
	window       string
}

func NewBookingMessageBuilder(userName, resourceName, status, window string) *BookingMessageBuilder {
	return &BookingMessageBuilder{
		userName:     userName,
		resourceName: resourceName,
		status:       status,
		window:       window,
	}
}

func (b *BookingMessageBuilder) Build() string {
	return fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>Your booking for <strong>%s</strong> (%s) is now <strong>%s</strong>.</p>
		<p>Thank you,<br>Facilities team</p>
	`, b.userName, b.resourceName, b.window, b.status)
}

// BuildAdminAlert nội dung báo admin có request mới
func (b *BookingMessageBuilder) BuildAdminAlert() string {
	return fmt.Sprintf(`
		<p>New booking request from <strong>%s</strong> for <strong>%s</strong> (%s).</p>
		<p>Please review and approve or reject it.</p>
	`, b.userName, b.resourceName, b.window)
}
