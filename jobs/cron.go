package jobs

import (
	"log"

	"resbook/utils"

	"github.com/robfig/cron/v3"
)

// BookingReleaser định nghĩa interface cho việc auto release booking quá hạn check-in
type BookingReleaser interface {
	ReleaseExpiredBookings() (int, error)
}

var bookingReleaser BookingReleaser

// SetBookingReleaser thiết lập implementation cho BookingReleaser
func SetBookingReleaser(releaser BookingReleaser) {
	bookingReleaser = releaser
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Quét booking quá hạn check-in mỗi 5 phút
	_, err := c.AddFunc("*/5 * * * *", func() {
		if bookingReleaser == nil {
			utils.LogError("BookingReleaser is not configured, skipping sweep")
			return
		}
		released, err := bookingReleaser.ReleaseExpiredBookings()
		if err != nil {
			utils.LogError("Auto release sweep failed: %v", err)
			return
		}
		if released > 0 {
			utils.LogInfo("Auto released %d expired bookings", released)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
