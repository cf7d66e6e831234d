package routes

import (
	"context"
	"net/http"

	"resbook/config"
	"resbook/constants"
	"resbook/controllers"
	"resbook/docs"
	"resbook/jobs"
	middlewares "resbook/middleware"
	"resbook/repository"
	"resbook/services"
	"resbook/services/logger"
	"resbook/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	bookingRepo := repository.NewBookingRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	userRepo := repository.NewUserRepository(db)
	holidayRepo := repository.NewHolidayRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	bookingService := services.NewBookingService(services.BookingServiceOptions{
		Bookings:      bookingRepo,
		Resources:     resourceRepo,
		Users:         userRepo,
		Holidays:      holidayRepo,
		Notifications: notificationRepo,
		Mailer:        notification.NewSMTPService(),
		AdminChannel:  notification.NewMelodyService(m),
		Logger:        logger.NewDefaultLogger(logger.LevelFromEnv()).WithComponent("booking"),
	})
	jobs.SetBookingReleaser(bookingService)

	bookingController := controllers.NewBookingController(bookingService, auditRepo)
	resourceController := controllers.NewResourceController(resourceRepo, bookingService.Availability())
	auditController := controllers.NewAuditController(auditRepo)
	notificationController := controllers.NewNotificationController(notificationRepo)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/google", controllers.AuthGoogle)

	v1.GET("/profile", middlewares.AuthMiddleware(), controllers.GetProfile)
	v1.GET("/users", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.GetUsers)

	v1.GET("/bookings", middlewares.AuthMiddleware(), bookingController.GetBookings)
	v1.POST("/bookings", middlewares.AuthMiddleware(), bookingController.CreateBooking)
	v1.POST("/bookings/release_expired", middlewares.AuthMiddleware(constants.RoleAdmin), bookingController.ReleaseExpiredBookings)
	v1.GET("/bookings/:id", middlewares.AuthMiddleware(), bookingController.GetBookingDetail)
	v1.PUT("/bookings/:id", middlewares.AuthMiddleware(), bookingController.UpdateBooking)
	v1.POST("/bookings/:id/cancel", middlewares.AuthMiddleware(), bookingController.CancelBooking)
	v1.POST("/bookings/:id/checkin", middlewares.AuthMiddleware(), bookingController.CheckInBooking)
	v1.DELETE("/bookings/:id", middlewares.AuthMiddleware(constants.RoleAdmin), bookingController.DeleteBooking)
	v1.GET("/bookings/:id/audits", middlewares.AuthMiddleware(constants.RoleAdmin), bookingController.GetBookingAudits)

	v1.GET("/resources", resourceController.GetResources)
	v1.GET("/resources/search", resourceController.SearchResources)
	v1.GET("/resources/:id", resourceController.GetResourceDetail)
	v1.GET("/resources/:id/availability", resourceController.GetResourceAvailability)
	v1.POST("/resources", middlewares.AuthMiddleware(constants.RoleAdmin), resourceController.CreateResource)
	v1.PUT("/resources/:id", middlewares.AuthMiddleware(constants.RoleAdmin), resourceController.UpdateResource)
	v1.DELETE("/resources/:id", middlewares.AuthMiddleware(constants.RoleAdmin), resourceController.DeleteResource)

	v1.GET("/holidays", controllers.GetHolidays)
	v1.POST("/holidays", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.CreateHoliday)
	v1.GET("/holidays/:id", controllers.GetDetailHoliday)
	v1.PUT("/holidaysUpdate", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateHoliday)
	v1.DELETE("/holidays/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteHoliday)

	v1.GET("/audits", middlewares.AuthMiddleware(constants.RoleAdmin), auditController.GetAuditLogs)

	v1.GET("/notifications", middlewares.AuthMiddleware(), notificationController.GetMyNotifications)
	v1.PUT("/notifications/:id/read", middlewares.AuthMiddleware(), notificationController.MarkNotificationRead)

	v1.POST("/img/upload", middlewares.AuthMiddleware(constants.RoleAdmin), func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot open file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "resources"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"url":     resp.SecureURL,
		})
	})

	docs.SwaggerInfo.BasePath = "/api/v1"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
