package routes

import (
	"context"
	"net/http"

	"github.com/shivam6677ojh/QuickStay-HotelBooking/constants"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/controllers"
	middlewares "github.com/shivam6677ojh/QuickStay-HotelBooking/middleware"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/services"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/services/logger"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/services/notification"

	_ "github.com/shivam6677ojh/QuickStay-HotelBooking/docs"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Services gom các service dùng chung giữa routes và jobs
type Services struct {
	Booking   *services.BookingService
	Rooms     *services.RoomService
	Hotels    *services.HotelService
	Auth      *services.AuthService
	Users     *services.UserService
	Search    *services.SearchService
	Dashboard *services.DashboardService
}

// BuildServices khởi tạo toàn bộ service từ các connection dùng chung
func BuildServices(db *gorm.DB, redisCli *redis.Client, m *melody.Melody) *Services {
	log := logger.NewDefaultLogger(logger.InfoLevel)
	mailer := services.NewSMTPMailer(log)

	return &Services{
		Booking: services.NewBookingService(
			services.NewGormBookingStore(db),
			services.NewGormRoomStore(db),
			log,
			services.WithMailer(mailer),
			services.WithNotifier(notification.NewMelodyService(m)),
		),
		Rooms:     services.NewRoomService(db, redisCli, log),
		Hotels:    services.NewHotelService(db, redisCli, log),
		Auth:      services.NewAuthService(db, mailer, log),
		Users:     services.NewUserService(db),
		Search:    services.NewSearchService(db),
		Dashboard: services.NewDashboardService(db, redisCli, log),
	}
}

func SetupRoutes(router *gin.Engine, svcs *Services, cld *cloudinary.Cloudinary, m *melody.Melody) {
	// Handler nào báo lỗi qua c.Error thì ErrorHandler trả response thống nhất
	router.Use(middlewares.ErrorHandler())

	bookingController := controllers.NewBookingController(svcs.Booking, svcs.Hotels)
	roomController := controllers.NewRoomController(svcs.Rooms)
	hotelController := controllers.NewHotelController(svcs.Hotels, svcs.Search)
	authController := controllers.NewAuthController(svcs.Auth)
	userController := controllers.NewUserController(svcs.Users)
	adminController := controllers.NewAdminController(svcs.Dashboard, svcs.Booking, svcs.Users, svcs.Hotels)

	api := router.Group("/api")
	api.Use(middlewares.SessionMiddleware())

	api.POST("/auth/register", authController.Register)
	api.GET("/auth/verify-email", authController.VerifyEmail)
	api.POST("/auth/login", authController.Login)
	api.DELETE("/auth/logout", authController.Logout)
	api.POST("/auth/google", authController.AuthGoogle)

	api.GET("/user", middlewares.AuthMiddleware(), userController.GetProfile)
	api.POST("/user/store-recent-search", middlewares.AuthMiddleware(), userController.StoreRecentSearch)
	api.POST("/user/promote-admin", middlewares.AuthMiddleware(), userController.PromoteToAdmin)

	api.GET("/hotels/cities", hotelController.GetCities)
	api.GET("/hotels/search", hotelController.SearchHotels)
	api.POST("/hotels", middlewares.AuthMiddleware(), hotelController.RegisterHotel)
	api.GET("/hotels/owner", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), hotelController.GetOwnerHotel)
	api.PUT("/hotels/owner", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), hotelController.UpdateHotel)

	api.GET("/rooms", roomController.GetAllRooms)
	api.GET("/rooms/:id", roomController.GetRoomDetail)
	api.GET("/rooms/:id/booked-dates", roomController.GetRoomBookedDates)
	api.GET("/rooms/owner", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), roomController.GetOwnerRooms)
	api.POST("/rooms", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), roomController.CreateRoom)
	api.PUT("/rooms", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), roomController.UpdateRoom)
	api.PUT("/rooms/toggle-availability", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), roomController.ToggleRoomAvailability)
	api.DELETE("/rooms/:id", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), roomController.DeleteRoom)

	api.POST("/booking/check-availability", bookingController.CheckAvailability)
	api.POST("/booking/book", middlewares.AuthMiddleware(), bookingController.CreateBooking)
	api.GET("/booking/user", middlewares.AuthMiddleware(), bookingController.GetUserBookings)
	api.GET("/booking/owner", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), bookingController.GetOwnerBookings)
	api.PUT("/booking/:id/cancel", middlewares.AuthMiddleware(), bookingController.CancelBooking)

	admin := api.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware(constants.RoleAdmin))
	admin.GET("/dashboard", adminController.GetDashboard)
	admin.GET("/bookings", adminController.GetBookings)
	admin.GET("/users", adminController.GetUsers)
	admin.GET("/hotels", adminController.GetHotels)
	admin.PUT("/bookings/:id/status", adminController.UpdateBookingStatus)
	admin.PUT("/users/:id/role", adminController.UpdateUserRole)

	api.GET("/owner/dashboard", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), adminController.GetOwnerDashboard)

	api.POST("/img/multi-upload", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
			if err != nil {
				c.Error(err)
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"urls":    urls,
		})
	})

	api.POST("/img/upload", middlewares.AuthMiddleware(), func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload avatar thành công",
			"url":     resp.SecureURL,
		})
	})

	//ws
	api.GET("/test-broadcast", middlewares.AuthMiddleware(constants.RoleAdmin), func(c *gin.Context) {
		message := []byte("Thông báo từ backend: Tin nhắn mới!")
		m.Broadcast(message)
		c.String(200, "Broadcast message sent!")
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
