package main

import (
	"log"
	"net/http"
	"os"

	"github.com/shivam6677ojh/QuickStay-HotelBooking/config"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/jobs"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/models"
	"github.com/shivam6677ojh/QuickStay-HotelBooking/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title QuickStay Hotel Booking API
// @version 1.0
// @description API đặt phòng khách sạn QuickStay
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func migrateTables() {
	if err := config.DB.AutoMigrate(&models.User{}, &models.Hotel{}, &models.Room{}, &models.Booking{}); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	svcs := routes.BuildServices(config.DB, config.RedisClient, m)

	jobs.SetStatsRefresher(svcs.Dashboard)
	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, svcs, config.Cloudinary, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
