package main

import (
	"log"
	"os"

	"school-admin-api/config"
	"school-admin-api/internal/activity"
	"school-admin-api/internal/auth"
	"school-admin-api/internal/banner"
	"school-admin-api/internal/dashboard"
	"school-admin-api/internal/gallery"
	"school-admin-api/internal/message"
	"school-admin-api/internal/news"
	"school-admin-api/internal/profile"
	"school-admin-api/internal/upload"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// .env is optional; real deployments set env vars directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.LoadConfig()

	dsn := "host=" + cfg.DBHost +
		" user=" + cfg.DBUser +
		" password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName +
		" port=" + cfg.DBPort +
		" sslmode=disable"

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&banner.Banner{},
		&gallery.GalleryItem{},
		&message.Message{},
		&news.News{},
		&profile.SchoolProfile{},
		&activity.ActivityLog{},
	); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	r := gin.Default()

	allowOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowOrigins = append(allowOrigins, cfg.FrontendURL)
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	logService := &activity.LogService{DB: db}
	activity.RegisterRoutes(r, logService)

	authService := &auth.AuthService{CFG: &cfg}
	auth.RegisterRoutes(r, authService, logService)

	bannerService := &banner.BannerService{DB: db}
	banner.RegisterRoutes(r, bannerService, logService)

	galleryService := &gallery.GalleryService{DB: db}
	gallery.RegisterRoutes(r, galleryService)

	messageService := &message.MessageService{DB: db}
	message.RegisterRoutes(r, messageService, logService)

	newsService := &news.NewsService{DB: db}
	news.RegisterRoutes(r, newsService, logService)

	profileService := &profile.ProfileService{DB: db}
	profile.RegisterRoutes(r, profileService)

	uploadService := &upload.UploadService{CFG: &cfg}
	upload.RegisterRoutes(r, uploadService)

	dashboardService := &dashboard.DashboardService{DB: db}
	dashboard.RegisterRoutes(r, dashboardService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on 0.0.0.0:%s ...", port)
	log.Fatal(r.Run("0.0.0.0:" + port))
}
