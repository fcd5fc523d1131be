package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jobdock-dev/jobdock/internal/handlers"
	"github.com/jobdock-dev/jobdock/internal/middleware"
	"github.com/jobdock-dev/jobdock/internal/types"
	"gorm.io/gorm"
)

func NewRouter(database *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h := handlers.New(database)

	r.GET("/health", handlers.HealthCheck)

	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.GET("/profile", middleware.AuthMiddleware(), h.Profile)

	r.POST("/job", middleware.AuthMiddleware(), h.CreateJob)
	r.GET("/job", h.ListJobs)
	r.GET("/job/:id", h.GetJob)
	r.PUT("/job/:id", middleware.AuthMiddleware(), h.UpdateJob)
	r.DELETE("/job/:id", middleware.AuthMiddleware(), h.DeleteJob)

	r.POST("/bookmark/:id", middleware.AuthMiddleware(), h.CreateBookmark)
	r.GET("/bookmark", middleware.AuthMiddleware(), h.ListBookmarks)
	r.GET("/bookmark/:id", middleware.AuthMiddleware(), h.GetBookmark)

	return r
}
