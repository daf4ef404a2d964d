package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "wearecars/internal/config"
	h "wearecars/internal/http/handlers"
	"wearecars/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	requireAuth := middleware.RequireAuth(h.JWTSecret())

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Fleet
		api.GET("/cars", h.GetCars)

		// Bookings
		bookings := api.Group("/bookings")
		bookings.GET("", h.GetBookings)
		bookings.GET("/export", h.ExportBookingsCSV)
		bookings.POST("/quote", h.QuoteBooking)
		bookings.POST("", requireAuth, h.CreateBooking)
		bookings.GET("/:id", h.GetBookingByID)
		bookings.GET("/:id/receipt", h.GetBookingReceipt)

		// Stats
		api.GET("/stats", h.GetBookingStats)

		// Booking wizard sessions
		wiz := api.Group("/wizard")
		wiz.POST("", h.OpenWizard)
		wiz.GET("/:id", h.GetWizard)
		wiz.PUT("/:id/draft", h.UpdateWizardDraft)
		wiz.POST("/:id/advance", h.AdvanceWizard)
		wiz.POST("/:id/retreat", h.RetreatWizard)
		wiz.POST("/:id/cancel", h.CancelWizard)
		wiz.POST("/:id/confirm", requireAuth, h.ConfirmWizard)
	}

	return r
}
