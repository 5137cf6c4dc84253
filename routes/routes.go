package routes

import (
	"net/http"
	"time"

	"remindly/handlers"
	"remindly/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterReminderRoutes registers the reminder lifecycle endpoints.
func RegisterReminderRoutes(api *gin.RouterGroup, h *handlers.ReminderHandler) {
	reminders := api.Group("/reminders")
	{
		reminders.GET("", h.ListHandler)
		reminders.GET("/day/:day", h.ByDayHandler)
		reminders.POST("", h.CreateHandler)
		reminders.DELETE("/:id", h.DeleteHandler)
		reminders.DELETE("", h.ClearAllHandler)
	}
}

// RegisterNoteRoutes registers the note endpoints.
func RegisterNoteRoutes(api *gin.RouterGroup, h *handlers.NoteHandler) {
	notes := api.Group("/notes")
	{
		notes.GET("", h.ListHandler)
		notes.POST("", h.UpsertHandler)
		notes.DELETE("/:id", h.DeleteHandler)
	}
}

// RegisterSettingsRoutes registers the preference endpoints.
func RegisterSettingsRoutes(api *gin.RouterGroup, h *handlers.SettingsHandler) {
	settings := api.Group("/settings")
	{
		settings.GET("/tone", h.GetToneHandler)
		settings.PUT("/tone", h.SetToneHandler)
		settings.GET("/daily-summary", h.GetDailySummaryHandler)
		settings.PUT("/daily-summary", h.SetDailySummaryHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Remindly"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, reminders *handlers.ReminderHandler, notes *handlers.NoteHandler, settings *handlers.SettingsHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)

	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware())
	RegisterReminderRoutes(api, reminders)
	RegisterNoteRoutes(api, notes)
	RegisterSettingsRoutes(api, settings)
}
