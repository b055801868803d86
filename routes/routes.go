package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"petclinic/handlers"
)

// RegisterAppointmentRoutes registers appointment endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, h *handlers.AppointmentHandler) {
	api := r.Group("/api/appointments")
	{
		api.POST("", h.CreateAppointmentHandler)
		api.GET("", h.GetAllAppointmentsHandler)
		api.GET("/:id", h.GetAppointmentHandler)
		api.DELETE("/:id", h.DeleteAppointmentHandler)
	}
}

// RegisterPetRoutes registers pet endpoints.
func RegisterPetRoutes(r *gin.Engine, h *handlers.PetHandler) {
	api := r.Group("/api/pets")
	{
		api.POST("", h.CreatePetHandler)
		api.GET("", h.GetAllPetsHandler)
		api.GET("/:id", h.GetPetHandler)
		api.DELETE("/:id", h.DeletePetHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Pet clinic API is running"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, appointments *handlers.AppointmentHandler, pets *handlers.PetHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAppointmentRoutes(r, appointments)
	RegisterPetRoutes(r, pets)
	RegisterHealthRoute(r)
}
