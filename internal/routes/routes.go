package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/haircut-workshop-team/Haircut-Workshop/internal/audit"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/cache"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/config"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/handlers"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/infra/repository"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/middleware"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/models"
	usecase "github.com/haircut-workshop-team/Haircut-Workshop/internal/usecase/appointment"
)

// RegisterRoutes wires repositories, use cases and handlers onto the
// engine.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	availabilityCache *cache.AvailabilityCache,
) {
	// ----- infrastructure -----
	repo := repository.NewAppointmentGormRepository(db)
	auditDispatcher := audit.NewDispatcher(audit.New(db))

	// ----- use cases -----
	getAvailability := usecase.NewGetAvailability(repo)
	createAppointment := usecase.NewCreateAppointment(repo, auditDispatcher)
	cancelByCustomer := usecase.NewCancelByCustomer(repo, auditDispatcher)
	updateStatus := usecase.NewUpdateStatus(repo, auditDispatcher)

	// ----- handlers -----
	authHandler := handlers.NewAuthHandler(db, cfg, auditDispatcher)
	userHandler := handlers.NewUserHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	barberHandler := handlers.NewBarberHandler(db, updateStatus, availabilityCache)
	scheduleHandler := handlers.NewScheduleHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(
		repo, getAvailability, createAppointment, cancelByCustomer, availabilityCache)
	reviewHandler := handlers.NewReviewHandler(db, auditDispatcher)
	adminHandler := handlers.NewAdminHandler(db, auditDispatcher)

	authRequired := middleware.AuthMiddleware(cfg)

	api := r.Group("/api")

	// ----- auth -----
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/forgot-password", authHandler.RequestPasswordReset)
		auth.POST("/reset-password", authHandler.ResetPassword)
		auth.GET("/me", authRequired, authHandler.GetCurrentUser)
		auth.PUT("/change-password", authRequired, userHandler.ChangePassword)
	}

	// ----- users -----
	users := api.Group("/users", authRequired)
	{
		users.GET("/:id", userHandler.GetUserByID)
		users.PUT("/:id", userHandler.UpdateProfile)
		users.DELETE("/:id", userHandler.DeleteAccount)
	}

	// ----- public catalog -----
	services := api.Group("/services")
	{
		services.GET("", serviceHandler.ListServices)
		services.GET("/:id", serviceHandler.GetService)
	}

	barbers := api.Group("/barber")
	{
		barbers.GET("/list", barberHandler.ListBarbers)
		barbers.GET("/profile/:id", barberHandler.GetBarber)
	}

	// ----- appointments (customer) -----
	appointments := api.Group("/appointments")
	{
		appointments.GET("/availability/:barberId", appointmentHandler.GetAvailability)

		appointments.POST("", authRequired,
			middleware.RequireRoles(models.RoleCustomer, models.RoleAdmin),
			appointmentHandler.Create)
		appointments.GET("/my", authRequired, appointmentHandler.GetMyAppointments)
		appointments.GET("/user/:userId", authRequired, appointmentHandler.GetUserAppointments)
		appointments.DELETE("/:id", authRequired, appointmentHandler.Delete)
	}

	// ----- reviews -----
	reviews := api.Group("/reviews")
	{
		reviews.GET("/barber/:barberId", reviewHandler.ListByBarber)

		reviews.POST("", authRequired,
			middleware.RequireRoles(models.RoleCustomer), reviewHandler.Create)
		reviews.PUT("/:id", authRequired,
			middleware.RequireRoles(models.RoleCustomer), reviewHandler.Update)
		reviews.DELETE("/:id", authRequired,
			middleware.RequireRoles(models.RoleCustomer), reviewHandler.Delete)
	}

	// ----- barber portal -----
	barberOnly := middleware.RequireRoles(models.RoleBarber)
	{
		barbers.GET("/dashboard", authRequired, barberOnly, barberHandler.Dashboard)
		barbers.GET("/appointments", authRequired, barberOnly, barberHandler.ListAppointments)
		barbers.PUT("/appointments/:id/status", authRequired, barberOnly, barberHandler.UpdateAppointmentStatus)
		barbers.GET("/schedule", authRequired, barberOnly, scheduleHandler.GetSchedule)
		barbers.POST("/schedule", authRequired, barberOnly, scheduleHandler.SetSchedule)
	}

	// ----- admin -----
	admin := api.Group("/admin", authRequired,
		middleware.RequireRoles(models.RoleAdmin))
	{
		admin.GET("/dashboard/stats", adminHandler.Dashboard)
		admin.GET("/dashboard/activities", adminHandler.Activities)

		admin.GET("/services", adminHandler.ListAllServices)
		// /services/stats resolves through the same wildcard.
		admin.GET("/services/:id", adminHandler.GetService)
		admin.POST("/services", adminHandler.CreateService)
		admin.PUT("/services/:id", adminHandler.UpdateService)
		admin.DELETE("/services/:id", adminHandler.DeleteService)

		admin.GET("/barbers", barberHandler.ListBarbers)
		admin.GET("/barbers/:id", adminHandler.GetBarber)
		admin.POST("/barbers", adminHandler.CreateBarber)
		admin.PUT("/barbers/:id", adminHandler.UpdateBarber)
		admin.DELETE("/barbers/:id", adminHandler.DeleteBarber)
	}
}
