package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/haircut-workshop-team/Haircut-Workshop/internal/audit"
	domain "github.com/haircut-workshop-team/Haircut-Workshop/internal/domain/appointment"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/dto"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/httperr"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/httpresp"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/middleware"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/models"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/timezone"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAdminHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *AdminHandler {
	return &AdminHandler{db: db, audit: auditDispatcher}
}

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Duration    int     `json:"duration" binding:"required"`
	ImageURL    string  `json:"image_url"`
	IsActive    *bool   `json:"is_active"`
}

type CreateBarberRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	Phone           string `json:"phone"`
	Specialties     string `json:"specialties"`
	YearsExperience int    `json:"years_experience"`
	Bio             string `json:"bio"`
}

type UpdateBarberRequest struct {
	Specialties     *string `json:"specialties"`
	YearsExperience *int    `json:"years_experience"`
	Bio             *string `json:"bio"`
}

// ======================================================
// DASHBOARD
// ======================================================

func (h *AdminHandler) Dashboard(c *gin.Context) {
	var totals dto.DashboardTotals

	h.db.Model(&models.Service{}).Where("is_active = ?", true).Count(&totals.TotalServices)
	h.db.Model(&models.Appointment{}).Count(&totals.TotalAppointments)
	h.db.Model(&models.Barber{}).Count(&totals.TotalBarbers)

	h.db.Model(&models.Appointment{}).
		Select("COALESCE(SUM(services.price), 0)").
		Joins("JOIN services ON services.id = appointments.service_id").
		Where("appointments.status = ?", string(domain.StatusCompleted)).
		Scan(&totals.TotalRevenue)

	var recent []models.Appointment
	if err := h.db.Preload("Customer").Preload("Service").
		Preload("Barber.User").
		Order("created_at DESC").
		Limit(5).
		Find(&recent).Error; err != nil {
		httperr.Internal(c, "Failed to fetch dashboard data")
		return
	}

	recentDTOs := make([]dto.RecentBookingDTO, 0, len(recent))
	for _, ap := range recent {
		recentDTOs = append(recentDTOs, dto.RecentBookingDTO{
			ID:              ap.ID,
			AppointmentDate: ap.AppointmentDate.Format("2006-01-02"),
			AppointmentTime: ap.AppointmentTime,
			Status:          ap.Status,
			CustomerName:    ap.Customer.Name,
			CustomerEmail:   ap.Customer.Email,
			BarberName:      ap.Barber.User.Name,
			ServiceName:     ap.Service.Name,
			ServicePrice:    ap.Service.Price,
		})
	}

	revenue, err := h.monthlyRevenue()
	if err != nil {
		httperr.Internal(c, "Failed to fetch revenue data")
		return
	}

	var statusCounts []dto.StatusCountDTO
	if err := h.db.Model(&models.Appointment{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&statusCounts).Error; err != nil {
		httperr.Internal(c, "Failed to fetch status breakdown")
		return
	}
	if statusCounts == nil {
		statusCounts = []dto.StatusCountDTO{}
	}

	httpresp.OK(c, gin.H{
		"totals":          totals,
		"recent_bookings": recentDTOs,
		"monthly_revenue": revenue,
		"status_counts":   statusCounts,
	})
}

// monthlyRevenue sums completed-appointment prices per month over the
// last six months, oldest first.
func (h *AdminHandler) monthlyRevenue() ([]dto.MonthlyRevenueDTO, error) {
	now := timezone.Now()
	start := now.AddDate(0, -5, 0)
	windowStart := start.AddDate(0, 0, -start.Day()+1)

	type row struct {
		Year    int
		Month   int
		Revenue float64
	}
	var rows []row

	err := h.db.Model(&models.Appointment{}).
		Select(`EXTRACT(YEAR FROM appointment_date)::int AS year,
			EXTRACT(MONTH FROM appointment_date)::int AS month,
			COALESCE(SUM(services.price), 0) AS revenue`).
		Joins("JOIN services ON services.id = appointments.service_id").
		Where("appointments.status = ? AND appointment_date >= ?",
			string(domain.StatusCompleted), windowStart).
		Group("year, month").
		Order("year, month").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byMonth := make(map[[2]int]float64, len(rows))
	for _, r := range rows {
		byMonth[[2]int{r.Year, r.Month}] = r.Revenue
	}

	// Emit every month in the window, zero-filled.
	out := make([]dto.MonthlyRevenueDTO, 0, 6)
	cursor := windowStart
	for i := 0; i < 6; i++ {
		out = append(out, dto.MonthlyRevenueDTO{
			Month:    cursor.Format("Jan"),
			MonthNum: int(cursor.Month()),
			Revenue:  byMonth[[2]int{cursor.Year(), int(cursor.Month())}],
		})
		cursor = cursor.AddDate(0, 1, 0)
	}

	return out, nil
}

// Activities exposes the latest audit log entries.
func (h *AdminHandler) Activities(c *gin.Context) {
	var logs []models.AuditLog
	if err := h.db.Order("created_at DESC").Limit(50).Find(&logs).Error; err != nil {
		httperr.Internal(c, "Failed to fetch activities")
		return
	}

	httpresp.List(c, logs)
}

// ======================================================
// SERVICE MANAGEMENT
// ======================================================

func (h *AdminHandler) ListAllServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "Failed to fetch services")
		return
	}

	httpresp.List(c, services)
}

// GetService fetches any service, active or not. The route's wildcard
// also carries /services/stats, since gin cannot host a static sibling
// next to :id.
func (h *AdminHandler) GetService(c *gin.Context) {
	if c.Param("id") == "stats" {
		h.ServiceStats(c)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid service ID")
		return
	}

	var service models.Service
	if err := h.db.First(&service, uint(id)).Error; err != nil {
		httperr.NotFound(c, "Service not found")
		return
	}

	httpresp.OK(c, service)
}

func (h *AdminHandler) CreateService(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "name, price and duration are required")
		return
	}
	if req.Price <= 0 || req.Duration <= 0 {
		httperr.BadRequest(c, "price and duration must be positive")
		return
	}

	var count int64
	h.db.Model(&models.Service{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "A service with this name already exists")
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.Duration,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "Failed to create service")
		return
	}

	h.dispatchAdminAudit(c, "service_created", "service", service.ID)

	httpresp.Created(c, "Service created successfully", service)
}

func (h *AdminHandler) UpdateService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid service ID")
		return
	}

	var service models.Service
	if err := h.db.First(&service, uint(id)).Error; err != nil {
		httperr.NotFound(c, "Service not found")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "name, price and duration are required")
		return
	}
	if req.Price <= 0 || req.Duration <= 0 {
		httperr.BadRequest(c, "price and duration must be positive")
		return
	}

	var count int64
	h.db.Model(&models.Service{}).
		Where("name = ? AND id <> ?", req.Name, service.ID).
		Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "A service with this name already exists")
		return
	}

	service.Name = req.Name
	service.Description = req.Description
	service.Price = req.Price
	service.DurationMin = req.Duration
	service.ImageURL = req.ImageURL
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "Failed to update service")
		return
	}

	h.dispatchAdminAudit(c, "service_updated", "service", service.ID)

	httpresp.OKMessage(c, "Service updated successfully", service)
}

// DeleteService refuses while appointments reference the service, so
// history keeps its price and duration.
func (h *AdminHandler) DeleteService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid service ID")
		return
	}

	var service models.Service
	if err := h.db.First(&service, uint(id)).Error; err != nil {
		httperr.NotFound(c, "Service not found")
		return
	}

	var inUse int64
	h.db.Model(&models.Appointment{}).Where("service_id = ?", service.ID).Count(&inUse)
	if inUse > 0 {
		httperr.BadRequest(c, "Cannot delete a service with existing appointments. Deactivate it instead")
		return
	}

	if err := h.db.Delete(&service).Error; err != nil {
		httperr.Internal(c, "Failed to delete service")
		return
	}

	h.dispatchAdminAudit(c, "service_deleted", "service", service.ID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Service deleted successfully",
	})
}

func (h *AdminHandler) ServiceStats(c *gin.Context) {
	var stats dto.ServiceStatsDTO
	err := h.db.Model(&models.Service{}).
		Select(`COUNT(*) AS total_services,
			COALESCE(AVG(price), 0) AS average_price,
			COALESCE(MIN(price), 0) AS lowest_price,
			COALESCE(MAX(price), 0) AS highest_price`).
		Where("is_active = ?", true).
		Scan(&stats).Error
	if err != nil {
		httperr.Internal(c, "Failed to fetch service stats")
		return
	}

	httpresp.OK(c, stats)
}

// ======================================================
// BARBER MANAGEMENT
// ======================================================

func (h *AdminHandler) GetBarber(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid barber ID")
		return
	}

	var barber models.Barber
	if err := h.db.Preload("User").First(&barber, uint(id)).Error; err != nil {
		httperr.NotFound(c, "Barber not found")
		return
	}

	httpresp.OK(c, gin.H{
		"id":               barber.ID,
		"user_id":          barber.UserID,
		"name":             barber.User.Name,
		"email":            barber.User.Email,
		"phone":            barber.User.Phone,
		"profile_image":    barber.User.ProfileImage,
		"specialties":      barber.Specialties,
		"years_experience": barber.YearsExperience,
		"bio":              barber.Bio,
		"rating":           barber.Rating,
		"total_reviews":    barber.TotalReviews,
	})
}

func (h *AdminHandler) CreateBarber(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "name, email and password are required")
		return
	}

	email := normalizeEmail(req.Email)

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "Email domain does not exist")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "Email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "Failed to hash password")
		return
	}

	var barber models.Barber
	err = h.db.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Name:         req.Name,
			Email:        email,
			PasswordHash: string(hashed),
			Phone:        req.Phone,
			Role:         models.RoleBarber,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		barber = models.Barber{
			UserID:          user.ID,
			Specialties:     req.Specialties,
			YearsExperience: req.YearsExperience,
			Bio:             req.Bio,
		}
		return tx.Create(&barber).Error
	})
	if err != nil {
		httperr.Internal(c, "Failed to create barber")
		return
	}

	h.dispatchAdminAudit(c, "barber_created", "barber", barber.ID)

	httpresp.Created(c, "Barber created successfully", gin.H{
		"id":               barber.ID,
		"user_id":          barber.UserID,
		"name":             req.Name,
		"email":            email,
		"specialties":      barber.Specialties,
		"years_experience": barber.YearsExperience,
	})
}

func (h *AdminHandler) UpdateBarber(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid barber ID")
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, uint(id)).Error; err != nil {
		httperr.NotFound(c, "Barber not found")
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	updates := map[string]any{}
	if req.Specialties != nil {
		updates["specialties"] = *req.Specialties
	}
	if req.YearsExperience != nil {
		updates["years_experience"] = *req.YearsExperience
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}

	if len(updates) == 0 {
		httperr.BadRequest(c, "No fields to update")
		return
	}

	if err := h.db.Model(&barber).Updates(updates).Error; err != nil {
		httperr.Internal(c, "Failed to update barber")
		return
	}

	h.dispatchAdminAudit(c, "barber_updated", "barber", barber.ID)

	httpresp.OKMessage(c, "Barber updated successfully", barber)
}

// DeleteBarber removes the profile and demotes the user back to
// customer. Blocked while open appointments remain.
func (h *AdminHandler) DeleteBarber(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid barber ID")
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, uint(id)).Error; err != nil {
		httperr.NotFound(c, "Barber not found")
		return
	}

	var open int64
	h.db.Model(&models.Appointment{}).
		Where("barber_id = ? AND status IN ?", barber.ID,
			[]string{string(domain.StatusPending), string(domain.StatusConfirmed)}).
		Count(&open)
	if open > 0 {
		httperr.BadRequest(c, "Cannot remove a barber with pending or confirmed appointments")
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("barber_id = ?", barber.ID).Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&barber).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", barber.UserID).
			Update("role", models.RoleCustomer).Error
	})
	if err != nil {
		httperr.Internal(c, "Failed to remove barber")
		return
	}

	h.dispatchAdminAudit(c, "barber_removed", "barber", barber.ID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Barber removed successfully",
	})
}

func (h *AdminHandler) dispatchAdminAudit(c *gin.Context, action, entity string, entityID uint) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   action,
		Entity:   entity,
		EntityID: &entityID,
	})
}
