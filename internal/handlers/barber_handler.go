package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/haircut-workshop-team/Haircut-Workshop/internal/cache"
	domain "github.com/haircut-workshop-team/Haircut-Workshop/internal/domain/appointment"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/dto"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/httperr"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/httpresp"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/middleware"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/models"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/timezone"
	usecase "github.com/haircut-workshop-team/Haircut-Workshop/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// BarberHandler covers the public barber listing and the barber portal
// (dashboard, appointment management).
type BarberHandler struct {
	db           *gorm.DB
	updateStatus *usecase.UpdateStatus
	cache        *cache.AvailabilityCache
}

func NewBarberHandler(
	db *gorm.DB,
	updateStatus *usecase.UpdateStatus,
	availabilityCache *cache.AvailabilityCache,
) *BarberHandler {
	return &BarberHandler{
		db:           db,
		updateStatus: updateStatus,
		cache:        availabilityCache,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// barberProfile resolves the Barber row behind the authenticated user.
func barberProfile(c *gin.Context, db *gorm.DB) (*models.Barber, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var barber models.Barber
	if err := db.Where("user_id = ?", userID).First(&barber).Error; err != nil {
		httperr.NotFound(c, "Barber profile not found")
		return nil, false
	}
	return &barber, true
}

// ======================================================
// PUBLIC LISTING
// ======================================================

func (h *BarberHandler) ListBarbers(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Preload("User").Order("id ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "Failed to fetch barbers")
		return
	}

	out := make([]dto.BarberListDTO, 0, len(barbers))
	for _, b := range barbers {
		var total, completed int64
		h.db.Model(&models.Appointment{}).
			Where("barber_id = ?", b.ID).
			Count(&total)
		h.db.Model(&models.Appointment{}).
			Where("barber_id = ? AND status = ?", b.ID, string(domain.StatusCompleted)).
			Count(&completed)

		out = append(out, dto.BarberListDTO{
			ID:                    b.ID,
			UserID:                b.UserID,
			Name:                  b.User.Name,
			Email:                 b.User.Email,
			Phone:                 b.User.Phone,
			ProfileImage:          b.User.ProfileImage,
			Specialties:           b.Specialties,
			YearsExperience:       b.YearsExperience,
			Bio:                   b.Bio,
			Rating:                b.Rating,
			TotalReviews:          b.TotalReviews,
			CreatedAt:             b.CreatedAt,
			TotalAppointments:     total,
			CompletedAppointments: completed,
		})
	}

	httpresp.List(c, out)
}

func (h *BarberHandler) GetBarber(c *gin.Context) {
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

// ======================================================
// PORTAL: DASHBOARD
// ======================================================

func (h *BarberHandler) Dashboard(c *gin.Context) {
	barber, ok := barberProfile(c, h.db)
	if !ok {
		return
	}

	now := timezone.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, timezone.Location())

	// Week runs Monday to Sunday.
	offset := (int(today.Weekday()) + 6) % 7
	weekStart := today.AddDate(0, 0, -offset)
	weekEnd := weekStart.AddDate(0, 0, 7)

	var todayRows []models.Appointment
	if err := h.db.Preload("Customer").Preload("Service").
		Where("barber_id = ? AND appointment_date = ?", barber.ID, today).
		Order("appointment_time ASC").
		Find(&todayRows).Error; err != nil {
		httperr.Internal(c, "Failed to fetch dashboard data")
		return
	}

	var pending, weekTotal, weekCompleted int64
	h.db.Model(&models.Appointment{}).
		Where("barber_id = ? AND status = ?", barber.ID, string(domain.StatusPending)).
		Count(&pending)
	h.db.Model(&models.Appointment{}).
		Where("barber_id = ? AND appointment_date >= ? AND appointment_date < ?",
			barber.ID, weekStart, weekEnd).
		Count(&weekTotal)
	h.db.Model(&models.Appointment{}).
		Where("barber_id = ? AND appointment_date >= ? AND appointment_date < ? AND status = ?",
			barber.ID, weekStart, weekEnd, string(domain.StatusCompleted)).
		Count(&weekCompleted)

	httpresp.OK(c, dto.BarberDashboardDTO{
		TodayAppointments: toBarberAppointmentDTOs(todayRows),
		PendingCount:      pending,
		WeekTotal:         weekTotal,
		WeekCompleted:     weekCompleted,
	})
}

// ======================================================
// PORTAL: APPOINTMENTS
// ======================================================

func (h *BarberHandler) ListAppointments(c *gin.Context) {
	barber, ok := barberProfile(c, h.db)
	if !ok {
		return
	}

	query := h.db.Preload("Customer").Preload("Service").
		Where("barber_id = ?", barber.ID)

	if date := c.Query("date"); date != "" {
		parsed, err := parseDate(date)
		if err != nil {
			httperr.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
			return
		}
		query = query.Where("appointment_date = ?", parsed)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var rows []models.Appointment
	if err := query.
		Order("appointment_date DESC").
		Order("appointment_time DESC").
		Find(&rows).Error; err != nil {
		httperr.Internal(c, "Failed to fetch appointments")
		return
	}

	httpresp.List(c, toBarberAppointmentDTOs(rows))
}

func (h *BarberHandler) UpdateAppointmentStatus(c *gin.Context) {
	barber, ok := barberProfile(c, h.db)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid appointment ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Status is required")
		return
	}

	ctx := c.Request.Context()

	ap, err := h.updateStatus.Execute(ctx, barber.ID, uint(id), domain.Status(req.Status))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "Invalid status value")
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "Appointment not found")
		case httperr.IsBusiness(err, "invalid_status_transition"):
			httperr.BadRequest(c, "This status change is not allowed")
		default:
			httperr.Internal(c, "Failed to update appointment status")
		}
		return
	}

	// Cancelled and no-show stop blocking the slot, so cached
	// availability for that day is stale.
	if !domain.Status(ap.Status).BlocksSlot() {
		h.cache.Invalidate(ctx, ap.BarberID, ap.AppointmentDate.Format("2006-01-02"))
	}

	httpresp.OKMessage(c, "Appointment status updated successfully", ap)
}

func toBarberAppointmentDTOs(rows []models.Appointment) []dto.BarberAppointmentDTO {
	out := make([]dto.BarberAppointmentDTO, 0, len(rows))
	for _, ap := range rows {
		out = append(out, dto.BarberAppointmentDTO{
			ID:              ap.ID,
			AppointmentDate: ap.AppointmentDate.Format("2006-01-02"),
			AppointmentTime: ap.AppointmentTime,
			Status:          ap.Status,
			Notes:           ap.Notes,
			CustomerName:    ap.Customer.Name,
			CustomerEmail:   ap.Customer.Email,
			CustomerPhone:   ap.Customer.Phone,
			ServiceName:     ap.Service.Name,
			ServicePrice:    ap.Service.Price,
			ServiceDuration: ap.Service.DurationMin,
		})
	}
	return out
}
