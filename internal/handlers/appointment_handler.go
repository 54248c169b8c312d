package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

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

type AppointmentHandler struct {
	repo            domain.Repository
	getAvailability *usecase.GetAvailability
	create          *usecase.CreateAppointment
	cancel          *usecase.CancelByCustomer
	cache           *cache.AvailabilityCache
}

func NewAppointmentHandler(
	repo domain.Repository,
	getAvailability *usecase.GetAvailability,
	create *usecase.CreateAppointment,
	cancel *usecase.CancelByCustomer,
	availabilityCache *cache.AvailabilityCache,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:            repo,
		getAvailability: getAvailability,
		create:          create,
		cancel:          cancel,
		cache:           availabilityCache,
	}
}

type CreateAppointmentRequest struct {
	BarberID        uint   `json:"barber_id" binding:"required"`
	ServiceID       uint   `json:"service_id" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required"`
	AppointmentTime string `json:"appointment_time" binding:"required"`
	Notes           string `json:"notes"`
}

// ======================================================
// AVAILABILITY
// ======================================================

// GetAvailability answers GET /api/appointments/availability/:barberId
// with the open slots for one barber, date and service.
func (h *AppointmentHandler) GetAvailability(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("barberId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid barber ID")
		return
	}

	date := c.Query("date")
	serviceIDRaw := c.Query("service_id")
	if date == "" || serviceIDRaw == "" {
		httperr.BadRequest(c, "date and service_id are required")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDRaw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid service ID")
		return
	}

	parsedDate, err := parseDate(date)
	if err != nil {
		httperr.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	ctx := c.Request.Context()

	// Today's slot list shrinks as the clock advances, so only future
	// dates go through the cache.
	cacheable := cacheableDate(parsedDate, timezone.Now())

	if cacheable {
		if slots, ok := h.cache.Get(ctx, uint(barberID), date, uint(serviceID)); ok {
			httpresp.OK(c, slots)
			return
		}
	}

	result, err := h.getAvailability.Execute(ctx, usecase.AvailabilityInput{
		BarberID:  uint(barberID),
		ServiceID: uint(serviceID),
		Date:      parsedDate,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.NotFound(c, "Service not found")
		case httperr.IsBusiness(err, "invalid_service_duration"):
			httperr.Internal(c, "Service has an invalid duration")
		default:
			httperr.Internal(c, "Failed to fetch availability")
		}
		return
	}

	if !result.BarberAvailable {
		c.JSON(http.StatusOK, httpresp.Response{
			Success: true,
			Message: "Barber is not available on this day",
			Data:    []string{},
		})
		return
	}

	if cacheable {
		h.cache.Set(ctx, uint(barberID), date, uint(serviceID), result.Slots)
	}

	httpresp.OK(c, result.Slots)
}

// ======================================================
// BOOKING
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "barber_id, service_id, appointment_date and appointment_time are required")
		return
	}

	ctx := c.Request.Context()

	ap, err := h.create.Execute(ctx, usecase.CreateInput{
		CustomerID: customerID,
		BarberID:   req.BarberID,
		ServiceID:  req.ServiceID,
		Date:       req.AppointmentDate,
		Time:       req.AppointmentTime,
		Notes:      req.Notes,
	})
	if err != nil {
		writeCreateError(c, err)
		return
	}

	h.cache.Invalidate(ctx, ap.BarberID, ap.AppointmentDate.Format("2006-01-02"))

	httpresp.Created(c, "Appointment booked successfully", ap)
}

func writeCreateError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "Invalid time format. Use HH:MM")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.NotFound(c, "Service not found")
	case httperr.IsBusiness(err, "invalid_service_duration"):
		httperr.Internal(c, "Service has an invalid duration")
	case httperr.IsBusiness(err, "barber_not_found"):
		httperr.NotFound(c, "Barber not found")
	case httperr.IsBusiness(err, "time_in_past"):
		httperr.BadRequest(c, "Cannot book appointments in the past")
	case httperr.IsBusiness(err, "outside_working_hours"):
		httperr.BadRequest(c, "Selected time is outside the barber's working hours")
	case httperr.IsBusiness(err, "time_conflict"):
		httperr.Write(c, http.StatusConflict, "This time slot is no longer available")
	default:
		httperr.Internal(c, "Failed to book appointment")
	}
}

// ======================================================
// CUSTOMER LISTING / CANCELLATION
// ======================================================

func (h *AppointmentHandler) GetMyAppointments(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	h.listForCustomer(c, customerID)
}

// GetUserAppointments serves one user's bookings to an admin or to the
// user themself.
func (h *AppointmentHandler) GetUserAppointments(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid user ID")
		return
	}

	requesterID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)
	if requesterID != uint(targetID) && role != models.RoleAdmin {
		httperr.Forbidden(c, "You can only view your own appointments")
		return
	}

	h.listForCustomer(c, uint(targetID))
}

func (h *AppointmentHandler) listForCustomer(c *gin.Context, customerID uint) {
	appointments, err := h.repo.ListAppointmentsForCustomer(c.Request.Context(), customerID)
	if err != nil {
		httperr.Internal(c, "Failed to fetch appointments")
		return
	}

	out := make([]dto.CustomerAppointmentDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.CustomerAppointmentDTO{
			ID:              ap.ID,
			BarberID:        ap.BarberID,
			AppointmentDate: ap.AppointmentDate.Format("2006-01-02"),
			AppointmentTime: ap.AppointmentTime,
			Status:          ap.Status,
			Notes:           ap.Notes,
			CreatedAt:       ap.CreatedAt,
			ServiceName:     ap.Service.Name,
			ServicePrice:    ap.Service.Price,
			ServiceDuration: ap.Service.DurationMin,
			BarberName:      ap.Barber.User.Name,
			BarberEmail:     ap.Barber.User.Email,
			BarberPhone:     ap.Barber.User.Phone,
		})
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid appointment ID")
		return
	}

	ctx := c.Request.Context()

	ap, err := h.cancel.Execute(ctx, uint(id), customerID)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "Appointment not found")
			return
		}
		httperr.Internal(c, "Failed to cancel appointment")
		return
	}

	h.cache.Invalidate(ctx, ap.BarberID, ap.AppointmentDate.Format("2006-01-02"))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Appointment cancelled successfully",
	})
}

func parseDate(date string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", date, timezone.Location())
}

// cacheableDate reports whether an availability result for the date may
// be cached. Same-day results depend on the current time.
func cacheableDate(date, now time.Time) bool {
	return !timezone.SameDate(date, now)
}
