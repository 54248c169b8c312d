package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/haircut-workshop-team/Haircut-Workshop/internal/domain/appointment"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/httperr"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/httpresp"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/models"
)

// ScheduleHandler manages a barber's weekly working hours. Availability
// cache entries are left to expire on their own TTL after a schedule
// change.
type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

type ScheduleDayRequest struct {
	DayOfWeek   int    `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

type SetScheduleRequest struct {
	Schedule []ScheduleDayRequest `json:"schedule" binding:"required"`
}

func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	barber, ok := barberProfile(c, h.db)
	if !ok {
		return
	}

	var rows []models.WorkingHours
	if err := h.db.Where("barber_id = ?", barber.ID).
		Order("day_of_week ASC").
		Find(&rows).Error; err != nil {
		httperr.Internal(c, "Failed to fetch schedule")
		return
	}

	httpresp.List(c, rows)
}

// SetSchedule upserts the posted days; days left out keep their current
// configuration.
func (h *ScheduleHandler) SetSchedule(c *gin.Context) {
	barber, ok := barberProfile(c, h.db)
	if !ok {
		return
	}

	var req SetScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Schedule) == 0 {
		httperr.BadRequest(c, "A non-empty schedule array is required")
		return
	}

	rows := make([]models.WorkingHours, 0, len(req.Schedule))
	for _, day := range req.Schedule {
		if day.DayOfWeek < 0 || day.DayOfWeek > 6 {
			httperr.BadRequest(c, "day_of_week must be between 0 (Sunday) and 6 (Saturday)")
			return
		}

		if day.IsAvailable {
			start, err := domain.ParseClock(day.StartTime)
			if err != nil {
				httperr.BadRequest(c, "Invalid start_time. Use HH:MM")
				return
			}
			end, err := domain.ParseClock(day.EndTime)
			if err != nil {
				httperr.BadRequest(c, "Invalid end_time. Use HH:MM")
				return
			}
			if start >= end {
				httperr.BadRequest(c, "start_time must be before end_time")
				return
			}

			day.StartTime = domain.FormatClock(start)
			day.EndTime = domain.FormatClock(end)
		}

		rows = append(rows, models.WorkingHours{
			BarberID:    barber.ID,
			DayOfWeek:   day.DayOfWeek,
			StartTime:   day.StartTime,
			EndTime:     day.EndTime,
			IsAvailable: day.IsAvailable,
		})
	}

	err := h.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "barber_id"}, {Name: "day_of_week"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"start_time", "end_time", "is_available", "updated_at",
		}),
	}).Create(&rows).Error
	if err != nil {
		httperr.Internal(c, "Failed to save schedule")
		return
	}

	httpresp.OKMessage(c, "Schedule updated successfully", rows)
}
