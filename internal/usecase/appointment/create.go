package appointment

import (
	"context"
	"time"

	"github.com/haircut-workshop-team/Haircut-Workshop/internal/audit"
	domain "github.com/haircut-workshop-team/Haircut-Workshop/internal/domain/appointment"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/httperr"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/models"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	CustomerID uint
	BarberID   uint
	ServiceID  uint

	Date  string // YYYY-MM-DD
	Time  string // HH:MM or HH:MM:SS
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: auditDispatcher,
		now:   timezone.Now,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Appointment, error) {

	date, err := time.ParseInLocation("2006-01-02", in.Date, timezone.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	startMinutes, err := domain.ParseClock(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if svc.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_service_duration")
	}

	if _, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	// Reject dates and, for today, start times already behind us.
	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, timezone.Location())
	if date.Before(today) {
		return nil, httperr.ErrBusiness("time_in_past")
	}
	if timezone.SameDate(date, now) && startMinutes <= timezone.MinutesOfDay(now) {
		return nil, httperr.ErrBusiness("time_in_past")
	}

	window, err := uc.repo.GetWorkingWindow(ctx, in.BarberID, int(date.Weekday()))
	if err != nil {
		return nil, err
	}
	if window == nil || !window.Available {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}
	if startMinutes < window.StartMinutes || startMinutes+svc.DurationMin > window.EndMinutes {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	ap := &models.Appointment{
		CustomerID:      in.CustomerID,
		BarberID:        in.BarberID,
		ServiceID:       in.ServiceID,
		AppointmentDate: date,
		AppointmentTime: domain.FormatClock(startMinutes),
		Status:          string(domain.InitialStatus()),
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap, svc.DurationMin); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CustomerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"barber_id":  in.BarberID,
			"service_id": in.ServiceID,
			"date":       in.Date,
			"time":       ap.AppointmentTime,
		},
	})

	return ap, nil
}
