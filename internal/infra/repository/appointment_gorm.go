package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/haircut-workshop-team/Haircut-Workshop/internal/domain/appointment"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/httperr"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Service catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWorkingWindow(
	ctx context.Context,
	barberID uint,
	dayOfWeek int,
) (*domain.WorkingWindow, error) {

	var wh models.WorkingHours
	err := r.db.WithContext(ctx).
		Where("barber_id = ? AND day_of_week = ?", barberID, dayOfWeek).
		First(&wh).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if !wh.IsAvailable {
		return &domain.WorkingWindow{DayOfWeek: dayOfWeek, Available: false}, nil
	}

	start, err := domain.ParseClock(wh.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := domain.ParseClock(wh.EndTime)
	if err != nil {
		return nil, err
	}

	return &domain.WorkingWindow{
		DayOfWeek:    dayOfWeek,
		StartMinutes: start,
		EndMinutes:   end,
		Available:    true,
	}, nil
}

type bookedRow struct {
	AppointmentTime string
	Duration        int
}

func (r *AppointmentGormRepository) ListBookedIntervals(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]domain.BookedInterval, error) {

	var rows []bookedRow
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("appointments.appointment_time", "services.duration").
		Joins("JOIN services ON services.id = appointments.service_id").
		Where(
			"appointments.barber_id = ? AND appointments.appointment_date = ? AND appointments.status NOT IN ?",
			barberID,
			date.Format("2006-01-02"),
			[]string{string(domain.StatusCancelled), string(domain.StatusNoShow)},
		).
		Order("appointments.appointment_time ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	intervals := make([]domain.BookedInterval, 0, len(rows))
	for _, row := range rows {
		start, err := domain.ParseClock(row.AppointmentTime)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, domain.BookedInterval{
			StartMinutes:    start,
			DurationMinutes: row.Duration,
		})
	}

	return intervals, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateAppointment locks the barber's day, re-checks for overlap and
// inserts, all in one transaction. Availability reads stay lock-free; a
// stale read surfaces here as time_conflict.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	durationMinutes int,
) error {

	newStart, err := domain.ParseClock(ap.AppointmentTime)
	if err != nil {
		return httperr.ErrBusiness("invalid_time")
	}
	newEnd := newStart + durationMinutes

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var existing []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barber_id = ? AND appointment_date = ? AND status NOT IN ?",
				ap.BarberID,
				ap.AppointmentDate.Format("2006-01-02"),
				[]string{string(domain.StatusCancelled), string(domain.StatusNoShow)},
			).
			Find(&existing).Error; err != nil {
			return err
		}

		if len(existing) > 0 {
			serviceIDs := make([]uint, 0, len(existing))
			for _, e := range existing {
				serviceIDs = append(serviceIDs, e.ServiceID)
			}

			var services []models.Service
			if err := tx.Where("id IN ?", serviceIDs).Find(&services).Error; err != nil {
				return err
			}
			durations := make(map[uint]int, len(services))
			for _, s := range services {
				durations[s.ID] = s.DurationMin
			}

			for _, e := range existing {
				bStart, err := domain.ParseClock(e.AppointmentTime)
				if err != nil {
					return err
				}
				bEnd := bStart + durations[e.ServiceID]

				if newStart < bEnd && newEnd > bStart {
					return httperr.ErrBusiness("time_conflict")
				}
			}
		}

		return tx.Create(ap).Error
	})
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentForBarber(
	ctx context.Context,
	appointmentID uint,
	barberID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ?", appointmentID, barberID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointmentForCustomer(
	ctx context.Context,
	appointmentID uint,
	customerID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", appointmentID, customerID).
		First(&ap).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Barber").
		Preload("Barber.User").
		Where("customer_id = ?", customerID).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
