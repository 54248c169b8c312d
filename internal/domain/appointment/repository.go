package appointment

import (
	"context"
	"time"

	"github.com/haircut-workshop-team/Haircut-Workshop/internal/models"
)

type Repository interface {
	// -------- Service catalog --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Barber --------
	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	// -------- Availability --------

	// GetWorkingWindow returns nil (no error) when the barber has no
	// schedule row for the weekday.
	GetWorkingWindow(
		ctx context.Context,
		barberID uint,
		dayOfWeek int,
	) (*WorkingWindow, error)

	// ListBookedIntervals excludes cancelled and no-show appointments.
	ListBookedIntervals(
		ctx context.Context,
		barberID uint,
		date time.Time,
	) ([]BookedInterval, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointment re-checks for overlapping bookings and inserts
	// inside one transaction.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
		durationMinutes int,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForBarber(
		ctx context.Context,
		appointmentID uint,
		barberID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// DeleteAppointmentForCustomer returns the removed appointment, or
	// nil when it does not exist or belongs to someone else.
	DeleteAppointmentForCustomer(
		ctx context.Context,
		appointmentID uint,
		customerID uint,
	) (*models.Appointment, error)

	// -------- Listing --------
	ListAppointmentsForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Appointment, error)
}
