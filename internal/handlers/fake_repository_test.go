package handlers

import (
	"context"
	"errors"
	"time"

	domain "github.com/haircut-workshop-team/Haircut-Workshop/internal/domain/appointment"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/models"
)

// fakeRepo backs handler tests that never reach a database. Only the
// listing path is populated; everything else reports missing data.
type fakeRepo struct {
	appointmentsByCustomer map[uint][]models.Appointment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		appointmentsByCustomer: make(map[uint][]models.Appointment),
	}
}

func (f *fakeRepo) GetService(ctx context.Context, id uint) (*models.Service, error) {
	return nil, errors.New("not found")
}

func (f *fakeRepo) GetBarber(ctx context.Context, id uint) (*models.Barber, error) {
	return nil, errors.New("not found")
}

func (f *fakeRepo) GetWorkingWindow(ctx context.Context, barberID uint, dayOfWeek int) (*domain.WorkingWindow, error) {
	return nil, nil
}

func (f *fakeRepo) ListBookedIntervals(ctx context.Context, barberID uint, date time.Time) ([]domain.BookedInterval, error) {
	return nil, nil
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment, durationMinutes int) error {
	return errors.New("not implemented")
}

func (f *fakeRepo) GetAppointmentForBarber(ctx context.Context, appointmentID, barberID uint) (*models.Appointment, error) {
	return nil, errors.New("not found")
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return errors.New("not implemented")
}

func (f *fakeRepo) DeleteAppointmentForCustomer(ctx context.Context, appointmentID, customerID uint) (*models.Appointment, error) {
	return nil, nil
}

func (f *fakeRepo) ListAppointmentsForCustomer(ctx context.Context, customerID uint) ([]models.Appointment, error) {
	return f.appointmentsByCustomer[customerID], nil
}

var _ domain.Repository = (*fakeRepo)(nil)
