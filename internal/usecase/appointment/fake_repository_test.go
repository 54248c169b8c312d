package appointment

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/haircut-workshop-team/Haircut-Workshop/internal/domain/appointment"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/httperr"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/models"
)

// fakeRepo is an in-memory Repository for usecase tests.
type fakeRepo struct {
	services     map[uint]*models.Service
	barbers      map[uint]*models.Barber
	windows      map[int]*domain.WorkingWindow
	booked       []domain.BookedInterval
	appointments map[uint]*models.Appointment
	nextID       uint

	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services:     map[uint]*models.Service{},
		barbers:      map[uint]*models.Barber{},
		windows:      map[int]*domain.WorkingWindow{},
		appointments: map[uint]*models.Appointment{},
		nextID:       1,
	}
}

func (f *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return svc, nil
}

func (f *fakeRepo) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	b, ok := f.barbers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (f *fakeRepo) GetWorkingWindow(_ context.Context, _ uint, dayOfWeek int) (*domain.WorkingWindow, error) {
	return f.windows[dayOfWeek], nil
}

func (f *fakeRepo) ListBookedIntervals(_ context.Context, _ uint, _ time.Time) ([]domain.BookedInterval, error) {
	return f.booked, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment, durationMinutes int) error {
	if f.createErr != nil {
		return f.createErr
	}

	newStart, err := domain.ParseClock(ap.AppointmentTime)
	if err != nil {
		return err
	}
	newEnd := newStart + durationMinutes
	for _, b := range f.booked {
		if newStart < b.StartMinutes+b.DurationMinutes && newEnd > b.StartMinutes {
			return httperr.ErrBusiness("time_conflict")
		}
	}

	ap.ID = f.nextID
	f.nextID++
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeRepo) GetAppointmentForBarber(_ context.Context, appointmentID, barberID uint) (*models.Appointment, error) {
	ap, ok := f.appointments[appointmentID]
	if !ok || ap.BarberID != barberID {
		return nil, gorm.ErrRecordNotFound
	}
	return ap, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeRepo) DeleteAppointmentForCustomer(_ context.Context, appointmentID, customerID uint) (*models.Appointment, error) {
	ap, ok := f.appointments[appointmentID]
	if !ok || ap.CustomerID != customerID {
		return nil, nil
	}
	delete(f.appointments, appointmentID)
	return ap, nil
}

func (f *fakeRepo) ListAppointmentsForCustomer(_ context.Context, customerID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.CustomerID == customerID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
