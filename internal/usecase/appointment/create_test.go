package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/haircut-workshop-team/Haircut-Workshop/internal/domain/appointment"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/httperr"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/models"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/timezone"
)

func setupCreateRepo(date time.Time) *fakeRepo {
	repo := newFakeRepo()
	repo.services[1] = &models.Service{ID: 1, DurationMin: 30}
	repo.barbers[1] = &models.Barber{ID: 1, UserID: 10}
	repo.windows[int(date.Weekday())] = &domain.WorkingWindow{
		StartMinutes: 540,
		EndMinutes:   1020,
		Available:    true,
	}
	return repo
}

func TestCreateAppointment_Success(t *testing.T) {
	date := futureDate(3)
	repo := setupCreateRepo(date)
	uc := NewCreateAppointment(repo, nullDispatcher())

	ap, err := uc.Execute(context.Background(), CreateInput{
		CustomerID: 5,
		BarberID:   1,
		ServiceID:  1,
		Date:       date.Format("2006-01-02"),
		Time:       "10:00",
		Notes:      "first visit",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.Status != string(domain.StatusPending) {
		t.Errorf("expected pending status, got %s", ap.Status)
	}
	if ap.AppointmentTime != "10:00:00" {
		t.Errorf("expected canonical time 10:00:00, got %s", ap.AppointmentTime)
	}
	if ap.ID == 0 {
		t.Error("expected assigned ID")
	}
}

func TestCreateAppointment_InvalidInputs(t *testing.T) {
	date := futureDate(3)

	tests := []struct {
		name     string
		in       CreateInput
		wantCode string
	}{
		{
			"bad date",
			CreateInput{CustomerID: 5, BarberID: 1, ServiceID: 1, Date: "10-03-2026", Time: "10:00"},
			"invalid_date",
		},
		{
			"bad time",
			CreateInput{CustomerID: 5, BarberID: 1, ServiceID: 1, Date: date.Format("2006-01-02"), Time: "ten"},
			"invalid_time",
		},
		{
			"unknown service",
			CreateInput{CustomerID: 5, BarberID: 1, ServiceID: 42, Date: date.Format("2006-01-02"), Time: "10:00"},
			"service_not_found",
		},
		{
			"unknown barber",
			CreateInput{CustomerID: 5, BarberID: 42, ServiceID: 1, Date: date.Format("2006-01-02"), Time: "10:00"},
			"barber_not_found",
		},
		{
			"before opening",
			CreateInput{CustomerID: 5, BarberID: 1, ServiceID: 1, Date: date.Format("2006-01-02"), Time: "08:00"},
			"outside_working_hours",
		},
		{
			"over closing",
			CreateInput{CustomerID: 5, BarberID: 1, ServiceID: 1, Date: date.Format("2006-01-02"), Time: "16:45"},
			"outside_working_hours",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := setupCreateRepo(date)
			uc := NewCreateAppointment(repo, nullDispatcher())

			_, err := uc.Execute(context.Background(), tt.in)
			if !httperr.IsBusiness(err, tt.wantCode) {
				t.Errorf("expected %s, got %v", tt.wantCode, err)
			}
		})
	}
}

func TestCreateAppointment_PastDateRejected(t *testing.T) {
	date := futureDate(-1)
	repo := setupCreateRepo(date)
	uc := NewCreateAppointment(repo, nullDispatcher())

	_, err := uc.Execute(context.Background(), CreateInput{
		CustomerID: 5, BarberID: 1, ServiceID: 1,
		Date: date.Format("2006-01-02"),
		Time: "10:00",
	})

	if !httperr.IsBusiness(err, "time_in_past") {
		t.Fatalf("expected time_in_past, got %v", err)
	}
}

func TestCreateAppointment_PastTimeTodayRejected(t *testing.T) {
	now := timezone.Now()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, timezone.Location())

	repo := newFakeRepo()
	repo.services[1] = &models.Service{ID: 1, DurationMin: 30}
	repo.barbers[1] = &models.Barber{ID: 1, UserID: 10}
	repo.windows[int(date.Weekday())] = &domain.WorkingWindow{
		StartMinutes: 0,
		EndMinutes:   24 * 60,
		Available:    true,
	}

	uc := NewCreateAppointment(repo, nullDispatcher())
	uc.now = func() time.Time {
		return time.Date(date.Year(), date.Month(), date.Day(), 14, 5, 0, 0, timezone.Location())
	}

	_, err := uc.Execute(context.Background(), CreateInput{
		CustomerID: 5, BarberID: 1, ServiceID: 1,
		Date: date.Format("2006-01-02"),
		Time: "14:00",
	})

	if !httperr.IsBusiness(err, "time_in_past") {
		t.Fatalf("expected time_in_past, got %v", err)
	}
}

func TestCreateAppointment_Conflict(t *testing.T) {
	date := futureDate(3)
	repo := setupCreateRepo(date)
	repo.booked = []domain.BookedInterval{{StartMinutes: 600, DurationMinutes: 30}}

	uc := NewCreateAppointment(repo, nullDispatcher())

	_, err := uc.Execute(context.Background(), CreateInput{
		CustomerID: 5, BarberID: 1, ServiceID: 1,
		Date: date.Format("2006-01-02"),
		Time: "10:00",
	})

	if !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("expected time_conflict, got %v", err)
	}
}
