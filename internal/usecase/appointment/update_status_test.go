package appointment

import (
	"context"
	"testing"

	domain "github.com/haircut-workshop-team/Haircut-Workshop/internal/domain/appointment"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/httperr"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/models"
)

func TestUpdateStatus_ConfirmPending(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[1] = &models.Appointment{
		ID: 1, BarberID: 2, CustomerID: 5,
		Status: string(domain.StatusPending),
	}

	uc := NewUpdateStatus(repo, nullDispatcher())

	ap, err := uc.Execute(context.Background(), 2, 1, domain.StatusConfirmed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(domain.StatusConfirmed) {
		t.Errorf("expected confirmed, got %s", ap.Status)
	}
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[1] = &models.Appointment{
		ID: 1, BarberID: 2,
		Status: string(domain.StatusCompleted),
	}

	uc := NewUpdateStatus(repo, nullDispatcher())

	_, err := uc.Execute(context.Background(), 2, 1, domain.StatusCancelled)
	if !httperr.IsBusiness(err, "invalid_status_transition") {
		t.Fatalf("expected invalid_status_transition, got %v", err)
	}
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpdateStatus(repo, nullDispatcher())

	_, err := uc.Execute(context.Background(), 2, 1, domain.Status("archived"))
	if !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}
}

func TestUpdateStatus_WrongBarber(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[1] = &models.Appointment{
		ID: 1, BarberID: 2,
		Status: string(domain.StatusPending),
	}

	uc := NewUpdateStatus(repo, nullDispatcher())

	_, err := uc.Execute(context.Background(), 3, 1, domain.StatusConfirmed)
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

func TestCancelByCustomer(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[1] = &models.Appointment{ID: 1, BarberID: 2, CustomerID: 5}

	uc := NewCancelByCustomer(repo, nullDispatcher())

	// Someone else's appointment.
	if _, err := uc.Execute(context.Background(), 1, 6); !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found for wrong owner, got %v", err)
	}

	// Owner cancels.
	ap, err := uc.Execute(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.ID != 1 {
		t.Errorf("expected deleted appointment 1, got %d", ap.ID)
	}
	if _, ok := repo.appointments[1]; ok {
		t.Error("appointment still present after cancellation")
	}
}
