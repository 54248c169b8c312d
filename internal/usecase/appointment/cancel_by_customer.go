package appointment

import (
	"context"

	"github.com/haircut-workshop-team/Haircut-Workshop/internal/audit"
	domain "github.com/haircut-workshop-team/Haircut-Workshop/internal/domain/appointment"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/httperr"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/models"
)

type CancelByCustomer struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelByCustomer(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *CancelByCustomer {
	return &CancelByCustomer{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// Execute removes a customer's own appointment. The row is deleted rather
// than flagged cancelled; scoping the delete to the customer doubles as the
// ownership check.
func (uc *CancelByCustomer) Execute(
	ctx context.Context,
	appointmentID uint,
	customerID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.DeleteAppointmentForCustomer(ctx, appointmentID, customerID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &customerID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
