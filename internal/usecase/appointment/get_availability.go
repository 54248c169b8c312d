package appointment

import (
	"context"
	"time"

	domain "github.com/haircut-workshop-team/Haircut-Workshop/internal/domain/appointment"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/httperr"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/timezone"
)

type AvailabilityInput struct {
	BarberID  uint
	ServiceID uint
	Date      time.Time
}

// AvailabilityResult separates "barber does not work that day" from an
// empty-but-workable day, so the client can show the right message.
type AvailabilityResult struct {
	Slots           []string
	BarberAvailable bool
}

type GetAvailability struct {
	repo domain.Repository
	now  func() time.Time
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{
		repo: repo,
		now:  timezone.Now,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*AvailabilityResult, error) {

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if svc.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_service_duration")
	}

	dayOfWeek := int(in.Date.Weekday())

	window, err := uc.repo.GetWorkingWindow(ctx, in.BarberID, dayOfWeek)
	if err != nil {
		return nil, err
	}
	if window == nil || !window.Available {
		return &AvailabilityResult{Slots: []string{}, BarberAvailable: false}, nil
	}

	booked, err := uc.repo.ListBookedIntervals(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	isToday := timezone.SameDate(in.Date, now)

	slots := domain.AvailableSlots(
		window,
		booked,
		svc.DurationMin,
		isToday,
		timezone.MinutesOfDay(now),
	)

	return &AvailabilityResult{Slots: slots, BarberAvailable: true}, nil
}
