package booking

import (
	"context"
	"time"

	domain "github.com/nareguabarber/naregua-api/internal/domain/booking"
	"github.com/nareguabarber/naregua-api/internal/events"
	"github.com/nareguabarber/naregua-api/internal/models"
	"github.com/nareguabarber/naregua-api/internal/timezone"
)

type CancelBooking struct {
	repo   domain.Repository
	events *events.Dispatcher

	Now func() time.Time
}

func NewCancelBooking(
	repo domain.Repository,
	dispatcher *events.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:   repo,
		events: dispatcher,
		Now:    timezone.Now,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	barberID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap.BarberID != barberID {
		return nil, domain.ErrNotFound("appointment_not_found")
	}

	oldStatus := ap.Status

	// pontos já resgatados não são devolvidos
	if err := domain.Cancel(ap, uc.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.events.Dispatch(events.StatusChanged(*ap, oldStatus))

	return ap, nil
}
