package booking

import (
	"context"

	domain "github.com/nareguabarber/naregua-api/internal/domain/booking"
	"github.com/nareguabarber/naregua-api/internal/events"
	"github.com/nareguabarber/naregua-api/internal/models"
)

type ConfirmBooking struct {
	repo   domain.Repository
	events *events.Dispatcher
}

func NewConfirmBooking(
	repo domain.Repository,
	dispatcher *events.Dispatcher,
) *ConfirmBooking {
	return &ConfirmBooking{
		repo:   repo,
		events: dispatcher,
	}
}

func (uc *ConfirmBooking) Execute(
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
	if err := domain.Confirm(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.events.Dispatch(events.StatusChanged(*ap, oldStatus))

	return ap, nil
}
