package booking

import (
	"context"
	"time"

	domain "github.com/nareguabarber/naregua-api/internal/domain/booking"
	"github.com/nareguabarber/naregua-api/internal/events"
	"github.com/nareguabarber/naregua-api/internal/models"
	"github.com/nareguabarber/naregua-api/internal/timezone"
)

type CompleteBooking struct {
	repo   domain.Repository
	events *events.Dispatcher

	Now func() time.Time
}

func NewCompleteBooking(
	repo domain.Repository,
	dispatcher *events.Dispatcher,
) *CompleteBooking {
	return &CompleteBooking{
		repo:   repo,
		events: dispatcher,
		Now:    timezone.Now,
	}
}

// Execute conclui o atendimento. Status e ponto de fidelidade são
// persistidos na mesma transação: a transição confere o status anterior,
// então o ponto sai no máximo uma vez por reserva, e um erro na escrita
// deixa a reserva confirmada para nova tentativa.
func (uc *CompleteBooking) Execute(
	ctx context.Context,
	barberID uint,
	appointmentID uint,
	productsRevenue float64,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap.BarberID != barberID {
		return nil, domain.ErrNotFound("appointment_not_found")
	}

	oldStatus := ap.Status
	if err := domain.Complete(ap, uc.Now(), productsRevenue); err != nil {
		return nil, err
	}

	if err := uc.repo.CompleteAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.events.Dispatch(events.StatusChanged(*ap, oldStatus))

	return ap, nil
}
