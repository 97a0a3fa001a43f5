package booking

import (
	"context"
	"time"

	domain "github.com/nareguabarber/naregua-api/internal/domain/booking"
	"github.com/nareguabarber/naregua-api/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository

	Now func() time.Time
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{
		repo: repo,
		Now:  timezone.Now,
	}
}

// Execute devolve a grade do dia. Recalculada a cada consulta, sem cache;
// o resultado é só uma leitura — a criação revalida o slot na escrita.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	barberID uint,
	serviceID uint,
	dateStr string,
) ([]domain.Slot, error) {

	now := uc.Now()
	loc := now.Location()

	day, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return nil, domain.ErrValidation("invalid_date")
	}

	if day.Weekday() == time.Sunday {
		return []domain.Slot{}, nil
	}

	barber, err := uc.repo.GetBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}
	if !barber.Active {
		return []domain.Slot{}, nil
	}
	if !barberOffers(barber, serviceID) {
		return nil, domain.ErrValidation("service_not_offered")
	}

	if _, err := uc.repo.GetService(ctx, serviceID); err != nil {
		return nil, err
	}

	cfg, err := uc.repo.GetScheduleConfig(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.ListAppointmentsForDay(
		ctx,
		barberID,
		day,
		day.Add(24*time.Hour),
	)
	if err != nil {
		return nil, err
	}

	return domain.ComputeAvailableSlots(domain.AvailabilityInput{
		Day:      day,
		BarberID: barberID,
		Schedule: domain.EffectiveSchedule(barber, cfg),
		Existing: existing,
		Now:      now,
	})
}
