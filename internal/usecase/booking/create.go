package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/nareguabarber/naregua-api/internal/domain/booking"
	"github.com/nareguabarber/naregua-api/internal/domain/loyalty"
	"github.com/nareguabarber/naregua-api/internal/events"
	"github.com/nareguabarber/naregua-api/internal/models"
	"github.com/nareguabarber/naregua-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerName  string
	CustomerPhone string

	ServiceID uint
	BarberID  uint

	Date string // YYYY-MM-DD
	Time string // HH:mm

	UseLoyaltyPoints bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo    domain.Repository
	loyalty loyalty.Repository
	events  *events.Dispatcher

	// relógio injetável para os testes
	Now func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	loyaltyRepo loyalty.Repository,
	dispatcher *events.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:    repo,
		loyalty: loyaltyRepo,
		events:  dispatcher,
		Now:     timezone.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Campos obrigatórios
	// --------------------------------------------------
	if in.CustomerName == "" || in.CustomerPhone == "" ||
		in.ServiceID == 0 || in.BarberID == 0 ||
		in.Date == "" || in.Time == "" {
		return nil, domain.ErrValidation("missing_fields")
	}

	now := uc.Now()
	loc := now.Location()

	start, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.Time, loc)
	if err != nil {
		return nil, domain.ErrValidation("invalid_date_or_time")
	}

	if start.Weekday() == time.Sunday {
		return nil, domain.ErrValidation("sunday_not_bookable")
	}

	// --------------------------------------------------
	// 2️⃣ Barbeiro e serviço
	// --------------------------------------------------
	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if !barber.Active {
		return nil, domain.ErrValidation("barber_inactive")
	}

	// elegibilidade de agenda é sempre contra os serviços atribuídos,
	// inclusive para admins
	if !barberOffers(barber, in.ServiceID) {
		return nil, domain.ErrValidation("service_not_offered")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !service.Active {
		return nil, domain.ErrValidation("service_inactive")
	}

	// --------------------------------------------------
	// 3️⃣ Slot ainda disponível?
	// --------------------------------------------------
	cfg, err := uc.repo.GetScheduleConfig(ctx)
	if err != nil {
		return nil, err
	}
	schedule := domain.EffectiveSchedule(barber, cfg)

	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	existing, err := uc.repo.ListAppointmentsForDay(
		ctx,
		in.BarberID,
		dayStart,
		dayStart.Add(24*time.Hour),
	)
	if err != nil {
		return nil, err
	}

	ok, err := domain.SlotIsBookable(start, domain.AvailabilityInput{
		Day:      dayStart,
		BarberID: in.BarberID,
		Schedule: schedule,
		Existing: existing,
		Now:      now,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrSlotConflict("slot_unavailable")
	}

	// --------------------------------------------------
	// 4️⃣ Resgate de fidelidade (revalidado no servidor)
	// --------------------------------------------------
	redeemPoints := 0
	discount := 0.0
	if in.UseLoyaltyPoints {
		profile, err := uc.loyalty.GetOrCreateProfile(ctx, in.CustomerPhone)
		if err != nil {
			return nil, err
		}
		if !loyalty.IsRedemptionEligible(profile) {
			return nil, domain.ErrValidation("insufficient_points")
		}
		redeemPoints = loyalty.RedemptionCost
		discount = loyalty.DiscountFor(service.Price)
	}

	// --------------------------------------------------
	// 5️⃣ Criação com snapshot do serviço
	// --------------------------------------------------
	ap := &models.Appointment{
		UUID:          uuid.NewString(),
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,

		ServiceID: service.ID,
		BarberID:  barber.ID,

		ServiceName:        service.Name,
		ServicePrice:       service.Price,
		ServiceDurationMin: service.DurationMin,

		StartTime: start,
		Status:    string(domain.InitialStatus()),

		UsedLoyaltyPoints: in.UseLoyaltyPoints,
		DiscountApplied:   discount,
	}

	// conflito e débito de pontos são reavaliados dentro da transação
	if err := uc.repo.CreateAppointment(ctx, ap, redeemPoints); err != nil {
		return nil, err
	}

	uc.events.Dispatch(events.BookingCreated(*ap))

	return ap, nil
}

func barberOffers(barber *models.Barber, serviceID uint) bool {
	for _, s := range barber.AssignedServices {
		if s.ID == serviceID {
			return true
		}
	}
	return false
}
