package booking

import (
	"context"
	"sync"
	"time"

	domain "github.com/nareguabarber/naregua-api/internal/domain/booking"
	"github.com/nareguabarber/naregua-api/internal/domain/loyalty"
	"github.com/nareguabarber/naregua-api/internal/models"
)

// ======================================================
// Fakes em memória; o mutex emula a seção crítica que o
// banco garante com lock na criação.
// ======================================================

type fakeLoyalty struct {
	mu       sync.Mutex
	profiles map[string]*models.LoyaltyProfile
}

func newFakeLoyalty() *fakeLoyalty {
	return &fakeLoyalty{profiles: map[string]*models.LoyaltyProfile{}}
}

func (f *fakeLoyalty) getLocked(phone string) *models.LoyaltyProfile {
	p, ok := f.profiles[phone]
	if !ok {
		p = &models.LoyaltyProfile{ID: uint(len(f.profiles) + 1), Phone: phone}
		f.profiles[phone] = p
	}
	return p
}

func (f *fakeLoyalty) GetOrCreateProfile(_ context.Context, phone string) (*models.LoyaltyProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.getLocked(phone)
	cp := *p
	return &cp, nil
}

func (f *fakeLoyalty) SaveProfile(_ context.Context, p *models.LoyaltyProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	f.profiles[p.Phone] = &cp
	return nil
}

func (f *fakeLoyalty) AdjustPoints(_ context.Context, phone string, delta int, countsAsVisit bool) (*models.LoyaltyProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.getLocked(phone)
	loyalty.ApplyAdjustment(p, delta, countsAsVisit)
	cp := *p
	return &cp, nil
}

func (f *fakeLoyalty) points(phone string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getLocked(phone).Points
}

func (f *fakeLoyalty) visits(phone string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getLocked(phone).TotalAppointments
}

var _ loyalty.Repository = (*fakeLoyalty)(nil)

type fakeRepo struct {
	mu sync.Mutex

	services map[uint]*models.Service
	barbers  map[uint]*models.Barber
	cfg      *models.ScheduleConfig

	appointments map[uint]*models.Appointment
	nextID       uint

	loyalty *fakeLoyalty

	// erro injetado uma única vez na próxima conclusão
	completeErr error
}

func newFakeRepo(loyaltyRepo *fakeLoyalty) *fakeRepo {
	return &fakeRepo{
		services:     map[uint]*models.Service{},
		barbers:      map[uint]*models.Barber{},
		appointments: map[uint]*models.Appointment{},
		cfg: &models.ScheduleConfig{
			OpenTime:        "09:00",
			CloseTime:       "19:00",
			SlotIntervalMin: 60,
			MonthlyGoal:     5000,
		},
		nextID:  1,
		loyalty: loyaltyRepo,
	}
}

func (f *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.services[id]
	if !ok {
		return nil, domain.ErrNotFound("service_not_found")
	}
	cp := *s
	return &cp, nil
}

func (f *fakeRepo) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.barbers[id]
	if !ok {
		return nil, domain.ErrNotFound("barber_not_found")
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepo) GetScheduleConfig(_ context.Context) (*models.ScheduleConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *f.cfg
	return &cp, nil
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment, redeemPoints int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	// mesma janela do SQL: start <= candidato < start+duração
	for _, ex := range f.appointments {
		if ex.BarberID != ap.BarberID || domain.Status(ex.Status) == domain.StatusCancelled {
			continue
		}
		dur := ex.ServiceDurationMin
		if dur <= 0 {
			dur = 30
		}
		end := ex.StartTime.Add(time.Duration(dur) * time.Minute)
		if !ap.StartTime.Before(ex.StartTime) && ap.StartTime.Before(end) {
			return domain.ErrSlotConflict("slot_conflict")
		}
	}

	if redeemPoints > 0 {
		f.loyalty.mu.Lock()
		p := f.loyalty.getLocked(ap.CustomerPhone)
		if !loyalty.IsRedemptionEligible(p) {
			f.loyalty.mu.Unlock()
			return domain.ErrValidation("insufficient_points")
		}
		loyalty.ApplyAdjustment(p, -redeemPoints, false)
		f.loyalty.mu.Unlock()
	}

	ap.ID = f.nextID
	f.nextID++
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ap, ok := f.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound("appointment_not_found")
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) CompleteAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	// transação: erro = nenhum efeito persiste
	if f.completeErr != nil {
		err := f.completeErr
		f.completeErr = nil
		return err
	}

	cp := *ap
	f.appointments[ap.ID] = &cp

	f.loyalty.mu.Lock()
	p := f.loyalty.getLocked(ap.CustomerPhone)
	loyalty.ApplyAdjustment(p, 1, true)
	f.loyalty.mu.Unlock()

	return nil
}

func (f *fakeRepo) ListAppointmentsForDay(_ context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID != barberID || domain.Status(ap.Status) == domain.StatusCancelled {
			continue
		}
		if ap.StartTime.Before(start) || !ap.StartTime.Before(end) {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(_ context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID != barberID {
			continue
		}
		if ap.StartTime.Before(start) || !ap.StartTime.Before(end) {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsByPhone(_ context.Context, phone string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.CustomerPhone == phone {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListCompletedAppointments(_ context.Context, since time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, ap := range f.appointments {
		if domain.Status(ap.Status) == domain.StatusCompleted && !ap.StartTime.Before(since) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
