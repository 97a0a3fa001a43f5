package booking

import (
	"context"
	"testing"
	"time"

	domain "github.com/nareguabarber/naregua-api/internal/domain/booking"
	"github.com/nareguabarber/naregua-api/internal/models"
)

func seedSlotAppointment(id uint) *models.Appointment {
	return &models.Appointment{
		ID:                 id,
		UUID:               "seed-uuid",
		CustomerName:       "Carlos",
		CustomerPhone:      "912345678",
		BarberID:           1,
		ServiceName:        "Corte + Barba",
		ServicePrice:       35.00,
		ServiceDurationMin: 45,
		StartTime:          time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		Status:             string(domain.StatusPending),
	}
}

func newAvailabilityFixture(t *testing.T) (*GetAvailability, *fakeRepo) {
	t.Helper()

	// mesmo catálogo do fixture de criação
	_, repo, _ := newFixture(t)

	avail := NewGetAvailability(repo)
	avail.Now = func() time.Time { return testNow }

	return avail, repo
}

func TestGetAvailability_EmptyDay(t *testing.T) {
	avail, _ := newAvailabilityFixture(t)

	slots, err := avail.Execute(context.Background(), 1, 1, "2026-03-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 09:00..18:00 na grade global de 60min
	if len(slots) != 10 {
		t.Fatalf("slots = %d, want 10", len(slots))
	}
	// Now = 08:00: tudo no futuro
	for _, s := range slots {
		if !s.Available {
			t.Errorf("slot %s should be available", s.Time)
		}
	}
}

func TestGetAvailability_ReflectsBookings(t *testing.T) {
	avail, repo := newAvailabilityFixture(t)

	// Corte + Barba (45min) às 10:00 via o mesmo repositório
	repo.mu.Lock()
	id := repo.nextID
	repo.nextID++
	repo.appointments[id] = seedSlotAppointment(id)
	repo.mu.Unlock()

	slots, err := avail.Execute(context.Background(), 1, 1, "2026-03-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, s := range slots {
		switch s.Time {
		case "10:00":
			if s.Available {
				t.Error("10:00 should be blocked")
			}
		case "11:00":
			if !s.Available {
				t.Error("11:00 should stay available (45min não bloqueia a grade seguinte)")
			}
		}
	}
}

func TestGetAvailability_Sunday(t *testing.T) {
	avail, _ := newAvailabilityFixture(t)

	slots, err := avail.Execute(context.Background(), 1, 1, "2026-03-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("sunday must have no slots, got %d", len(slots))
	}
}

func TestGetAvailability_InactiveBarber(t *testing.T) {
	avail, _ := newAvailabilityFixture(t)

	slots, err := avail.Execute(context.Background(), 2, 1, "2026-03-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("inactive barber must have no slots, got %d", len(slots))
	}
}

func TestGetAvailability_ServiceNotOffered(t *testing.T) {
	avail, _ := newAvailabilityFixture(t)

	_, err := avail.Execute(context.Background(), 1, 2, "2026-03-02")
	if !domain.IsCode(err, "service_not_offered") {
		t.Fatalf("expected service_not_offered, got %v", err)
	}
}

func TestGetAvailability_InvalidDate(t *testing.T) {
	avail, _ := newAvailabilityFixture(t)

	_, err := avail.Execute(context.Background(), 1, 1, "03-02-2026")
	if !domain.IsCode(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}
}
