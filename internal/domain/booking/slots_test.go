package booking

import (
	"testing"
	"time"

	"github.com/nareguabarber/naregua-api/internal/models"
)

func testDay(t *testing.T) time.Time {
	t.Helper()
	// segunda-feira
	return time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
}

func defaultSchedule() Schedule {
	return Schedule{
		OpenTime:        "09:00",
		CloseTime:       "19:00",
		SlotIntervalMin: 60,
	}
}

func slotMap(slots []Slot) map[string]bool {
	m := make(map[string]bool, len(slots))
	for _, s := range slots {
		m[s.Time] = s.Available
	}
	return m
}

func TestComputeAvailableSlots_Grid(t *testing.T) {
	day := testDay(t)

	slots, err := ComputeAvailableSlots(AvailabilityInput{
		Day:      day,
		BarberID: 1,
		Schedule: defaultSchedule(),
		Now:      day, // meia-noite: nada passou ainda
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 09:00 até 18:00 inclusive; 19:00 fica fora (fechamento exclusivo)
	if len(slots) != 10 {
		t.Fatalf("expected 10 slots, got %d", len(slots))
	}
	if slots[0].Time != "09:00" {
		t.Errorf("first slot = %s, want 09:00", slots[0].Time)
	}
	if slots[len(slots)-1].Time != "18:00" {
		t.Errorf("last slot = %s, want 18:00", slots[len(slots)-1].Time)
	}
	for _, s := range slots {
		if !s.Available {
			t.Errorf("slot %s should be available on an empty day", s.Time)
		}
	}
}

func TestComputeAvailableSlots_BusyWindow(t *testing.T) {
	day := testDay(t)

	// corte de 45min às 10:00: cobre só o próprio slot na grade de 60min
	existing := []models.Appointment{
		{
			BarberID:           1,
			Status:             string(StatusConfirmed),
			StartTime:          day.Add(10 * time.Hour),
			ServiceDurationMin: 45,
		},
	}

	slots, err := ComputeAvailableSlots(AvailabilityInput{
		Day:      day,
		BarberID: 1,
		Schedule: defaultSchedule(),
		Existing: existing,
		Now:      day,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := slotMap(slots)
	if m["10:00"] {
		t.Error("10:00 should be blocked by the 45min appointment")
	}
	if !m["09:00"] {
		t.Error("09:00 should stay available")
	}
	if !m["11:00"] {
		t.Error("11:00 should stay available (o atendimento termina 10:45)")
	}
}

func TestComputeAvailableSlots_LongServiceSpansTwoSlots(t *testing.T) {
	day := testDay(t)

	// 90min às 10:00 ocupam 10:00 e 11:00 numa grade de 60min
	existing := []models.Appointment{
		{
			BarberID:           1,
			Status:             string(StatusPending),
			StartTime:          day.Add(10 * time.Hour),
			ServiceDurationMin: 90,
		},
	}

	slots, err := ComputeAvailableSlots(AvailabilityInput{
		Day:      day,
		BarberID: 1,
		Schedule: defaultSchedule(),
		Existing: existing,
		Now:      day,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := slotMap(slots)
	if m["10:00"] || m["11:00"] {
		t.Error("10:00 and 11:00 should both be blocked by the 90min appointment")
	}
	if !m["12:00"] {
		t.Error("12:00 should stay available")
	}
}

func TestComputeAvailableSlots_FallbackDuration(t *testing.T) {
	day := testDay(t)

	// snapshot zerado vale 30min: bloqueia 10:00, libera 11:00
	existing := []models.Appointment{
		{
			BarberID:  1,
			Status:    string(StatusConfirmed),
			StartTime: day.Add(10 * time.Hour),
		},
	}

	slots, err := ComputeAvailableSlots(AvailabilityInput{
		Day:      day,
		BarberID: 1,
		Schedule: defaultSchedule(),
		Existing: existing,
		Now:      day,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := slotMap(slots)
	if m["10:00"] {
		t.Error("10:00 should be blocked by the fallback window")
	}
	if !m["11:00"] {
		t.Error("11:00 should stay available")
	}
}

func TestComputeAvailableSlots_PastSlots(t *testing.T) {
	day := testDay(t)
	now := day.Add(12*time.Hour + 30*time.Minute) // 12:30

	slots, err := ComputeAvailableSlots(AvailabilityInput{
		Day:      day,
		BarberID: 1,
		Schedule: defaultSchedule(),
		Now:      now,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := slotMap(slots)
	for _, hhmm := range []string{"09:00", "10:00", "11:00", "12:00"} {
		if m[hhmm] {
			t.Errorf("%s is in the past and should be unavailable", hhmm)
		}
	}
	if !m["13:00"] {
		t.Error("13:00 should still be available")
	}
}

func TestComputeAvailableSlots_CancelledIgnored(t *testing.T) {
	day := testDay(t)

	existing := []models.Appointment{
		{
			BarberID:           1,
			Status:             string(StatusCancelled),
			StartTime:          day.Add(10 * time.Hour),
			ServiceDurationMin: 60,
		},
		// outro barbeiro não interfere
		{
			BarberID:           2,
			Status:             string(StatusConfirmed),
			StartTime:          day.Add(11 * time.Hour),
			ServiceDurationMin: 60,
		},
	}

	slots, err := ComputeAvailableSlots(AvailabilityInput{
		Day:      day,
		BarberID: 1,
		Schedule: defaultSchedule(),
		Existing: existing,
		Now:      day,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := slotMap(slots)
	if !m["10:00"] {
		t.Error("cancelled appointment should not block 10:00")
	}
	if !m["11:00"] {
		t.Error("another barber's appointment should not block 11:00")
	}
}

func TestComputeAvailableSlots_Deterministic(t *testing.T) {
	day := testDay(t)
	in := AvailabilityInput{
		Day:      day,
		BarberID: 1,
		Schedule: defaultSchedule(),
		Existing: []models.Appointment{
			{
				BarberID:           1,
				Status:             string(StatusConfirmed),
				StartTime:          day.Add(14 * time.Hour),
				ServiceDurationMin: 60,
			},
		},
		Now: day.Add(9 * time.Hour),
	}

	first, err := ComputeAvailableSlots(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ComputeAvailableSlots(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("slot count changed between runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("slot %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestSlotIsBookable(t *testing.T) {
	day := testDay(t)
	in := AvailabilityInput{
		Day:      day,
		BarberID: 1,
		Schedule: defaultSchedule(),
		Existing: []models.Appointment{
			{
				BarberID:           1,
				Status:             string(StatusConfirmed),
				StartTime:          day.Add(10 * time.Hour),
				ServiceDurationMin: 45,
			},
		},
		Now: day,
	}

	cases := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{"free slot", day.Add(11 * time.Hour), true},
		{"occupied slot", day.Add(10 * time.Hour), false},
		{"off grid", day.Add(10*time.Hour + 30*time.Minute), false},
		{"before opening", day.Add(8 * time.Hour), false},
		{"at closing", day.Add(19 * time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SlotIsBookable(tc.start, in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("SlotIsBookable(%s) = %v, want %v",
					tc.start.Format("15:04"), got, tc.want)
			}
		})
	}
}

func TestComputeAvailableSlots_InvalidSchedule(t *testing.T) {
	day := testDay(t)

	_, err := ComputeAvailableSlots(AvailabilityInput{
		Day:      day,
		BarberID: 1,
		Schedule: Schedule{OpenTime: "9am", CloseTime: "19:00", SlotIntervalMin: 60},
		Now:      day,
	})
	if !IsCode(err, "invalid_time") {
		t.Fatalf("expected invalid_time, got %v", err)
	}
}
