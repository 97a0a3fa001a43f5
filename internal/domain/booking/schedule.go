package booking

import (
	"time"

	"github.com/nareguabarber/naregua-api/internal/models"
)

// Janela de atendimento efetiva de um barbeiro
type Schedule struct {
	OpenTime        string
	CloseTime       string
	SlotIntervalMin int
	MonthlyGoal     float64
}

// EffectiveSchedule resolve a agenda do barbeiro: override pessoal quando
// preenchido, senão a configuração global
func EffectiveSchedule(barber *models.Barber, cfg *models.ScheduleConfig) Schedule {
	s := Schedule{
		OpenTime:        cfg.OpenTime,
		CloseTime:       cfg.CloseTime,
		SlotIntervalMin: cfg.SlotIntervalMin,
		MonthlyGoal:     cfg.MonthlyGoal,
	}

	if barber == nil {
		return s
	}

	if barber.OpenTime != "" && barber.CloseTime != "" {
		s.OpenTime = barber.OpenTime
		s.CloseTime = barber.CloseTime
	}
	if barber.SlotIntervalMin > 0 {
		s.SlotIntervalMin = barber.SlotIntervalMin
	}
	if barber.MonthlyGoal > 0 {
		s.MonthlyGoal = barber.MonthlyGoal
	}

	return s
}

// ParseHM ancora um "15:04" no dia de referência
func ParseHM(hm string, day time.Time) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, ErrValidation("invalid_time")
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	), nil
}
