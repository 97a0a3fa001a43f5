package booking

import "time"

type CalendarDay struct {
	Day          int    `json:"day"`
	Date         string `json:"date"` // YYYY-MM-DD
	IsPast       bool   `json:"is_past"`
	IsSunday     bool   `json:"is_sunday"`
	HasSelection bool   `json:"has_selection"`
}

// MonthDays enumera os dias de um mês para o seletor de datas.
// Domingo nunca abre agenda, independente do horário configurado.
func MonthDays(year int, month time.Month, today time.Time, selected string) []CalendarDay {
	loc := today.Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)

	days := make([]CalendarDay, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, loc)
		dateStr := date.Format("2006-01-02")
		days = append(days, CalendarDay{
			Day:          d,
			Date:         dateStr,
			IsPast:       date.Before(midnight),
			IsSunday:     date.Weekday() == time.Sunday,
			HasSelection: selected != "" && selected == dateStr,
		})
	}

	return days
}
