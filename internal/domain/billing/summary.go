package billing

import (
	"sort"
	"time"

	"github.com/nareguabarber/naregua-api/internal/domain/booking"
	"github.com/nareguabarber/naregua-api/internal/models"
)

// ===============================
// Escopo de consulta
// ===============================

type Scope struct {
	CallerBarberID uint
	CallerIsAdmin  bool
	// Filtro pedido pelo chamador; vazio = todos. Ignorado para não-admin.
	BarberIDs []uint
}

// allowed aplica a regra de acesso dentro do agregador: quem não é admin
// enxerga apenas a própria agenda, qualquer que seja o filtro pedido.
func (s Scope) allowed(barberID uint) bool {
	if !s.CallerIsAdmin {
		return barberID == s.CallerBarberID
	}
	if len(s.BarberIDs) == 0 {
		return true
	}
	for _, id := range s.BarberIDs {
		if id == barberID {
			return true
		}
	}
	return false
}

// ===============================
// Summary
// ===============================

type DayRevenue struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Value float64 `json:"value"`
}

type ServiceRevenue struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

type Summary struct {
	Daily           float64          `json:"daily"`
	Weekly          float64          `json:"weekly"`
	Monthly         float64          `json:"monthly"`
	ProductsMonthly float64          `json:"products_monthly"`
	Series          []DayRevenue     `json:"series"`
	TopServices     []ServiceRevenue `json:"top_services"`
}

const seriesDays = 15

// revenueOf lê o snapshot gravado na reserva; edições posteriores do
// catálogo não mexem no faturamento histórico.
func revenueOf(ap *models.Appointment) float64 {
	return ap.ServicePrice - ap.DiscountApplied + ap.ProductsRevenue
}

// ComputeSummary projeta o faturamento sobre agendamentos concluídos.
func ComputeSummary(appointments []models.Appointment, scope Scope, asOf time.Time) Summary {
	loc := asOf.Location()
	today := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, loc)

	// semana começa na segunda
	weekStart := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))
	weekEnd := weekStart.AddDate(0, 0, 7)
	monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0)

	summary := Summary{
		Series: make([]DayRevenue, 0, seriesDays),
	}

	seriesIdx := make(map[string]int, seriesDays)
	for i := seriesDays - 1; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		key := d.Format("2006-01-02")
		seriesIdx[key] = len(summary.Series)
		summary.Series = append(summary.Series, DayRevenue{Date: key})
	}

	ranking := map[string]float64{}

	for i := range appointments {
		ap := &appointments[i]
		if booking.Status(ap.Status) != booking.StatusCompleted {
			continue
		}
		if !scope.allowed(ap.BarberID) {
			continue
		}

		rev := revenueOf(ap)
		day := time.Date(
			ap.StartTime.Year(), ap.StartTime.Month(), ap.StartTime.Day(),
			0, 0, 0, 0, loc,
		)

		if day.Equal(today) {
			summary.Daily += rev
		}
		if !day.Before(weekStart) && day.Before(weekEnd) {
			summary.Weekly += rev
		}
		if !day.Before(monthStart) && day.Before(monthEnd) {
			summary.Monthly += rev
			summary.ProductsMonthly += ap.ProductsRevenue
		}

		if idx, ok := seriesIdx[day.Format("2006-01-02")]; ok {
			summary.Series[idx].Value += rev
		}

		name := ap.ServiceName
		if name == "" {
			name = ap.Service.Name
		}
		ranking[name] += rev
	}

	summary.TopServices = topServices(ranking, 3)

	return summary
}

func topServices(ranking map[string]float64, n int) []ServiceRevenue {
	out := make([]ServiceRevenue, 0, len(ranking))
	for name, rev := range ranking {
		out = append(out, ServiceRevenue{Name: name, Revenue: rev})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
