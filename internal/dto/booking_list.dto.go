package dto

import (
	"time"

	"github.com/nareguabarber/naregua-api/internal/models"
)

type BookingListDTO struct {
	ID              uint      `json:"id"`
	UUID            string    `json:"uuid"`
	StartTime       time.Time `json:"start_time"`
	Status          string    `json:"status"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone"`
	ServiceName     string    `json:"service_name"`
	ServicePrice    float64   `json:"service_price"`
	DurationMin     int       `json:"duration_min"`
	DiscountApplied float64   `json:"discount_applied"`
	ProductsRevenue float64   `json:"products_revenue"`
}

func ToBookingList(appointments []models.Appointment) []BookingListDTO {
	out := make([]BookingListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, BookingListDTO{
			ID:              ap.ID,
			UUID:            ap.UUID,
			StartTime:       ap.StartTime,
			Status:          ap.Status,
			CustomerName:    ap.CustomerName,
			CustomerPhone:   ap.CustomerPhone,
			ServiceName:     ap.ServiceName,
			ServicePrice:    ap.ServicePrice,
			DurationMin:     ap.ServiceDurationMin,
			DiscountApplied: ap.DiscountApplied,
			ProductsRevenue: ap.ProductsRevenue,
		})
	}
	return out
}
