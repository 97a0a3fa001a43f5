package models

import "time"

// Índice parcial (barber_id, start_time) WHERE status <> 'cancelled':
// garante no banco que um slot exato nunca carrega duas reservas vivas,
// mesmo que a seção crítica da criação seja contornada.
const ActiveSlotIndex = "uidx_appointments_active_slot"

type Appointment struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	UUID string `gorm:"size:36;uniqueIndex;not null" json:"uuid"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20;not null;index" json:"customer_phone"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	BarberID uint   `gorm:"uniqueIndex:uidx_appointments_active_slot,where:status <> 'cancelled'" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	// Snapshot do serviço no momento da reserva; o faturamento histórico
	// não muda quando o catálogo é editado
	ServiceName        string  `gorm:"size:100" json:"service_name"`
	ServicePrice       float64 `json:"service_price"`
	ServiceDurationMin int     `json:"service_duration_min"`

	StartTime time.Time `gorm:"index;uniqueIndex:uidx_appointments_active_slot,where:status <> 'cancelled'" json:"start_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	UsedLoyaltyPoints bool    `gorm:"default:false" json:"used_loyalty_points"`
	DiscountApplied   float64 `json:"discount_applied"`
	ProductsRevenue   float64 `json:"products_revenue"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
