package models

import "time"

// Configuração global de agenda (linha única)
type ScheduleConfig struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OpenTime        string  `gorm:"size:5;default:'09:00'" json:"open_time"`
	CloseTime       string  `gorm:"size:5;default:'19:00'" json:"close_time"`
	SlotIntervalMin int     `gorm:"default:60" json:"slot_interval_min"`
	MonthlyGoal     float64 `gorm:"default:5000" json:"monthly_goal"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
