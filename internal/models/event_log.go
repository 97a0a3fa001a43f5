package models

import "time"

type EventLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EventID string `gorm:"size:36;uniqueIndex" json:"event_id"`
	Kind    string `gorm:"size:50;not null" json:"kind"`

	AppointmentUUID string `gorm:"size:36;index" json:"appointment_uuid"`
	BarberID        uint   `json:"barber_id"`
	OldStatus       string `gorm:"size:20" json:"old_status"`
	NewStatus       string `gorm:"size:20" json:"new_status"`

	CreatedAt time.Time `json:"created_at"`
}
