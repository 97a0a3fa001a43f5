package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/nareguabarber/naregua-api/internal/models"
)

type Kind string

const (
	KindBookingCreated Kind = "booking_created"
	KindStatusChanged  Kind = "status_changed"
)

type Event struct {
	ID        string             `json:"id"`
	Kind      Kind               `json:"kind"`
	OldStatus string             `json:"old_status,omitempty"`
	At        time.Time          `json:"at"`
	Booking   models.Appointment `json:"booking"`
}

func BookingCreated(ap models.Appointment) Event {
	return Event{
		ID:      uuid.NewString(),
		Kind:    KindBookingCreated,
		At:      time.Now(),
		Booking: ap,
	}
}

func StatusChanged(ap models.Appointment, oldStatus string) Event {
	return Event{
		ID:        uuid.NewString(),
		Kind:      KindStatusChanged,
		OldStatus: oldStatus,
		At:        time.Now(),
		Booking:   ap,
	}
}
