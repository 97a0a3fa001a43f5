package events

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nareguabarber/naregua-api/internal/models"
)

// ===============================
// Zap
// ===============================

type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Deliver(ev Event) error {
	s.logger.Info("booking event",
		zap.String("event_id", ev.ID),
		zap.String("kind", string(ev.Kind)),
		zap.String("appointment", ev.Booking.UUID),
		zap.String("status", ev.Booking.Status),
		zap.String("old_status", ev.OldStatus),
	)
	return nil
}

// ===============================
// Redis pub/sub
// ===============================

const (
	ChannelBookings = "naregua:bookings"
	ChannelStatus   = "naregua:status"
)

type RedisSink struct {
	client *redis.Client
}

func NewRedisSink(client *redis.Client) *RedisSink {
	return &RedisSink{client: client}
}

func (s *RedisSink) Deliver(ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	channel := ChannelStatus
	if ev.Kind == KindBookingCreated {
		channel = ChannelBookings
	}

	return s.client.Publish(context.Background(), channel, payload).Err()
}

// ===============================
// Registro em banco
// ===============================

type StoreSink struct {
	db *gorm.DB
}

func NewStoreSink(db *gorm.DB) *StoreSink {
	return &StoreSink{db: db}
}

func (s *StoreSink) Deliver(ev Event) error {
	rec := models.EventLog{
		EventID:         ev.ID,
		Kind:            string(ev.Kind),
		AppointmentUUID: ev.Booking.UUID,
		BarberID:        ev.Booking.BarberID,
		OldStatus:       ev.OldStatus,
		NewStatus:       ev.Booking.Status,
	}
	return s.db.Create(&rec).Error
}
