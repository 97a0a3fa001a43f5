package booking

import (
	"context"
	"time"

	"github.com/nareguabarber/naregua-api/internal/models"
)

type Repository interface {
	// -------- Catálogo --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetScheduleConfig(
		ctx context.Context,
	) (*models.ScheduleConfig, error)

	// -------- Appointment (criação / conflito) --------

	// CreateAppointment persiste a reserva dentro de uma seção crítica:
	// o conflito de horário é reavaliado com lock e, havendo resgate de
	// pontos, o débito acontece na mesma transação. Retorna erro de
	// conflito de slot quando a corrida foi perdida.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
		redeemPoints int,
	) error

	// -------- Appointment (ciclo de vida) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// CompleteAppointment persiste a conclusão e concede o ponto de
	// fidelidade (+1 ponto, +1 visita no telefone da reserva) na mesma
	// transação: ou os dois efeitos acontecem, ou nenhum.
	CompleteAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Consultas --------
	ListAppointmentsForDay(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsByPhone(
		ctx context.Context,
		phone string,
	) ([]models.Appointment, error)

	ListCompletedAppointments(
		ctx context.Context,
		since time.Time,
	) ([]models.Appointment, error)
}
