package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nareguabarber/naregua-api/internal/domain/booking"
	"github.com/nareguabarber/naregua-api/internal/domain/loyalty"
	"github.com/nareguabarber/naregua-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Catálogo
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrNotFound("service_not_found")
		}
		return nil, err
	}
	return &service, nil
}

func (r *BookingGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Preload("AssignedServices").
		First(&barber, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrNotFound("barber_not_found")
		}
		return nil, err
	}
	return &barber, nil
}

func (r *BookingGormRepository) GetScheduleConfig(
	ctx context.Context,
) (*models.ScheduleConfig, error) {

	var cfg models.ScheduleConfig
	if err := r.db.WithContext(ctx).Order("id ASC").First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrNotFound("schedule_config_not_found")
		}
		return nil, err
	}
	return &cfg, nil
}

// --------------------------------------------------
// Appointment (criação / conflito)
// --------------------------------------------------

// janela ocupada: start_time <= candidato < start_time + duração snapshot
const overlapCondition = `barber_id = ? AND status <> 'cancelled'
	AND start_time <= ?
	AND start_time + make_interval(mins => CASE WHEN service_duration_min > 0 THEN service_duration_min ELSE 30 END) > ?`

// escopo dos advisory locks de agenda (primeiro argumento do par int4,int4)
const slotLockScope = 1

// unique_violation (classe 23 do Postgres)
const pgUniqueViolation = "23505"

// isActiveSlotViolation reconhece o estouro do índice parcial de slot
// ativo; qualquer outra violação de unicidade (uuid, username) sobe como
// erro de infra.
func isActiveSlotViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgUniqueViolation &&
		pgErr.ConstraintName == models.ActiveSlotIndex
}

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	redeemPoints int,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// 1️⃣ serializa criações do mesmo barbeiro. Um SELECT FOR UPDATE
		// não basta aqui: com o slot vazio não existe linha para travar e
		// duas transações simultâneas passariam ambas pela checagem.
		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(?, ?)",
			slotLockScope, int64(ap.BarberID),
		).Error; err != nil {
			return err
		}

		// 2️⃣ revalida o slot dentro da seção crítica — fecha a corrida
		// entre a consulta de disponibilidade e a escrita
		var conflicting []uint
		if err := tx.Model(&models.Appointment{}).
			Where(overlapCondition, ap.BarberID, ap.StartTime, ap.StartTime).
			Pluck("id", &conflicting).Error; err != nil {
			return err
		}
		if len(conflicting) > 0 {
			return booking.ErrSlotConflict("slot_conflict")
		}

		// 3️⃣ resgate de pontos na mesma transação
		if redeemPoints > 0 {
			var profile models.LoyaltyProfile
			err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("phone = ?", ap.CustomerPhone).
				First(&profile).Error

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return booking.ErrValidation("insufficient_points")
			}
			if err != nil {
				return err
			}
			if !loyalty.IsRedemptionEligible(&profile) {
				return booking.ErrValidation("insufficient_points")
			}

			loyalty.ApplyAdjustment(&profile, -redeemPoints, false)
			if err := tx.Save(&profile).Error; err != nil {
				return err
			}
		}

		// o índice parcial de slot ativo é a última linha de defesa;
		// estourou = outra transação venceu a corrida
		if err := tx.Create(ap).Error; err != nil {
			if isActiveSlotViolation(err) {
				return booking.ErrSlotConflict("slot_conflict")
			}
			return err
		}
		return nil
	})
}

// --------------------------------------------------
// Appointment (ciclo de vida)
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrNotFound("appointment_not_found")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// CompleteAppointment grava o status e o ponto de fidelidade juntos; um
// erro no perfil desfaz a conclusão e deixa a reserva pronta para nova
// tentativa.
func (r *BookingGormRepository) CompleteAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(ap).Error; err != nil {
			return err
		}

		var profile models.LoyaltyProfile
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("phone = ?", ap.CustomerPhone).
			First(&profile).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			profile = models.LoyaltyProfile{Phone: ap.CustomerPhone}
			if err := tx.Create(&profile).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		loyalty.ApplyAdjustment(&profile, 1, true)
		return tx.Save(&profile).Error
	})
}

// --------------------------------------------------
// Consultas
// --------------------------------------------------

func (r *BookingGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND status <> 'cancelled' AND start_time >= ? AND start_time < ?",
			barberID, start, end,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *BookingGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND start_time >= ? AND start_time < ?",
			barberID, start, end,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *BookingGormRepository) ListAppointmentsByPhone(
	ctx context.Context,
	phone string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("customer_phone = ?", phone).
		Order("start_time DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *BookingGormRepository) ListCompletedAppointments(
	ctx context.Context,
	since time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("status = ? AND start_time >= ?", string(booking.StatusCompleted), since).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ booking.Repository = (*BookingGormRepository)(nil)
