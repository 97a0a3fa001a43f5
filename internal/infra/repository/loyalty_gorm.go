package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nareguabarber/naregua-api/internal/domain/loyalty"
	"github.com/nareguabarber/naregua-api/internal/models"
)

type LoyaltyGormRepository struct {
	db *gorm.DB
}

func NewLoyaltyGormRepository(db *gorm.DB) *LoyaltyGormRepository {
	return &LoyaltyGormRepository{db: db}
}

func (r *LoyaltyGormRepository) GetOrCreateProfile(
	ctx context.Context,
	phone string,
) (*models.LoyaltyProfile, error) {

	var profile models.LoyaltyProfile
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&profile).Error

	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile = models.LoyaltyProfile{Phone: phone}
	if err := r.db.WithContext(ctx).Create(&profile).Error; err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *LoyaltyGormRepository) SaveProfile(
	ctx context.Context,
	p *models.LoyaltyProfile,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *LoyaltyGormRepository) AdjustPoints(
	ctx context.Context,
	phone string,
	delta int,
	countsAsVisit bool,
) (*models.LoyaltyProfile, error) {

	var profile models.LoyaltyProfile

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("phone = ?", phone).
			First(&profile).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			profile = models.LoyaltyProfile{Phone: phone}
			if err := tx.Create(&profile).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		loyalty.ApplyAdjustment(&profile, delta, countsAsVisit)
		return tx.Save(&profile).Error
	})

	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Compile-time check
var _ loyalty.Repository = (*LoyaltyGormRepository)(nil)
