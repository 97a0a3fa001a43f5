package loyalty

import (
	"context"

	"github.com/nareguabarber/naregua-api/internal/models"
)

type Repository interface {
	// GetOrCreateProfile nunca falha por ausência: um perfil zerado é
	// criado na primeira interação do telefone.
	GetOrCreateProfile(
		ctx context.Context,
		phone string,
	) (*models.LoyaltyProfile, error)

	SaveProfile(
		ctx context.Context,
		p *models.LoyaltyProfile,
	) error

	AdjustPoints(
		ctx context.Context,
		phone string,
		delta int,
		countsAsVisit bool,
	) (*models.LoyaltyProfile, error)
}
