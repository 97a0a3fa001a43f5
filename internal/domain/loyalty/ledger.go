package loyalty

import "github.com/nareguabarber/naregua-api/internal/models"

// 10 cortes concluídos valem €20 de desconto
const (
	RedemptionThreshold = 10
	RedemptionCost      = 10
	DiscountValue       = 20.00
)

func IsRedemptionEligible(p *models.LoyaltyProfile) bool {
	return p != nil && p.Points >= RedemptionThreshold
}

// ApplyAdjustment soma delta ao saldo com piso em zero; um resgate nunca
// deixa o perfil negativo mesmo que o custo exceda o saldo corrente.
func ApplyAdjustment(p *models.LoyaltyProfile, delta int, countsAsVisit bool) {
	p.Points += delta
	if p.Points < 0 {
		p.Points = 0
	}
	if countsAsVisit {
		p.TotalAppointments++
	}
}

// DiscountFor limita o desconto ao preço do serviço para que a receita
// líquida do atendimento nunca fique negativa.
func DiscountFor(servicePrice float64) float64 {
	if servicePrice < DiscountValue {
		return servicePrice
	}
	return DiscountValue
}
