package loyalty

import (
	"testing"

	"github.com/nareguabarber/naregua-api/internal/models"
)

func TestIsRedemptionEligible(t *testing.T) {
	cases := []struct {
		points int
		want   bool
	}{
		{0, false},
		{9, false},
		{10, true},
		{25, true},
	}

	for _, tc := range cases {
		p := &models.LoyaltyProfile{Points: tc.points}
		if got := IsRedemptionEligible(p); got != tc.want {
			t.Errorf("points=%d: eligible = %v, want %v", tc.points, got, tc.want)
		}
	}

	if IsRedemptionEligible(nil) {
		t.Error("nil profile must not be eligible")
	}
}

func TestApplyAdjustment(t *testing.T) {
	p := &models.LoyaltyProfile{Points: 3, TotalAppointments: 3}

	// conclusão de atendimento: +1 ponto, +1 visita
	ApplyAdjustment(p, 1, true)
	if p.Points != 4 || p.TotalAppointments != 4 {
		t.Fatalf("after grant: points=%d visits=%d", p.Points, p.TotalAppointments)
	}

	// resgate não conta visita
	ApplyAdjustment(p, -RedemptionCost, false)
	if p.Points != 0 {
		t.Errorf("points = %d, want 0 (piso em zero)", p.Points)
	}
	if p.TotalAppointments != 4 {
		t.Errorf("visits = %d, want 4", p.TotalAppointments)
	}
}

func TestApplyAdjustment_FloorsAtZero(t *testing.T) {
	p := &models.LoyaltyProfile{Points: 2}
	ApplyAdjustment(p, -10, false)
	if p.Points != 0 {
		t.Errorf("points = %d, want 0", p.Points)
	}
}

func TestDiscountFor(t *testing.T) {
	cases := []struct {
		price float64
		want  float64
	}{
		{35.00, 20.00},
		{20.00, 20.00},
		{15.00, 15.00}, // desconto nunca excede o preço
		{0, 0},
	}

	for _, tc := range cases {
		if got := DiscountFor(tc.price); got != tc.want {
			t.Errorf("DiscountFor(%.2f) = %.2f, want %.2f", tc.price, got, tc.want)
		}
	}
}
