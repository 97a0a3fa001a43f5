package booking

import (
	"context"
	"time"

	"github.com/nareguabarber/naregua-api/internal/domain/billing"
	domain "github.com/nareguabarber/naregua-api/internal/domain/booking"
	"github.com/nareguabarber/naregua-api/internal/timezone"
)

type GetBillingSummary struct {
	repo domain.Repository

	Now func() time.Time
}

func NewGetBillingSummary(repo domain.Repository) *GetBillingSummary {
	return &GetBillingSummary{
		repo: repo,
		Now:  timezone.Now,
	}
}

type BillingSummaryOutput struct {
	billing.Summary
	MonthlyGoal float64 `json:"monthly_goal"`
}

func (uc *GetBillingSummary) Execute(
	ctx context.Context,
	scope billing.Scope,
) (*BillingSummaryOutput, error) {

	asOf := uc.Now()
	loc := asOf.Location()

	today := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, loc)
	monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, loc)
	seriesStart := today.AddDate(0, 0, -14)

	since := monthStart
	if seriesStart.Before(since) {
		since = seriesStart
	}

	completed, err := uc.repo.ListCompletedAppointments(ctx, since)
	if err != nil {
		return nil, err
	}

	summary := billing.ComputeSummary(completed, scope, asOf)

	// meta do mês: a pessoal do barbeiro quando consulta a própria
	// agenda, senão a global
	cfg, err := uc.repo.GetScheduleConfig(ctx)
	if err != nil {
		return nil, err
	}
	goal := cfg.MonthlyGoal
	if !scope.CallerIsAdmin {
		if barber, err := uc.repo.GetBarber(ctx, scope.CallerBarberID); err == nil {
			goal = domain.EffectiveSchedule(barber, cfg).MonthlyGoal
		}
	}

	return &BillingSummaryOutput{
		Summary:     summary,
		MonthlyGoal: goal,
	}, nil
}
