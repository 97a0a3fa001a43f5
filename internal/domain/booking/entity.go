package booking

import (
	"time"

	"github.com/nareguabarber/naregua-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment) error {
	if err := CanTransition(Status(ap.Status), StatusConfirmed); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanTransition(Status(ap.Status), StatusCancelled); err != nil {
		return err
	}

	// pontos resgatados não voltam no cancelamento
	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time, productsRevenue float64) error {
	if err := CanTransition(Status(ap.Status), StatusCompleted); err != nil {
		return err
	}
	if productsRevenue < 0 {
		return ErrValidation("negative_products_revenue")
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	ap.ProductsRevenue = productsRevenue
	return nil
}
