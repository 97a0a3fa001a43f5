package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nareguabarber/naregua-api/internal/domain/billing"
	"github.com/nareguabarber/naregua-api/internal/httperr"
	"github.com/nareguabarber/naregua-api/internal/middleware"
	usecase "github.com/nareguabarber/naregua-api/internal/usecase/booking"
)

type BillingHandler struct {
	summary *usecase.GetBillingSummary
}

func NewBillingHandler(summary *usecase.GetBillingSummary) *BillingHandler {
	return &BillingHandler{summary: summary}
}

// Summary devolve o painel de faturamento. O filtro barber_ids só tem
// efeito para admins; o agregador ignora o parâmetro para os demais.
func (h *BillingHandler) Summary(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)
	isAdmin := c.MustGet(middleware.ContextIsAdmin).(bool)

	scope := billing.Scope{
		CallerBarberID: barberID,
		CallerIsAdmin:  isAdmin,
	}

	if raw := strings.TrimSpace(c.Query("barber_ids")); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_barber_ids"})
				return
			}
			scope.BarberIDs = append(scope.BarberIDs, uint(id))
		}
	}

	out, err := h.summary.Execute(c.Request.Context(), scope)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}
