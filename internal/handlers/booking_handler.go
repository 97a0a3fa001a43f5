package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nareguabarber/naregua-api/internal/httperr"
	"github.com/nareguabarber/naregua-api/internal/httpresp"
	"github.com/nareguabarber/naregua-api/internal/middleware"
	"github.com/nareguabarber/naregua-api/internal/timezone"
	usecase "github.com/nareguabarber/naregua-api/internal/usecase/booking"
)

// BookingHandler concentra a agenda do barbeiro autenticado:
// listagem por dia/mês e as transições de status.
type BookingHandler struct {
	listByDate  *usecase.ListBookingsByDate
	listByMonth *usecase.ListBookingsByMonth
	confirm     *usecase.ConfirmBooking
	cancel      *usecase.CancelBooking
	complete    *usecase.CompleteBooking
}

func NewBookingHandler(
	listByDate *usecase.ListBookingsByDate,
	listByMonth *usecase.ListBookingsByMonth,
	confirm *usecase.ConfirmBooking,
	cancel *usecase.CancelBooking,
	complete *usecase.CompleteBooking,
) *BookingHandler {
	return &BookingHandler{
		listByDate:  listByDate,
		listByMonth: listByMonth,
		confirm:     confirm,
		cancel:      cancel,
		complete:    complete,
	}
}

// --------- Requests ---------

type CompleteBookingRequest struct {
	ProductsRevenue float64 `json:"products_revenue"`
}

// --------- Handlers ---------

func (h *BookingHandler) ListByDate(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	dateStr := c.DefaultQuery("date", timezone.Now().Format("2006-01-02"))
	date, err := time.ParseInLocation("2006-01-02", dateStr, timezone.Location(""))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
		return
	}

	bookings, err := h.listByDate.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	now := timezone.Now()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_year"})
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_month"})
		return
	}

	bookings, err := h.listByMonth.Execute(c.Request.Context(), barberID, year, month)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	ap, err := h.confirm.Execute(c.Request.Context(), barberID, id)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), barberID, id)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	// corpo opcional: venda de produtos junto do atendimento
	var req CompleteBookingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_request",
				"details": err.Error(),
			})
			return
		}
	}

	ap, err := h.complete.Execute(c.Request.Context(), barberID, id, req.ProductsRevenue)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
