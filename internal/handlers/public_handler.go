package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/nareguabarber/naregua-api/internal/domain/booking"
	"github.com/nareguabarber/naregua-api/internal/domain/loyalty"
	"github.com/nareguabarber/naregua-api/internal/dto"
	"github.com/nareguabarber/naregua-api/internal/httperr"
	"github.com/nareguabarber/naregua-api/internal/httpresp"
	"github.com/nareguabarber/naregua-api/internal/models"
	"github.com/nareguabarber/naregua-api/internal/timezone"
	usecase "github.com/nareguabarber/naregua-api/internal/usecase/booking"
	"github.com/nareguabarber/naregua-api/internal/validators"
)

// PublicHandler é a vitrine do cliente: catálogo, calendário,
// disponibilidade, reserva e fidelidade. Nada aqui exige login.
type PublicHandler struct {
	db           *gorm.DB
	repo         domain.Repository
	loyalty      loyalty.Repository
	create       *usecase.CreateBooking
	availability *usecase.GetAvailability
}

func NewPublicHandler(
	db *gorm.DB,
	repo domain.Repository,
	loyaltyRepo loyalty.Repository,
	create *usecase.CreateBooking,
	availability *usecase.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		repo:         repo,
		loyalty:      loyaltyRepo,
		create:       create,
		availability: availability,
	}
}

// --------- Requests ---------

type PublicBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`

	ServiceID uint `json:"service_id" binding:"required"`
	BarberID  uint `json:"barber_id" binding:"required"`

	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:mm

	UseLoyaltyPoints bool `json:"use_loyalty_points"`
}

type UpdateLoyaltyProfileRequest struct {
	Phone string  `json:"phone" binding:"required"`
	Name  *string `json:"name,omitempty"`
}

// --------- Vitrine ---------

func (h *PublicHandler) Storefront(c *gin.Context) {
	var shop models.Shop
	if err := h.db.Where("active = ?", true).Order("id ASC").First(&shop).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_load_storefront"})
		return
	}

	var services []models.Service
	if err := h.db.Where("active = ?", true).Order("id ASC").Find(&services).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_load_storefront"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shop":     shop,
		"services": services,
	})
}

// BarbersForService lista os barbeiros ativos habilitados para o serviço
func (h *PublicHandler) BarbersForService(c *gin.Context) {
	serviceID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	var barbers []models.Barber
	if err := h.db.
		Joins("JOIN barber_services bs ON bs.barber_id = barbers.id").
		Where("bs.service_id = ? AND barbers.active = ?", serviceID, true).
		Order("barbers.id ASC").
		Find(&barbers).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_barbers"})
		return
	}

	out := make([]gin.H, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, gin.H{
			"id":         b.ID,
			"name":       b.Name,
			"avatar_url": b.AvatarURL,
		})
	}

	c.JSON(http.StatusOK, out)
}

func (h *PublicHandler) Calendar(c *gin.Context) {
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

	days := domain.MonthDays(year, time.Month(month), now, c.Query("selected"))
	httpresp.List(c, days)
}

func (h *PublicHandler) Availability(c *gin.Context) {
	barberID, err := parseID(c.Query("barber_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_barber_id"})
		return
	}
	serviceID, err := parseID(c.Query("service_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_service_id"})
		return
	}
	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_date"})
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), barberID, serviceID, dateStr)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	httpresp.List(c, slots)
}

// --------- Reserva ---------

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !validators.IsPhoneValid(req.CustomerPhone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_phone"})
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), usecase.CreateBookingInput{
		CustomerName:     req.CustomerName,
		CustomerPhone:    validators.NormalizePhone(req.CustomerPhone),
		ServiceID:        req.ServiceID,
		BarberID:         req.BarberID,
		Date:             req.Date,
		Time:             req.Time,
		UseLoyaltyPoints: req.UseLoyaltyPoints,
	})
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// MyAppointments devolve o histórico do telefone informado
func (h *PublicHandler) MyAppointments(c *gin.Context) {
	phone := validators.NormalizePhone(c.Query("phone"))
	if !validators.IsPhoneValid(phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_phone"})
		return
	}

	appointments, err := h.repo.ListAppointmentsByPhone(c.Request.Context(), phone)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	httpresp.List(c, dto.ToBookingList(appointments))
}

// --------- Fidelidade ---------

func (h *PublicHandler) LoyaltyProfile(c *gin.Context) {
	phone := validators.NormalizePhone(c.Query("phone"))
	if !validators.IsPhoneValid(phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_phone"})
		return
	}

	profile, err := h.loyalty.GetOrCreateProfile(c.Request.Context(), phone)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":             profile,
		"redemption_eligible": loyalty.IsRedemptionEligible(profile),
		"discount_value":      loyalty.DiscountValue,
	})
}

func (h *PublicHandler) UpdateLoyaltyProfile(c *gin.Context) {
	var req UpdateLoyaltyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	phone := validators.NormalizePhone(req.Phone)
	if !validators.IsPhoneValid(phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_phone"})
		return
	}

	profile, err := h.loyalty.GetOrCreateProfile(c.Request.Context(), phone)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}

	if err := h.loyalty.SaveProfile(c.Request.Context(), profile); err != nil {
		httperr.FromDomain(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
