package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nareguabarber/naregua-api/internal/auth"
	"github.com/nareguabarber/naregua-api/internal/models"
)

type BarberHandler struct {
	db *gorm.DB
}

func NewBarberHandler(db *gorm.DB) *BarberHandler {
	return &BarberHandler{db: db}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name       string `json:"name" binding:"required"`
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required,min=6"`
	ServiceIDs []uint `json:"service_ids"`
}

type UpdateBarberRequest struct {
	Name       *string `json:"name,omitempty"`
	Active     *bool   `json:"active,omitempty"`
	ServiceIDs *[]uint `json:"service_ids,omitempty"`

	OpenTime        *string  `json:"open_time,omitempty"`
	CloseTime       *string  `json:"close_time,omitempty"`
	SlotIntervalMin *int     `json:"slot_interval_min,omitempty"`
	MonthlyGoal     *float64 `json:"monthly_goal,omitempty"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Preload("AssignedServices").
		Order("id ASC").
		Find(&barbers).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_barbers"})
		return
	}

	c.JSON(http.StatusOK, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))

	var count int64
	h.db.Model(&models.Barber{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username_already_exists"})
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	var services []models.Service
	if len(req.ServiceIDs) > 0 {
		if err := h.db.Find(&services, req.ServiceIDs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_load_services"})
			return
		}
	}

	barber := models.Barber{
		Name:             req.Name,
		Username:         username,
		PasswordHash:     hashed,
		Active:           true,
		IsAdmin:          false,
		AssignedServices: services,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_barber"})
		return
	}

	c.JSON(http.StatusCreated, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.First(&barber, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "barber_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_barber"})
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		barber.Name = *req.Name
	}
	if req.Active != nil {
		barber.Active = *req.Active
	}
	if req.OpenTime != nil {
		barber.OpenTime = *req.OpenTime
	}
	if req.CloseTime != nil {
		barber.CloseTime = *req.CloseTime
	}
	if req.SlotIntervalMin != nil {
		barber.SlotIntervalMin = *req.SlotIntervalMin
	}
	if req.MonthlyGoal != nil {
		barber.MonthlyGoal = *req.MonthlyGoal
	}

	if err := h.db.Save(&barber).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_barber"})
		return
	}

	if req.ServiceIDs != nil {
		var services []models.Service
		if len(*req.ServiceIDs) > 0 {
			if err := h.db.Find(&services, *req.ServiceIDs).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_load_services"})
				return
			}
		}
		if err := h.db.Model(&barber).Association("AssignedServices").Replace(services); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_assign_services"})
			return
		}
	}

	c.JSON(http.StatusOK, barber)
}

// Deactivate tira o barbeiro da vitrine sem apagar o histórico
func (h *BarberHandler) Deactivate(c *gin.Context) {
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.First(&barber, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "barber_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_barber"})
		return
	}

	if barber.IsAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot_deactivate_admin"})
		return
	}

	barber.Active = false
	if err := h.db.Save(&barber).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_deactivate_barber"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
