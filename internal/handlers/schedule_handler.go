package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nareguabarber/naregua-api/internal/models"
)

type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

type UpdateScheduleRequest struct {
	OpenTime        *string  `json:"open_time,omitempty"`
	CloseTime       *string  `json:"close_time,omitempty"`
	SlotIntervalMin *int     `json:"slot_interval_min,omitempty"`
	MonthlyGoal     *float64 `json:"monthly_goal,omitempty"`
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	var cfg models.ScheduleConfig
	if err := h.db.Order("id ASC").First(&cfg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_schedule_config"})
		return
	}

	c.JSON(http.StatusOK, cfg)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	var cfg models.ScheduleConfig
	if err := h.db.Order("id ASC").First(&cfg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_schedule_config"})
		return
	}

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.OpenTime != nil {
		cfg.OpenTime = *req.OpenTime
	}
	if req.CloseTime != nil {
		cfg.CloseTime = *req.CloseTime
	}
	if req.SlotIntervalMin != nil {
		cfg.SlotIntervalMin = *req.SlotIntervalMin
	}
	if req.MonthlyGoal != nil {
		cfg.MonthlyGoal = *req.MonthlyGoal
	}

	if err := h.db.Save(&cfg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_schedule_config"})
		return
	}

	c.JSON(http.StatusOK, cfg)
}
