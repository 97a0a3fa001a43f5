package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nareguabarber/naregua-api/internal/httpresp"
	"github.com/nareguabarber/naregua-api/internal/models"
)

const maxEventLogPage = 200

// EventLogHandler expõe a trilha de eventos persistida para auditoria
type EventLogHandler struct {
	db *gorm.DB
}

func NewEventLogHandler(db *gorm.DB) *EventLogHandler {
	return &EventLogHandler{db: db}
}

func (h *EventLogHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_limit"})
		return
	}
	if limit > maxEventLogPage {
		limit = maxEventLogPage
	}

	q := h.db.Session(&gorm.Session{})
	if kind := c.Query("kind"); kind != "" {
		q = q.Where("kind = ?", kind)
	}
	if uuid := c.Query("appointment_uuid"); uuid != "" {
		q = q.Where("appointment_uuid = ?", uuid)
	}

	var logs []models.EventLog
	if err := q.Order("id DESC").Limit(limit).Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_events"})
		return
	}

	httpresp.List(c, logs)
}
