package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nareguabarber/naregua-api/internal/models"
)

type ShopHandler struct {
	db *gorm.DB
}

func NewShopHandler(db *gorm.DB) *ShopHandler {
	return &ShopHandler{db: db}
}

// --------- Requests ---------

type CreateShopRequest struct {
	Name      string  `json:"name" binding:"required"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone"`
	Whatsapp  string  `json:"whatsapp"`
	Instagram string  `json:"instagram"`
	Facebook  string  `json:"facebook"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type UpdateShopRequest struct {
	Name      *string  `json:"name,omitempty"`
	Address   *string  `json:"address,omitempty"`
	Phone     *string  `json:"phone,omitempty"`
	Whatsapp  *string  `json:"whatsapp,omitempty"`
	Instagram *string  `json:"instagram,omitempty"`
	Facebook  *string  `json:"facebook,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Active    *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ShopHandler) List(c *gin.Context) {
	var shops []models.Shop
	if err := h.db.Order("id ASC").Find(&shops).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_shops"})
		return
	}

	c.JSON(http.StatusOK, shops)
}

func (h *ShopHandler) Create(c *gin.Context) {
	var req CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	shop := models.Shop{
		Name:      req.Name,
		Address:   req.Address,
		Phone:     req.Phone,
		Whatsapp:  req.Whatsapp,
		Instagram: req.Instagram,
		Facebook:  req.Facebook,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Active:    true,
	}

	if err := h.db.Create(&shop).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_shop"})
		return
	}

	c.JSON(http.StatusCreated, shop)
}

func (h *ShopHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var shop models.Shop
	if err := h.db.First(&shop, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "shop_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_shop"})
		return
	}

	var req UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Whatsapp != nil {
		shop.Whatsapp = *req.Whatsapp
	}
	if req.Instagram != nil {
		shop.Instagram = *req.Instagram
	}
	if req.Facebook != nil {
		shop.Facebook = *req.Facebook
	}
	if req.Latitude != nil {
		shop.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		shop.Longitude = *req.Longitude
	}
	if req.Active != nil {
		shop.Active = *req.Active
	}

	if err := h.db.Save(&shop).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_shop"})
		return
	}

	c.JSON(http.StatusOK, shop)
}
