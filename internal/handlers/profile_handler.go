package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nareguabarber/naregua-api/internal/domain/loyalty"
	"github.com/nareguabarber/naregua-api/internal/httperr"
	"github.com/nareguabarber/naregua-api/internal/media"
	"github.com/nareguabarber/naregua-api/internal/middleware"
	"github.com/nareguabarber/naregua-api/internal/models"
	"github.com/nareguabarber/naregua-api/internal/validators"
)

// limite do multipart; fotos de celular passam folgadas depois do resize
const maxAvatarUpload = 8 << 20

// ProfileHandler cuida do perfil do barbeiro logado e dos uploads de
// avatar (barbeiro e cliente). As imagens saem normalizadas para o S3.
type ProfileHandler struct {
	db      *gorm.DB
	avatars *media.AvatarStore
	loyalty loyalty.Repository
}

func NewProfileHandler(db *gorm.DB, avatars *media.AvatarStore, loyaltyRepo loyalty.Repository) *ProfileHandler {
	return &ProfileHandler{db: db, avatars: avatars, loyalty: loyaltyRepo}
}

func (h *ProfileHandler) Me(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	var barber models.Barber
	if err := h.db.Preload("AssignedServices").First(&barber, barberID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_barber"})
		return
	}

	c.JSON(http.StatusOK, barber)
}

func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxAvatarUpload)

	file, _, err := c.Request.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_avatar_file"})
		return
	}
	defer file.Close()

	url, err := h.avatars.Upload(c.Request.Context(), file)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	if err := h.db.Model(&models.Barber{}).
		Where("id = ?", barberID).
		Update("avatar_url", url).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_avatar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}

// UploadClientAvatar é o upload público, amarrado ao telefone do perfil
func (h *ProfileHandler) UploadClientAvatar(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxAvatarUpload)

	phone := validators.NormalizePhone(c.PostForm("phone"))
	if !validators.IsPhoneValid(phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_phone"})
		return
	}

	file, _, err := c.Request.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_avatar_file"})
		return
	}
	defer file.Close()

	url, err := h.avatars.Upload(c.Request.Context(), file)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	profile, err := h.loyalty.GetOrCreateProfile(c.Request.Context(), phone)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	profile.AvatarURL = url
	if err := h.loyalty.SaveProfile(c.Request.Context(), profile); err != nil {
		httperr.FromDomain(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
