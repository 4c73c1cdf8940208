package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/middleware"
	"github.com/BruksfildServices01/agenda-api/internal/models"
	"github.com/BruksfildServices01/agenda-api/internal/storage"
)

type MeHandler struct {
	db      *gorm.DB
	avatars *storage.AvatarStore
}

func NewMeHandler(db *gorm.DB, avatars *storage.AvatarStore) *MeHandler {
	return &MeHandler{db: db, avatars: avatars}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":          user.ID,
			"name":        user.Name,
			"email":       user.Email,
			"is_provider": user.IsProvider,
			"avatar_url":  user.AvatarURL,
		},
	})
}

// UpdateAvatar recebe multipart "avatar", converte para webp e sobe pro S3.
func (h *MeHandler) UpdateAvatar(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	fh, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_avatar_file", "Arquivo de avatar obrigatório.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_avatar", "Erro ao ler arquivo.")
		return
	}
	defer f.Close()

	url, err := h.avatars.Upload(c.Request.Context(), userID, f)
	if err != nil {
		httperr.BadRequest(c, "invalid_avatar_file", "Imagem inválida.")
		return
	}

	if err := h.db.
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("avatar_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_update_avatar", "Erro ao salvar avatar.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
