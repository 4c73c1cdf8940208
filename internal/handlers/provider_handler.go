package handlers

import (
	"github.com/gin-gonic/gin"

	domainUser "github.com/BruksfildServices01/agenda-api/internal/domain/user"
	"github.com/BruksfildServices01/agenda-api/internal/dto"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/httpresp"
)

// Diretório público de prestadores, servido do cache Redis.
type ProviderHandler struct {
	users domainUser.Reader
}

func NewProviderHandler(users domainUser.Reader) *ProviderHandler {
	return &ProviderHandler{users: users}
}

func (h *ProviderHandler) List(c *gin.Context) {
	us, err := h.users.ListProviders(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_providers", "Erro ao listar prestadores.")
		return
	}

	out := make([]dto.ProviderSummaryDTO, 0, len(us))
	for _, u := range us {
		out = append(out, dto.ProviderSummaryDTO{
			ID:        u.ID,
			Name:      u.Name,
			AvatarURL: u.AvatarURL,
		})
	}

	httpresp.List(c, out)
}
