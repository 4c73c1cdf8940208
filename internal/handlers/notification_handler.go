package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/httpresp"
	"github.com/BruksfildServices01/agenda-api/internal/middleware"
	ucNotification "github.com/BruksfildServices01/agenda-api/internal/usecase/notification"
)

type NotificationHandler struct {
	listUC *ucNotification.ListRecent
	markUC *ucNotification.MarkRead
}

func NewNotificationHandler(
	listUC *ucNotification.ListRecent,
	markUC *ucNotification.MarkRead,
) *NotificationHandler {
	return &NotificationHandler{
		listUC: listUC,
		markUC: markUC,
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	ns, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}

		httperr.Internal(c, "failed_to_list_notifications", "Erro ao listar notificações.")
		return
	}

	httpresp.List(c, ns)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	n, err := h.markUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		httperr.Internal(c, "failed_to_mark_notification", "Erro ao marcar notificação.")
		return
	}

	// id inexistente: sucesso idempotente, sem alteração
	if n == nil {
		c.JSON(200, gin.H{"updated": false})
		return
	}

	httpresp.OK(c, n)
}
