package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/httpresp"
	"github.com/BruksfildServices01/agenda-api/internal/middleware"
	ucBooking "github.com/BruksfildServices01/agenda-api/internal/usecase/booking"
	"github.com/BruksfildServices01/agenda-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
	cancelUC *ucBooking.CancelBooking
	listUC   *ucBooking.ListBookings
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	cancelUC *ucBooking.CancelBooking,
	listUC *ucBooking.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		cancelUC: cancelUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Campos crus de propósito: a tipagem é papel do validador,
// que acumula todas as violações.
type CreateBookingRequest struct {
	ProviderID any `json:"provider_id"`
	Date       any `json:"date"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "malformed_request", "Dados inválidos.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		RequesterID: userID,
		ProviderID:  req.ProviderID,
		Date:        req.Date,
	})
	if err != nil {
		var vErr *validators.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(400, gin.H{
				"error_code": "malformed_request",
				"message":    "Dados inválidos.",
				"violations": vErr.Violations,
			})
			return
		}

		if httperr.WriteBusiness(c, err) {
			return
		}

		httperr.Internal(c, "failed_to_create_booking", "Erro ao criar agendamento.")
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}

		httperr.Internal(c, "failed_to_cancel_booking", "Erro ao cancelar agendamento.")
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	out, err := h.listUC.Execute(c.Request.Context(), userID, page)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}
