package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Mensagens exibidas ao usuário final (pt-BR).
var businessMessages = map[string]string{
	"malformed_request":      "Dados inválidos.",
	"not_a_provider":         "Prestador não encontrado.",
	"self_booking_forbidden": "Não é possível agendar consigo mesmo.",
	"past_date_forbidden":    "Não é possível agendar no passado.",
	"slot_unavailable":       "Horário já ocupado.",
	"booking_not_found":      "Agendamento não encontrado.",
	"already_canceled":       "Agendamento já cancelado.",
	"not_authorized":         "Sem permissão para esta operação.",
	"too_late_to_cancel":     "Cancelamento permitido apenas com 2h de antecedência.",
}

var businessStatus = map[string]int{
	"booking_not_found":  http.StatusNotFound,
	"not_authorized":     http.StatusUnauthorized,
	"too_late_to_cancel": http.StatusUnauthorized,
}

// WriteBusiness traduz um BusinessError para a resposta HTTP correspondente.
// Códigos fora do mapa caem em 400.
func WriteBusiness(c *gin.Context, err error) bool {
	code, ok := BusinessCode(err)
	if !ok {
		return false
	}

	status, ok := businessStatus[code]
	if !ok {
		status = http.StatusBadRequest
	}

	msg, ok := businessMessages[code]
	if !ok {
		msg = "Operação inválida."
	}

	Write(c, status, code, msg)
	return true
}
