package validators

import (
	"math"
	"time"

	"github.com/BruksfildServices01/agenda-api/internal/clock"
)

// ======================================================
// Validador tipado do pedido de agendamento.
// Acumula TODAS as violações em vez de parar na primeira.
// ======================================================

type BookingInput struct {
	ProviderID any
	Date       any
}

type BookingDraft struct {
	ProviderID uint
	Date       time.Time
}

type Violation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type BookingResult struct {
	Draft      BookingDraft
	Violations []Violation
}

func (r BookingResult) OK() bool {
	return len(r.Violations) == 0
}

// Formatos aceitos para o campo date. Sem fuso explícito,
// assume o fuso padrão do serviço.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

func ValidateBooking(in BookingInput) BookingResult {
	var res BookingResult

	res.Draft.ProviderID = validateProviderID(in.ProviderID, &res)
	res.Draft.Date = validateDate(in.Date, &res)

	return res
}

func validateProviderID(v any, res *BookingResult) uint {
	if v == nil {
		res.Violations = append(res.Violations, Violation{"provider_id", "required"})
		return 0
	}

	// JSON decodifica números como float64
	switch n := v.(type) {
	case float64:
		if n <= 0 || n != math.Trunc(n) {
			res.Violations = append(res.Violations, Violation{"provider_id", "must_be_positive_integer"})
			return 0
		}
		return uint(n)
	case int:
		if n <= 0 {
			res.Violations = append(res.Violations, Violation{"provider_id", "must_be_positive_integer"})
			return 0
		}
		return uint(n)
	default:
		res.Violations = append(res.Violations, Violation{"provider_id", "must_be_integer"})
		return 0
	}
}

func validateDate(v any, res *BookingResult) time.Time {
	if v == nil {
		res.Violations = append(res.Violations, Violation{"date", "required"})
		return time.Time{}
	}

	s, ok := v.(string)
	if !ok || s == "" {
		res.Violations = append(res.Violations, Violation{"date", "must_be_string"})
		return time.Time{}
	}

	loc := clock.Location("")
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t
		}
	}

	res.Violations = append(res.Violations, Violation{"date", "invalid_format"})
	return time.Time{}
}
