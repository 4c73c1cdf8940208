package validators

// ValidationError carrega todos os campos violados de uma vez,
// em vez de um booleano ou só da primeira falha.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	return "malformed_request"
}

func (r BookingResult) Err() error {
	if r.OK() {
		return nil
	}
	return &ValidationError{Violations: r.Violations}
}
