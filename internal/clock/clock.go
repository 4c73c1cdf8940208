package clock

import "time"

const DefaultTimezone = "America/Sao_Paulo"

// Clock abstrai o "agora" para que as regras de horário sejam testáveis.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

func NewSystemClock(tz string) Clock {
	return &systemClock{loc: Location(tz)}
}

func (c *systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// HourStart zera minutos, segundos e nanossegundos preservando o fuso.
// Usa o relógio de parede, não Truncate, para fusos com offset quebrado.
func HourStart(t time.Time) time.Time {
	return time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), 0, 0, 0,
		t.Location(),
	)
}
