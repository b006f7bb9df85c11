package costing

import (
	"strings"
	"time"

	"github.com/jhoicas/costeo-api/internal/domain"
)

// DateLayout formato de fecha en la frontera del API (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Period un rango de fechas cerrado [Start, End] a resolución de día.
// Start y End quedan anclados al inicio y fin de día respectivamente, de modo
// que una transacción fechada cualquier instante del día límite cae dentro.
type Period struct {
	Start time.Time
	End   time.Time
}

// ParseDate parsea una fecha YYYY-MM-DD. Retorna ErrInvalidPeriod si está
// vacía o no parsea.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, domain.ErrInvalidPeriod
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidPeriod
	}
	return t, nil
}

// ParsePeriod valida ambos límites de forma temprana: requeridos, parseables
// y Start <= End. El End se extiende a fin de día (23:59:59.999999999).
func ParsePeriod(start, end string) (Period, error) {
	s, err := ParseDate(start)
	if err != nil {
		return Period{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return Period{}, err
	}
	if s.After(e) {
		return Period{}, domain.ErrInvalidPeriod
	}
	return Period{Start: StartOfDay(s), End: EndOfDay(e)}, nil
}

// StartOfDay trunca a las 00:00:00 UTC del mismo día.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay ancla al último nanosegundo del día.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
}

// Contains indica si t cae dentro del período.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}
