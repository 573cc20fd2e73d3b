package service

//go:generate mockgen -destination=mocks/mocks.go -package=mocks gastropos/internal/service AuthService,CajaService,FacturacionService,PedidoService,VentaService

import (
	"math"
	"strings"
	"time"

	"gastropos/internal/apierror"
	"gastropos/internal/repository"

	"github.com/google/uuid"
)

// Clock returns the current time. A nil Clock means time.Now.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

const dateLayout = "2006-01-02"

// parseRango turns from/to query values into a half-open interval. Plain
// dates are calendar days in loc and "to" includes its whole day; RFC3339
// timestamps are taken as-is.
func parseRango(from, to string, loc *time.Location) (repository.Rango, error) {
	var r repository.Rango
	if from = strings.TrimSpace(from); from != "" {
		t, _, err := parseMoment(from, loc)
		if err != nil {
			return r, err
		}
		r.Desde = &t
	}
	if to = strings.TrimSpace(to); to != "" {
		t, dateOnly, err := parseMoment(to, loc)
		if err != nil {
			return r, err
		}
		if dateOnly {
			t = t.AddDate(0, 0, 1)
		}
		r.Hasta = &t
	}
	return r, nil
}

func parseMoment(s string, loc *time.Location) (time.Time, bool, error) {
	if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		return t, true, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, false, nil
	}
	return time.Time{}, false, apierror.BadRequest(apierror.CodeInvalidDate).With("value", s)
}

// parseOptionalID parses an optional uuid string; empty means nil.
func parseOptionalID(s *string) (*uuid.UUID, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*s))
	if err != nil {
		return nil, apierror.BadRequest(apierror.CodeInvalidID)
	}
	return &id, nil
}

// wholeMinutes rounds d to the nearest minute, never below zero.
func wholeMinutes(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	return int64(math.Round(d.Minutes()))
}

func strPtr(s string) *string { return &s }

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
