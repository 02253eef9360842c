package slot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

type Status string

const (
	StatusFree      Status = "LIBRE"
	StatusReserved  Status = "RESERVADO"
	StatusFinalized Status = "FINALIZADO"
)

// Slot is a half-hour inspection appointment. Plate is set on reservation and
// ResultID on finalization; ResultID is non-nil iff Status is FINALIZADO.
type Slot struct {
	ID       uuid.UUID
	Plate    *string
	StartsAt time.Time
	Status   Status
	ResultID *uuid.UUID
}

const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	date, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}
