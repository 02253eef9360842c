package vehicle

import (
	"errors"
	"strings"
)

var ErrInvalidPlate = errors.New("plate is required")

// Vehicle is keyed by plate. It is created idempotently on first reservation;
// make and year are never updated on conflict (first write wins).
type Vehicle struct {
	Plate  string
	MakeID int
	Year   int
}

func New(plate string, makeID, year int) (Vehicle, error) {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	if plate == "" {
		return Vehicle{}, ErrInvalidPlate
	}
	return Vehicle{Plate: plate, MakeID: makeID, Year: year}, nil
}
