package slot

import (
	"time"

	"github.com/google/uuid"
)

// Working-day grid: appointments every 30 minutes from 09:00 up to but not
// including 18:00.
const (
	openingHour  = 9
	closingHour  = 18
	slotInterval = 30 * time.Minute
)

// GenerateDay builds the free slot grid for one calendar date. The closing
// boundary is exclusive, so a full day yields 18 slots (09:00 through 17:30).
func GenerateDay(date time.Time) []Slot {
	start := time.Date(date.Year(), date.Month(), date.Day(), openingHour, 0, 0, 0, date.Location())
	end := time.Date(date.Year(), date.Month(), date.Day(), closingHour, 0, 0, 0, date.Location())

	var slots []Slot
	for at := start; at.Before(end); at = at.Add(slotInterval) {
		slots = append(slots, Slot{
			ID:       uuid.New(),
			StartsAt: at,
			Status:   StatusFree,
		})
	}
	return slots
}
