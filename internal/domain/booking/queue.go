package booking

import (
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// Projection is the queue slot a new booking would take.
type Projection struct {
	Position int
	StartAt  time.Time
}

// Project computes the next slot of a single-server FIFO queue.
//
// active must hold the provider's PENDING/IN_PROGRESS bookings of the requested
// day sorted by EstimatedAt ascending. The new slot starts after the latest
// end among them, so gaps left by cancelled bookings are never backfilled and a
// booking reverted to PENDING is never overlapped. lastPosition is the highest
// position already issued for that day in any status; positions are never
// reused.
func Project(
	shopOpen time.Time,
	requestedDate time.Time,
	now time.Time,
	active []models.Booking,
	lastPosition int,
) Projection {

	start := shopOpen

	if SameDay(requestedDate, now.In(shopOpen.Location())) && start.Before(now) {
		start = now
	}

	for _, b := range active {
		if end := b.EndsAt(); end.After(start) {
			start = end
		}
	}

	position := len(active)
	if lastPosition > position {
		position = lastPosition
	}

	return Projection{
		Position: position + 1,
		StartAt:  start.In(shopOpen.Location()),
	}
}

// SameDay compares calendar dates in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayBounds returns [start, end) of the calendar day of t in t's location.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
