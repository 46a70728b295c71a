package booking

import (
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves b to status `to` and applies the timestamp side effects.
// Position and EstimatedAt are never touched. Requesting the current status is
// a no-op and reports changed=false.
func Transition(b *models.Booking, to Status, now time.Time) (changed bool, err error) {
	from := Status(b.Status)
	if from == to {
		return false, nil
	}

	if err := CanTransition(from, to); err != nil {
		return false, err
	}

	switch to {
	case StatusInProgress:
		// refreshed on every entry, including after a revert
		b.StartedAt = &now
		b.FinishedAt = nil
	case StatusDone:
		b.FinishedAt = &now
	case StatusPending:
		b.StartedAt = nil
		b.FinishedAt = nil
	case StatusCancelled:
	}

	b.Status = string(to)
	b.UpdatedAt = now
	return true, nil
}

// NotifiesCustomer reports whether entering status s is announced to the
// booking's customer.
func NotifiesCustomer(s Status) bool {
	return s == StatusInProgress || s == StatusDone
}
