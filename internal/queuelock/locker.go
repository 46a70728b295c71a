// Package queuelock serializes booking creation per provider and calendar day.
package queuelock

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrLockTimeout is returned when the lock could not be acquired before the
// caller's context expired.
var ErrLockTimeout = errors.New("queue lock: timed out waiting for lock")

// Locker hands out exclusive locks by key. The returned release func must be
// called exactly once.
type Locker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}

// Key builds the lock key of a provider queue for the calendar day of `day`.
func Key(providerID uint, day time.Time) string {
	return fmt.Sprintf("queue:%d:%s", providerID, day.Format("2006-01-02"))
}
