package booking

import "errors"

// Business error codes surfaced to HTTP clients.
const (
	CodeInvalidRequest      = "invalid_request"
	CodeInvalidDate         = "invalid_date"
	CodeServiceNotFound     = "service_not_found"
	CodeShopClosed          = "shop_closed"
	CodeQueueFull           = "queue_full"
	CodeBookingNotFound     = "booking_not_found"
	CodeInvalidStatus       = "invalid_status"
	CodeInvalidTransition   = "invalid_transition"
	CodeConcurrencyConflict = "concurrency_conflict"
)

var (
	// ErrNotFound is returned by repositories when a row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned by repositories when the store aborted the
	// transaction because of a concurrent writer. Callers may retry.
	ErrConflict = errors.New("concurrent update conflict")
)
