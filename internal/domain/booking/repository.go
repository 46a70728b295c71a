package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// QueueStore is the view of the booking table the projector needs. Inside
// Repository.WithQueueTx it is bound to a single transaction.
type QueueStore interface {
	// ListActiveBookings returns PENDING/IN_PROGRESS bookings of the provider
	// with EstimatedAt in [from, to), ordered by EstimatedAt ascending.
	ListActiveBookings(
		ctx context.Context,
		providerID uint,
		from time.Time,
		to time.Time,
	) ([]models.Booking, error)

	// LastPosition returns the highest position issued in [from, to) in any
	// status, or 0.
	LastPosition(
		ctx context.Context,
		providerID uint,
		from time.Time,
		to time.Time,
	) (int, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}

type Repository interface {
	QueueStore
	WorkingDayReader

	// -------- Catalog --------
	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	GetProvider(
		ctx context.Context,
		providerID uint,
	) (*models.Provider, error)

	GetUser(
		ctx context.Context,
		userID uint,
	) (*models.User, error)

	// -------- Queue (serialized) --------

	// WithQueueTx runs fn atomically for the (providerID, day) queue: either
	// everything fn wrote is committed or nothing is.
	WithQueueTx(
		ctx context.Context,
		providerID uint,
		day time.Time,
		fn func(q QueueStore) error,
	) error

	// -------- Booking (state change) --------
	GetBooking(
		ctx context.Context,
		providerID uint,
		bookingID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Listing --------
	ListBookingsForDay(
		ctx context.Context,
		providerID uint,
		from time.Time,
		to time.Time,
	) ([]models.Booking, error)

	ListBookingsForCustomer(
		ctx context.Context,
		customerID uint,
		limit int,
	) ([]models.Booking, error)
}
