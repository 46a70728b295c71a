package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, serviceID).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *BookingGormRepository) GetProvider(
	ctx context.Context,
	providerID uint,
) (*models.Provider, error) {

	var p models.Provider
	if err := r.db.WithContext(ctx).First(&p, providerID).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *BookingGormRepository) GetUser(
	ctx context.Context,
	userID uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, userID).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *BookingGormRepository) GetWorkingDay(
	ctx context.Context,
	providerID uint,
	weekday int,
) (*models.WorkingDay, error) {

	var wd models.WorkingDay
	if err := r.db.WithContext(ctx).
		Where("provider_id = ? AND weekday = ?", providerID, weekday).
		First(&wd).Error; err != nil {
		return nil, translate(err)
	}
	return &wd, nil
}

// --------------------------------------------------
// Queue
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveBookings(
	ctx context.Context,
	providerID uint,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {
	return listActive(r.db.WithContext(ctx), providerID, from, to)
}

func (r *BookingGormRepository) LastPosition(
	ctx context.Context,
	providerID uint,
	from time.Time,
	to time.Time,
) (int, error) {
	return lastPosition(r.db.WithContext(ctx), providerID, from, to)
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error)
}

// WithQueueTx runs fn in a transaction holding a Postgres advisory lock keyed
// by (provider, yyyymmdd). The lock is released on commit or rollback.
func (r *BookingGormRepository) WithQueueTx(
	ctx context.Context,
	providerID uint,
	day time.Time,
	fn func(q domain.QueueStore) error,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(?, ?)",
			int32(providerID),
			dayKey(day),
		).Error; err != nil {
			return err
		}

		return fn(&queueTx{tx: tx})
	})
	return translate(err)
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	providerID uint,
	bookingID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("id = ? AND provider_id = ?", bookingID, providerID).
		First(&b).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(b).Error)
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForDay(
	ctx context.Context,
	providerID uint,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	var out []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Customer").
		Where(
			"provider_id = ? AND estimated_at >= ? AND estimated_at < ?",
			providerID, from, to,
		).
		Order("estimated_at ASC, position ASC").
		Find(&out).Error
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *BookingGormRepository) ListBookingsForCustomer(
	ctx context.Context,
	customerID uint,
	limit int,
) ([]models.Booking, error) {

	var out []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Customer").
		Where("customer_id = ?", customerID).
		Order("estimated_at DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// --------------------------------------------------
// Transaction-bound queue store
// --------------------------------------------------

type queueTx struct {
	tx *gorm.DB
}

func (q *queueTx) ListActiveBookings(
	ctx context.Context,
	providerID uint,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {
	return listActive(q.tx.WithContext(ctx), providerID, from, to)
}

func (q *queueTx) LastPosition(
	ctx context.Context,
	providerID uint,
	from time.Time,
	to time.Time,
) (int, error) {
	return lastPosition(q.tx.WithContext(ctx), providerID, from, to)
}

func (q *queueTx) CreateBooking(ctx context.Context, b *models.Booking) error {
	return q.tx.WithContext(ctx).Omit(clause.Associations).Create(b).Error
}

func listActive(db *gorm.DB, providerID uint, from, to time.Time) ([]models.Booking, error) {
	var out []models.Booking
	err := db.
		Where(
			"provider_id = ? AND status IN ? AND estimated_at >= ? AND estimated_at < ?",
			providerID, domain.ActiveStatuses, from, to,
		).
		Order("estimated_at ASC, position ASC").
		Find(&out).Error
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func lastPosition(db *gorm.DB, providerID uint, from, to time.Time) (int, error) {
	var last int
	err := db.
		Model(&models.Booking{}).
		Select("COALESCE(MAX(position), 0)").
		Where(
			"provider_id = ? AND estimated_at >= ? AND estimated_at < ?",
			providerID, from, to,
		).
		Scan(&last).Error
	if err != nil {
		return 0, translate(err)
	}
	return last, nil
}

func dayKey(day time.Time) int32 {
	return int32(day.Year()*10000 + int(day.Month())*100 + day.Day())
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case IsRetryable(err):
		return errors.Join(domain.ErrConflict, err)
	default:
		return err
	}
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
