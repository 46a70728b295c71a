package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	domain "github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/notify"
)

type UpdateBookingInput struct {
	ProviderID  uint
	AdminID     uint
	BookingID   uint
	Status      *string
	EstimatedAt *time.Time
}

// UpdateBooking applies admin status transitions and manual reschedules.
// Sibling bookings are never recomputed.
type UpdateBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier *notify.Dispatcher
	now      Clock
	log      *slog.Logger
}

func NewUpdateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier *notify.Dispatcher,
	log *slog.Logger,
) *UpdateBooking {
	return &UpdateBooking{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
		now:      time.Now,
		log:      log,
	}
}

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	in UpdateBookingInput,
) (*models.Booking, error) {

	if in.Status == nil && in.EstimatedAt == nil {
		return nil, httperr.ErrBusiness(domain.CodeInvalidRequest)
	}

	var target domain.Status
	if in.Status != nil {
		st, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		target = st
	}

	b, err := uc.repo.GetBooking(ctx, in.ProviderID, in.BookingID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrBusiness(domain.CodeBookingNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load booking: %w", err)
	}

	now := uc.now()
	from := b.Status
	changed := false

	if in.Status != nil {
		changed, err = domain.Transition(b, target, now)
		if err != nil {
			return nil, err
		}
	}

	if in.EstimatedAt != nil {
		b.EstimatedAt = *in.EstimatedAt
		b.UpdatedAt = now
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	adminID := in.AdminID
	uc.audit.Dispatch(audit.Event{
		ProviderID: in.ProviderID,
		UserID:     &adminID,
		Action:     audit.ActionBookingUpdated,
		Entity:     "booking",
		EntityID:   &b.ID,
		Metadata: map[string]any{
			"from":         from,
			"to":           b.Status,
			"estimated_at": b.EstimatedAt,
		},
	})

	if changed && domain.NotifiesCustomer(target) {
		uc.notifyCustomer(ctx, b)
	}

	return b, nil
}

// notifyCustomer never fails the update; a missing customer or channel just
// means nobody is told.
func (uc *UpdateBooking) notifyCustomer(ctx context.Context, b *models.Booking) {
	if b.CustomerID == nil {
		return
	}

	customer, err := uc.repo.GetUser(ctx, *b.CustomerID)
	if err != nil {
		uc.log.Warn("notification skipped: customer lookup failed",
			"booking_id", b.ID,
			"err", err,
		)
		return
	}
	if customer.PushToken == "" {
		return
	}

	var providerName string
	if p, err := uc.repo.GetProvider(ctx, b.ProviderID); err == nil {
		providerName = p.Name
	}

	uc.notifier.Dispatch(notify.Event{
		BookingID:    b.ID,
		ProviderID:   b.ProviderID,
		CustomerID:   customer.ID,
		DeviceToken:  customer.PushToken,
		Status:       b.Status,
		ProviderName: providerName,
		ServiceName:  b.Service.Name,
		EstimatedAt:  b.EstimatedAt,
	})
}
