package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	domain "github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateCustomerBookingInput struct {
	CustomerID uint
	ServiceID  uint
	Date       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateCustomerBooking struct {
	scheduler *Scheduler
	audit     *audit.Dispatcher
}

func NewCreateCustomerBooking(
	s *Scheduler,
	audit *audit.Dispatcher,
) *CreateCustomerBooking {
	return &CreateCustomerBooking{
		scheduler: s,
		audit:     audit,
	}
}

func (uc *CreateCustomerBooking) Execute(
	ctx context.Context,
	in CreateCustomerBookingInput,
) (*models.Booking, Decision, error) {

	if in.CustomerID == 0 || in.ServiceID == 0 || in.Date == "" {
		return nil, Decision{}, httperr.ErrBusiness(domain.CodeInvalidRequest)
	}

	customerID := in.CustomerID

	b, d, err := uc.scheduler.book(ctx, request{
		ServiceID: in.ServiceID,
		Date:      in.Date,
	}, func(b *models.Booking) {
		b.CustomerID = &customerID
		b.IsWalkIn = false
	})
	if err != nil {
		if httperr.IsBusiness(err, domain.CodeConcurrencyConflict) {
			uc.audit.Dispatch(audit.Event{
				UserID:   &customerID,
				Action:   audit.ActionBookingConflict,
				Entity:   "booking",
				Metadata: map[string]any{"service_id": in.ServiceID, "date": in.Date},
			})
		}
		return nil, Decision{}, err
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: b.ProviderID,
		UserID:     &customerID,
		Action:     audit.ActionBookingCreated,
		Entity:     "booking",
		EntityID:   &b.ID,
		Metadata:   map[string]any{"position": b.Position},
	})

	return b, d, nil
}
