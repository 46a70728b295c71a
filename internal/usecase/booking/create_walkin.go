package booking

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	domain "github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

type CreateWalkInInput struct {
	ProviderID uint
	AdminID    uint
	ServiceID  uint
	GuestName  string
	GuestPhone string
}

// CreateWalkInBooking queues a guest entered by staff. Walk-ins are always
// for today in the provider timezone.
type CreateWalkInBooking struct {
	scheduler *Scheduler
	audit     *audit.Dispatcher
}

func NewCreateWalkInBooking(
	s *Scheduler,
	audit *audit.Dispatcher,
) *CreateWalkInBooking {
	return &CreateWalkInBooking{
		scheduler: s,
		audit:     audit,
	}
}

func (uc *CreateWalkInBooking) Execute(
	ctx context.Context,
	in CreateWalkInInput,
) (*models.Booking, Decision, error) {

	name := strings.TrimSpace(in.GuestName)
	if in.ProviderID == 0 || in.ServiceID == 0 || name == "" {
		return nil, Decision{}, httperr.ErrBusiness(domain.CodeInvalidRequest)
	}
	phone := strings.TrimSpace(in.GuestPhone)

	b, d, err := uc.scheduler.book(ctx, request{
		ServiceID:  in.ServiceID,
		ProviderID: in.ProviderID,
	}, func(b *models.Booking) {
		b.CustomerID = nil
		b.GuestName = name
		b.GuestPhone = phone
		b.IsWalkIn = true
	})
	if err != nil {
		return nil, Decision{}, err
	}

	adminID := in.AdminID
	uc.audit.Dispatch(audit.Event{
		ProviderID: in.ProviderID,
		UserID:     &adminID,
		Action:     audit.ActionWalkInCreated,
		Entity:     "booking",
		EntityID:   &b.ID,
		Metadata:   map[string]any{"position": b.Position, "guest_name": name},
	})

	return b, d, nil
}
