package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
)

type EstimateInput struct {
	ServiceID uint
	Date      string
}

type EstimateBooking struct {
	scheduler *Scheduler
}

func NewEstimateBooking(s *Scheduler) *EstimateBooking {
	return &EstimateBooking{scheduler: s}
}

// Execute never writes; two calls with no booking created in between return
// the same decision.
func (uc *EstimateBooking) Execute(ctx context.Context, in EstimateInput) (Decision, error) {
	if in.ServiceID == 0 || in.Date == "" {
		return Decision{}, httperr.ErrBusiness(domain.CodeInvalidRequest)
	}

	return uc.scheduler.estimate(ctx, request{
		ServiceID: in.ServiceID,
		Date:      in.Date,
	})
}
