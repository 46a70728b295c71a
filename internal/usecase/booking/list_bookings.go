package booking

import (
	"context"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/dto"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

// ListBookingsByDate returns the whole queue of a provider for one day, every
// status included, ordered by estimated start. An empty date means today.
type ListBookingsByDate struct {
	repo domain.Repository
	now  Clock
}

func NewListBookingsByDate(repo domain.Repository) *ListBookingsByDate {
	return &ListBookingsByDate{repo: repo, now: time.Now}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	providerID uint,
	date string,
) ([]dto.BookingListDTO, error) {

	provider, err := uc.repo.GetProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("load provider: %w", err)
	}

	loc := timezone.Location(provider.Timezone)
	day := timezone.StartOfDay(uc.now().In(loc))
	if date != "" {
		day, err = timezone.ParseDate(date, loc)
		if err != nil {
			return nil, httperr.ErrBusiness(domain.CodeInvalidDate)
		}
	}

	from, to := domain.DayBounds(day)

	bookings, err := uc.repo.ListBookingsForDay(ctx, providerID, from, to)
	if err != nil {
		return nil, err
	}

	return toListDTOs(bookings), nil
}

// ListCustomerBookings returns the latest bookings of a customer.
type ListCustomerBookings struct {
	repo domain.Repository
}

func NewListCustomerBookings(repo domain.Repository) *ListCustomerBookings {
	return &ListCustomerBookings{repo: repo}
}

func (uc *ListCustomerBookings) Execute(
	ctx context.Context,
	customerID uint,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListBookingsForCustomer(ctx, customerID, 50)
	if err != nil {
		return nil, err
	}
	return toListDTOs(bookings), nil
}

func toListDTOs(bookings []models.Booking) []dto.BookingListDTO {
	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		name := b.GuestName
		if b.Customer != nil {
			name = b.Customer.Name
		}

		out = append(out, dto.BookingListDTO{
			ID:           b.ID,
			Position:     b.Position,
			Status:       b.Status,
			EstimatedAt:  b.EstimatedAt,
			EndsAt:       b.EndsAt(),
			Duration:     b.DurationMin,
			IsWalkIn:     b.IsWalkIn,
			CustomerName: name,
			ServiceName:  b.Service.Name,
			StartedAt:    b.StartedAt,
			FinishedAt:   b.FinishedAt,
		})
	}
	return out
}
