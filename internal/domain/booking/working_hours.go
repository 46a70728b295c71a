package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

const ClockLayout = "15:04"

// OpenDay is a resolved working day anchored on a calendar date.
type OpenDay struct {
	OpenAt  time.Time
	CloseAt time.Time
}

type WorkingDayReader interface {
	GetWorkingDay(ctx context.Context, providerID uint, weekday int) (*models.WorkingDay, error)
}

// WorkingHoursResolver turns the weekday configuration of a provider into the
// opening instant of a concrete date.
type WorkingHoursResolver struct {
	repo WorkingDayReader
}

func NewWorkingHoursResolver(repo WorkingDayReader) *WorkingHoursResolver {
	return &WorkingHoursResolver{repo: repo}
}

// Resolve returns shop_closed when the weekday has no row or is marked
// closed. date must already be in the provider location.
func (r *WorkingHoursResolver) Resolve(
	ctx context.Context,
	providerID uint,
	date time.Time,
) (OpenDay, error) {

	wd, err := r.repo.GetWorkingDay(ctx, providerID, int(date.Weekday()))
	if errors.Is(err, ErrNotFound) {
		return OpenDay{}, httperr.ErrBusiness(CodeShopClosed)
	}
	if err != nil {
		return OpenDay{}, fmt.Errorf("load working day: %w", err)
	}

	return ResolveWorkingDay(wd, date)
}

// ResolveWorkingDay anchors wd on the calendar date of `date`. A malformed
// stored time is an internal error; admins cannot save one through the API.
func ResolveWorkingDay(wd *models.WorkingDay, date time.Time) (OpenDay, error) {
	if wd == nil || !wd.IsOpen {
		return OpenDay{}, httperr.ErrBusiness(CodeShopClosed)
	}

	openAt, err := atClock(date, wd.StartTime)
	if err != nil {
		return OpenDay{}, fmt.Errorf("working day %d start_time: %w", wd.ID, err)
	}

	closeAt, err := atClock(date, wd.EndTime)
	if err != nil {
		return OpenDay{}, fmt.Errorf("working day %d end_time: %w", wd.ID, err)
	}

	return OpenDay{OpenAt: openAt, CloseAt: closeAt}, nil
}

// ParseClock parses "HH:mm" into hour and minute.
func ParseClock(hm string) (hour, minute int, err error) {
	t, err := time.Parse(ClockLayout, hm)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock %q: %w", hm, err)
	}
	return t.Hour(), t.Minute(), nil
}

func atClock(date time.Time, hm string) (time.Time, error) {
	h, m, err := ParseClock(hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		h, m, 0, 0,
		date.Location(),
	), nil
}
