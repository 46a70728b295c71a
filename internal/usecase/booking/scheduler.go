package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/queuelock"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

const (
	defaultAttempts = 3
	defaultLockWait = 5 * time.Second
)

// ======================================================
// DECISION
// ======================================================

// Decision is the queue slot computed for a request.
type Decision struct {
	Position      int       `json:"position"`
	EstimatedAt   time.Time `json:"estimatedAt"`
	FormattedTime string    `json:"formattedEstimatedAt"`
}

func (d Decision) Message() string {
	return fmt.Sprintf(
		"Você será o %dº da fila. Horário estimado: %s.",
		d.Position,
		d.FormattedTime,
	)
}

// ======================================================
// SCHEDULER
// ======================================================

type Clock func() time.Time

// Scheduler is the single implementation of the queue projection shared by the
// estimate, customer and walk-in flows.
type Scheduler struct {
	repo     domain.Repository
	hours    *domain.WorkingHoursResolver
	locker   queuelock.Locker
	now      Clock
	lockWait time.Duration
	attempts int
	log      *slog.Logger
}

type Option func(*Scheduler)

func WithClock(c Clock) Option {
	return func(s *Scheduler) { s.now = c }
}

func WithLockWait(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.lockWait = d
		}
	}
}

func WithAttempts(n int) Option {
	return func(s *Scheduler) {
		if n > 0 {
			s.attempts = n
		}
	}
}

func NewScheduler(
	repo domain.Repository,
	locker queuelock.Locker,
	log *slog.Logger,
	opts ...Option,
) *Scheduler {
	s := &Scheduler{
		repo:     repo,
		hours:    domain.NewWorkingHoursResolver(repo),
		locker:   locker,
		now:      time.Now,
		lockWait: defaultLockWait,
		attempts: defaultAttempts,
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// request identifies what is being scheduled. Empty Date means today in the
// provider timezone; a non-zero ProviderID restricts the service to that shop.
type request struct {
	ServiceID  uint
	ProviderID uint
	Date       string
}

// plan holds the inputs resolved before the queue is read.
type plan struct {
	service  *models.Service
	provider *models.Provider
	loc      *time.Location
	day      time.Time
	openAt   time.Time
	now      time.Time
}

func (s *Scheduler) prepare(ctx context.Context, req request) (*plan, error) {

	// --------------------------------------------------
	// 1. Serviço
	// --------------------------------------------------
	service, err := s.repo.GetService(ctx, req.ServiceID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrBusiness(domain.CodeServiceNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load service: %w", err)
	}
	if !service.Active || (req.ProviderID != 0 && service.ProviderID != req.ProviderID) {
		return nil, httperr.ErrBusiness(domain.CodeServiceNotFound)
	}

	// --------------------------------------------------
	// 2. Provider e timezone
	// --------------------------------------------------
	provider, err := s.repo.GetProvider(ctx, service.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("load provider %d: %w", service.ProviderID, err)
	}

	loc := timezone.Location(provider.Timezone)
	now := s.now().In(loc)

	day := timezone.StartOfDay(now)
	if req.Date != "" {
		day, err = timezone.ParseDate(req.Date, loc)
		if err != nil {
			return nil, httperr.ErrBusiness(domain.CodeInvalidDate)
		}
	}

	// --------------------------------------------------
	// 3. Expediente
	// --------------------------------------------------
	open, err := s.hours.Resolve(ctx, provider.ID, day)
	if err != nil {
		return nil, err
	}

	return &plan{
		service:  service,
		provider: provider,
		loc:      loc,
		day:      day,
		openAt:   open.OpenAt,
		now:      now,
	}, nil
}

func (s *Scheduler) project(ctx context.Context, q domain.QueueStore, p *plan) (Decision, error) {
	from, to := domain.DayBounds(p.day)

	active, err := q.ListActiveBookings(ctx, p.provider.ID, from, to)
	if err != nil {
		return Decision{}, fmt.Errorf("load queue: %w", err)
	}

	last, err := q.LastPosition(ctx, p.provider.ID, from, to)
	if err != nil {
		return Decision{}, fmt.Errorf("load last position: %w", err)
	}

	proj := domain.Project(p.openAt, p.day, p.now, active, last)

	// a start past midnight would land outside the window read above
	if !proj.StartAt.Before(to) {
		return Decision{}, httperr.ErrBusiness(domain.CodeQueueFull)
	}

	return Decision{
		Position:      proj.Position,
		EstimatedAt:   proj.StartAt,
		FormattedTime: proj.StartAt.In(p.loc).Format(domain.ClockLayout),
	}, nil
}

// Estimate is the read-only projection. Nothing is locked or written.
func (s *Scheduler) estimate(ctx context.Context, req request) (Decision, error) {
	p, err := s.prepare(ctx, req)
	if err != nil {
		return Decision{}, err
	}
	return s.project(ctx, s.repo, p)
}

// book projects and persists a booking while holding the queue lock of the
// provider/day. fill sets the identity fields of the caller's flow.
func (s *Scheduler) book(
	ctx context.Context,
	req request,
	fill func(b *models.Booking),
) (*models.Booking, Decision, error) {

	p, err := s.prepare(ctx, req)
	if err != nil {
		return nil, Decision{}, err
	}

	for attempt := 1; attempt <= s.attempts; attempt++ {
		b, d, err := s.bookOnce(ctx, p, fill)
		if err == nil {
			return b, d, nil
		}

		if !errors.Is(err, domain.ErrConflict) && !errors.Is(err, queuelock.ErrLockTimeout) {
			return nil, Decision{}, err
		}
		if ctx.Err() != nil {
			return nil, Decision{}, ctx.Err()
		}

		s.log.Warn("booking conflict, retrying",
			"provider_id", p.provider.ID,
			"day", p.day.Format(timezone.DateLayout),
			"attempt", attempt,
			"err", err,
		)
	}

	return nil, Decision{}, httperr.ErrBusiness(domain.CodeConcurrencyConflict)
}

func (s *Scheduler) bookOnce(
	ctx context.Context,
	p *plan,
	fill func(b *models.Booking),
) (*models.Booking, Decision, error) {

	lockCtx, cancel := context.WithTimeout(ctx, s.lockWait)
	release, err := s.locker.Lock(lockCtx, queuelock.Key(p.provider.ID, p.day))
	cancel()
	if err != nil {
		return nil, Decision{}, err
	}
	defer release()

	// "now" is re-read under the lock so waiting never yields a past start
	p.now = s.now().In(p.loc)

	var (
		created  *models.Booking
		decision Decision
	)

	err = s.repo.WithQueueTx(ctx, p.provider.ID, p.day, func(q domain.QueueStore) error {
		d, err := s.project(ctx, q, p)
		if err != nil {
			return err
		}

		b := &models.Booking{
			ProviderID:  p.provider.ID,
			ServiceID:   p.service.ID,
			DurationMin: p.service.DurationMin,
			Position:    d.Position,
			Status:      string(domain.InitialStatus()),
			EstimatedAt: d.EstimatedAt,
		}
		fill(b)

		if err := q.CreateBooking(ctx, b); err != nil {
			return err
		}

		created = b
		decision = d
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, Decision{}, err
		}
		return nil, Decision{}, fmt.Errorf("create booking: %w", err)
	}

	created.Service = *p.service
	return created, decision, nil
}
