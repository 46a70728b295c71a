// Package memory is an in-process implementation of the booking repository.
// It keeps the same contract as the gorm repository (ordering, day windows,
// atomic WithQueueTx) and backs the use case and handler tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

type Store struct {
	mu sync.RWMutex

	providers   map[uint]models.Provider
	services    map[uint]models.Service
	users       map[uint]models.User
	workingDays map[uint]map[int]models.WorkingDay
	bookings    map[uint]models.Booking

	nextID uint
}

func NewStore() *Store {
	return &Store{
		providers:   make(map[uint]models.Provider),
		services:    make(map[uint]models.Service),
		users:       make(map[uint]models.User),
		workingDays: make(map[uint]map[int]models.WorkingDay),
		bookings:    make(map[uint]models.Booking),
	}
}

// --------------------------------------------------
// Seeding
// --------------------------------------------------

func (s *Store) AddProvider(p models.Provider) models.Provider {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == 0 {
		p.ID = s.id()
	}
	s.providers[p.ID] = p
	return p
}

func (s *Store) AddService(svc models.Service) models.Service {
	s.mu.Lock()
	defer s.mu.Unlock()

	if svc.ID == 0 {
		svc.ID = s.id()
	}
	s.services[svc.ID] = svc
	return svc
}

func (s *Store) AddUser(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == 0 {
		u.ID = s.id()
	}
	s.users[u.ID] = u
	return u
}

// PutWorkingDay upserts by (provider, weekday).
func (s *Store) PutWorkingDay(wd models.WorkingDay) {
	s.mu.Lock()
	defer s.mu.Unlock()

	days, ok := s.workingDays[wd.ProviderID]
	if !ok {
		days = make(map[int]models.WorkingDay)
		s.workingDays[wd.ProviderID] = days
	}
	if prev, ok := days[wd.Weekday]; ok {
		wd.ID = prev.ID
	} else if wd.ID == 0 {
		wd.ID = s.id()
	}
	days[wd.Weekday] = wd
}

// AddBooking inserts a booking as-is, bypassing the scheduler.
func (s *Store) AddBooking(b models.Booking) models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b.ID == 0 {
		b.ID = s.id()
	}
	s.bookings[b.ID] = b
	return b
}

// Bookings returns every stored booking ordered by id.
func (s *Store) Bookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

// --------------------------------------------------
// domain.Repository
// --------------------------------------------------

func (s *Store) GetService(_ context.Context, id uint) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, ok := s.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &svc, nil
}

func (s *Store) GetProvider(_ context.Context, id uint) (*models.Provider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.providers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (s *Store) GetUser(_ context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (s *Store) GetWorkingDay(_ context.Context, providerID uint, weekday int) (*models.WorkingDay, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wd, ok := s.workingDays[providerID][weekday]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &wd, nil
}

func (s *Store) ListActiveBookings(_ context.Context, providerID uint, from, to time.Time) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filter(func(b models.Booking) bool {
		return b.ProviderID == providerID &&
			domain.Status(b.Status).IsActive() &&
			inWindow(b.EstimatedAt, from, to)
	}), nil
}

func (s *Store) LastPosition(_ context.Context, providerID uint, from, to time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	last := 0
	for _, b := range s.bookings {
		if b.ProviderID == providerID && inWindow(b.EstimatedAt, from, to) && b.Position > last {
			last = b.Position
		}
	}
	return last, nil
}

func (s *Store) CreateBooking(_ context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.insert(b)
	return nil
}

// WithQueueTx buffers the bookings created by fn and commits them only when
// fn succeeds. Reads inside fn see committed data plus the buffer. It does
// not serialize callers; that is the queue lock's job.
func (s *Store) WithQueueTx(
	ctx context.Context,
	_ uint,
	_ time.Time,
	fn func(q domain.QueueStore) error,
) error {

	tx := &queueTx{store: s}
	if err := fn(tx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range tx.pending {
		s.insert(b)
	}
	return nil
}

func (s *Store) GetBooking(_ context.Context, providerID, bookingID uint) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[bookingID]
	if !ok || b.ProviderID != providerID {
		return nil, domain.ErrNotFound
	}
	b = s.hydrate(b)
	return &b, nil
}

func (s *Store) UpdateBooking(_ context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[b.ID]; !ok {
		return domain.ErrNotFound
	}
	stored := *b
	stored.Service = models.Service{}
	stored.Customer = nil
	s.bookings[b.ID] = stored
	return nil
}

func (s *Store) ListBookingsForDay(_ context.Context, providerID uint, from, to time.Time) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filter(func(b models.Booking) bool {
		return b.ProviderID == providerID && inWindow(b.EstimatedAt, from, to)
	}), nil
}

func (s *Store) ListBookingsForCustomer(_ context.Context, customerID uint, limit int) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.filter(func(b models.Booking) bool {
		return b.CustomerID != nil && *b.CustomerID == customerID
	})

	// newest first
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --------------------------------------------------
// helpers (callers hold s.mu)
// --------------------------------------------------

func (s *Store) insert(b *models.Booking) {
	b.ID = s.id()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	b.UpdatedAt = b.CreatedAt

	stored := *b
	stored.Service = models.Service{}
	stored.Customer = nil
	s.bookings[b.ID] = stored
}

func (s *Store) filter(keep func(models.Booking) bool) []models.Booking {
	out := make([]models.Booking, 0)
	for _, b := range s.bookings {
		if keep(b) {
			out = append(out, s.hydrate(b))
		}
	}
	sortQueue(out)
	return out
}

func (s *Store) hydrate(b models.Booking) models.Booking {
	b.Service = s.services[b.ServiceID]
	if b.CustomerID != nil {
		if u, ok := s.users[*b.CustomerID]; ok {
			b.Customer = &u
		}
	}
	return b
}

func sortQueue(bs []models.Booking) {
	sort.SliceStable(bs, func(i, j int) bool {
		if !bs[i].EstimatedAt.Equal(bs[j].EstimatedAt) {
			return bs[i].EstimatedAt.Before(bs[j].EstimatedAt)
		}
		return bs[i].Position < bs[j].Position
	})
}

func inWindow(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

// --------------------------------------------------
// queueTx
// --------------------------------------------------

type queueTx struct {
	store   *Store
	pending []*models.Booking
}

func (q *queueTx) ListActiveBookings(ctx context.Context, providerID uint, from, to time.Time) ([]models.Booking, error) {
	out, err := q.store.ListActiveBookings(ctx, providerID, from, to)
	if err != nil {
		return nil, err
	}
	for _, b := range q.pending {
		if b.ProviderID == providerID && domain.Status(b.Status).IsActive() && inWindow(b.EstimatedAt, from, to) {
			out = append(out, *b)
		}
	}
	sortQueue(out)
	return out, nil
}

func (q *queueTx) LastPosition(ctx context.Context, providerID uint, from, to time.Time) (int, error) {
	last, err := q.store.LastPosition(ctx, providerID, from, to)
	if err != nil {
		return 0, err
	}
	for _, b := range q.pending {
		if b.ProviderID == providerID && inWindow(b.EstimatedAt, from, to) && b.Position > last {
			last = b.Position
		}
	}
	return last, nil
}

func (q *queueTx) CreateBooking(_ context.Context, b *models.Booking) error {
	q.pending = append(q.pending, b)
	return nil
}

var _ domain.Repository = (*Store)(nil)
