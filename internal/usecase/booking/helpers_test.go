package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	domain "github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/infra/memory"
	"github.com/BruksfildServices01/barber-queue/internal/logger"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/notify"
	"github.com/BruksfildServices01/barber-queue/internal/queuelock"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

// 2026-03-10 is a Tuesday.
const today = "2026-03-10"

type fixture struct {
	store    *memory.Store
	loc      *time.Location
	provider models.Provider
	haircut  models.Service // 30 min
	beard    models.Service // 20 min
	customer models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	s := memory.NewStore()
	p := s.AddProvider(models.Provider{
		Name:     "Barbearia do Zé",
		Slug:     "barbearia-do-ze",
		Timezone: "America/Sao_Paulo",
	})

	f := &fixture{
		store:    s,
		loc:      timezone.Location(p.Timezone),
		provider: p,
		haircut: s.AddService(models.Service{
			ProviderID: p.ID, Name: "Corte", DurationMin: 30, Active: true,
		}),
		beard: s.AddService(models.Service{
			ProviderID: p.ID, Name: "Barba", DurationMin: 20, Active: true,
		}),
		customer: s.AddUser(models.User{
			Name: "Ana", Email: "ana@example.com", Role: models.RoleCustomer,
		}),
	}

	for wd := 1; wd <= 6; wd++ {
		s.PutWorkingDay(models.WorkingDay{
			ProviderID: p.ID, Weekday: wd, StartTime: "09:00", EndTime: "18:00", IsOpen: true,
		})
	}
	s.PutWorkingDay(models.WorkingDay{
		ProviderID: p.ID, Weekday: 0, StartTime: "09:00", EndTime: "13:00", IsOpen: false,
	})

	return f
}

// at returns hh:mm on the fixture day in the provider timezone.
func (f *fixture) at(h, m int) time.Time {
	return time.Date(2026, 3, 10, h, m, 0, 0, f.loc)
}

func (f *fixture) scheduler(now time.Time, opts ...Option) *Scheduler {
	return f.schedulerWith(f.store, queuelock.NewKeyedMutex(), now, opts...)
}

func (f *fixture) schedulerWith(repo domain.Repository, locker queuelock.Locker, now time.Time, opts ...Option) *Scheduler {
	opts = append([]Option{WithClock(func() time.Time { return now })}, opts...)
	return NewScheduler(repo, locker, logger.Discard(), opts...)
}

func (f *fixture) seed(serviceID uint, status string, start time.Time, minutes, position int) models.Booking {
	return f.store.AddBooking(models.Booking{
		ProviderID:  f.provider.ID,
		ServiceID:   serviceID,
		DurationMin: minutes,
		Position:    position,
		Status:      status,
		EstimatedAt: start,
	})
}

// --------------------------------------------------
// fakes
// --------------------------------------------------

type recordingSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *recordingSink) Write(_ context.Context, ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *recordingSink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.Action)
	}
	return out
}

func newAudit(t *testing.T) (*audit.Dispatcher, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	d := audit.NewDispatcher(sink, logger.Discard())
	t.Cleanup(d.Close)
	return d, sink
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (n *recordingNotifier) Notify(_ context.Context, ev notify.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
	return nil
}

func (n *recordingNotifier) received() []notify.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notify.Event(nil), n.events...)
}

type noLock struct{}

func (noLock) Lock(context.Context, string) (func(), error) {
	return func() {}, nil
}

type timeoutLock struct{}

func (timeoutLock) Lock(context.Context, string) (func(), error) {
	return nil, queuelock.ErrLockTimeout
}
