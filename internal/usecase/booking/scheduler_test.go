package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	domain "github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/infra/memory"
	"github.com/BruksfildServices01/barber-queue/internal/logger"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// ======================================================
// ESTIMATE
// ======================================================

func TestEstimate_QueueScenarios(t *testing.T) {
	cases := []struct {
		name    string
		now     [2]int
		seed    func(f *fixture)
		wantPos int
		wantAt  [2]int
	}{
		{
			name:    "empty queue before opening",
			now:     [2]int{8, 0},
			wantPos: 1,
			wantAt:  [2]int{9, 0},
		},
		{
			name:    "empty queue after opening starts now",
			now:     [2]int{10, 15},
			wantPos: 1,
			wantAt:  [2]int{10, 15},
		},
		{
			name: "last booking end wins over now",
			now:  [2]int{9, 10},
			seed: func(f *fixture) {
				f.seed(f.haircut.ID, "PENDING", f.at(9, 0), 30, 1)
			},
			wantPos: 2,
			wantAt:  [2]int{9, 30},
		},
		{
			name: "in progress booking still occupies the chair",
			now:  [2]int{9, 10},
			seed: func(f *fixture) {
				f.seed(f.haircut.ID, "IN_PROGRESS", f.at(9, 0), 45, 1)
			},
			wantPos: 2,
			wantAt:  [2]int{9, 45},
		},
		{
			name: "cancelled booking frees its time but keeps its position",
			now:  [2]int{8, 0},
			seed: func(f *fixture) {
				f.seed(f.haircut.ID, "CANCELLED", f.at(9, 0), 30, 1)
			},
			wantPos: 2,
			wantAt:  [2]int{9, 0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			if tc.seed != nil {
				tc.seed(f)
			}

			uc := NewEstimateBooking(f.scheduler(f.at(tc.now[0], tc.now[1])))
			d, err := uc.Execute(context.Background(), EstimateInput{ServiceID: f.haircut.ID, Date: today})
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}

			want := f.at(tc.wantAt[0], tc.wantAt[1])
			if d.Position != tc.wantPos {
				t.Fatalf("position = %d, want %d", d.Position, tc.wantPos)
			}
			if !d.EstimatedAt.Equal(want) {
				t.Fatalf("estimatedAt = %s, want %s", d.EstimatedAt, want)
			}
			if d.FormattedTime != want.Format("15:04") {
				t.Fatalf("formatted = %q", d.FormattedTime)
			}
		})
	}
}

func TestEstimate_DoesNotWrite(t *testing.T) {
	f := newFixture(t)
	f.seed(f.haircut.ID, "PENDING", f.at(9, 0), 30, 1)

	uc := NewEstimateBooking(f.scheduler(f.at(9, 5)))
	in := EstimateInput{ServiceID: f.beard.ID, Date: today}

	first, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("second: %v", err)
	}

	if first.Position != second.Position || !first.EstimatedAt.Equal(second.EstimatedAt) {
		t.Fatalf("estimates differ: %+v vs %+v", first, second)
	}
	if n := len(f.store.Bookings()); n != 1 {
		t.Fatalf("estimate wrote bookings: %d", n)
	}
}

func TestEstimate_FutureDateIgnoresNow(t *testing.T) {
	f := newFixture(t)
	f.seed(f.haircut.ID, "PENDING", f.at(9, 0), 30, 1)

	uc := NewEstimateBooking(f.scheduler(f.at(15, 0)))
	d, err := uc.Execute(context.Background(), EstimateInput{ServiceID: f.haircut.ID, Date: "2026-03-11"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	want := time.Date(2026, 3, 11, 9, 0, 0, 0, f.loc)
	if d.Position != 1 || !d.EstimatedAt.Equal(want) {
		t.Fatalf("got %+v, want position 1 at %s", d, want)
	}
}

func TestEstimate_Errors(t *testing.T) {
	f := newFixture(t)
	inactive := f.store.AddService(models.Service{
		ProviderID: f.provider.ID, Name: "Luzes", DurationMin: 90, Active: false,
	})
	uc := NewEstimateBooking(f.scheduler(f.at(8, 0)))

	cases := []struct {
		name string
		in   EstimateInput
		code string
	}{
		{"missing service", EstimateInput{ServiceID: 999, Date: today}, domain.CodeServiceNotFound},
		{"inactive service", EstimateInput{ServiceID: inactive.ID, Date: today}, domain.CodeServiceNotFound},
		{"malformed date", EstimateInput{ServiceID: f.haircut.ID, Date: "10/03/2026"}, domain.CodeInvalidDate},
		{"closed weekday", EstimateInput{ServiceID: f.haircut.ID, Date: "2026-03-15"}, domain.CodeShopClosed},
		{"empty input", EstimateInput{}, domain.CodeInvalidRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.in)
			if !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("expected %s, got %v", tc.code, err)
			}
		})
	}
}

// ======================================================
// CUSTOMER BOOKING
// ======================================================

func TestCreateCustomerBooking_Persists(t *testing.T) {
	f := newFixture(t)
	auditor, sink := newAudit(t)

	uc := NewCreateCustomerBooking(f.scheduler(f.at(8, 0)), auditor)
	b, d, err := uc.Execute(context.Background(), CreateCustomerBookingInput{
		CustomerID: f.customer.ID,
		ServiceID:  f.haircut.ID,
		Date:       today,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if b.ID == 0 || b.Position != 1 || d.Position != 1 {
		t.Fatalf("unexpected booking %+v / decision %+v", b, d)
	}
	if b.Status != string(domain.StatusPending) || b.IsWalkIn {
		t.Fatalf("unexpected status/walk-in: %s %v", b.Status, b.IsWalkIn)
	}
	if b.CustomerID == nil || *b.CustomerID != f.customer.ID {
		t.Fatalf("customer not set: %v", b.CustomerID)
	}
	if b.DurationMin != 30 || b.Service.Name != "Corte" {
		t.Fatalf("snapshot not taken: %d %q", b.DurationMin, b.Service.Name)
	}

	// the duration is a snapshot: editing the service later changes nothing
	svc := f.haircut
	svc.DurationMin = 60
	f.store.AddService(svc)

	stored := f.store.Bookings()
	if len(stored) != 1 || stored[0].DurationMin != 30 {
		t.Fatalf("stored bookings %+v", stored)
	}

	auditor.Close()
	if got := sink.actions(); len(got) != 1 || got[0] != audit.ActionBookingCreated {
		t.Fatalf("audit actions = %v", got)
	}
}

func TestCreateCustomerBooking_Sequence(t *testing.T) {
	f := newFixture(t)
	auditor, _ := newAudit(t)
	uc := NewCreateCustomerBooking(f.scheduler(f.at(8, 0)), auditor)

	wantStarts := []time.Time{f.at(9, 0), f.at(9, 20), f.at(9, 50)}
	services := []uint{f.beard.ID, f.haircut.ID, f.beard.ID}

	for i, svc := range services {
		b, _, err := uc.Execute(context.Background(), CreateCustomerBookingInput{
			CustomerID: f.customer.ID, ServiceID: svc, Date: today,
		})
		if err != nil {
			t.Fatalf("booking %d: %v", i, err)
		}
		if b.Position != i+1 || !b.EstimatedAt.Equal(wantStarts[i]) {
			t.Fatalf("booking %d: position %d at %s", i, b.Position, b.EstimatedAt)
		}
	}
}

func TestCreateCustomerBooking_NeverStartsInThePast(t *testing.T) {
	f := newFixture(t)
	f.seed(f.haircut.ID, "PENDING", f.at(9, 0), 30, 1)
	auditor, _ := newAudit(t)

	now := f.at(11, 42)
	uc := NewCreateCustomerBooking(f.scheduler(now), auditor)
	b, _, err := uc.Execute(context.Background(), CreateCustomerBookingInput{
		CustomerID: f.customer.ID, ServiceID: f.haircut.ID, Date: today,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if b.EstimatedAt.Before(now) {
		t.Fatalf("estimatedAt %s before now %s", b.EstimatedAt, now)
	}
}

func TestCreateCustomerBooking_ShopClosedCreatesNothing(t *testing.T) {
	f := newFixture(t)
	f.store.PutWorkingDay(models.WorkingDay{
		ProviderID: f.provider.ID, Weekday: 2, StartTime: "09:00", EndTime: "18:00", IsOpen: false,
	})
	auditor, _ := newAudit(t)

	uc := NewCreateCustomerBooking(f.scheduler(f.at(8, 0)), auditor)
	_, _, err := uc.Execute(context.Background(), CreateCustomerBookingInput{
		CustomerID: f.customer.ID, ServiceID: f.haircut.ID, Date: today,
	})
	if !httperr.IsBusiness(err, domain.CodeShopClosed) {
		t.Fatalf("expected shop_closed, got %v", err)
	}
	if n := len(f.store.Bookings()); n != 0 {
		t.Fatalf("bookings created: %d", n)
	}
}

func TestCreateCustomerBooking_CancellationDoesNotRenumber(t *testing.T) {
	f := newFixture(t)
	auditor, _ := newAudit(t)
	create := NewCreateCustomerBooking(f.scheduler(f.at(8, 0)), auditor)

	var ids []uint
	for i := 0; i < 3; i++ {
		b, _, err := create.Execute(context.Background(), CreateCustomerBookingInput{
			CustomerID: f.customer.ID, ServiceID: f.haircut.ID, Date: today,
		})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		ids = append(ids, b.ID)
	}

	update := NewUpdateBooking(f.store, auditor, nil, logger.Discard())
	cancelled := string(domain.StatusCancelled)
	if _, err := update.Execute(context.Background(), UpdateBookingInput{
		ProviderID: f.provider.ID, BookingID: ids[1], Status: &cancelled,
	}); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	third, err := f.store.GetBooking(context.Background(), f.provider.ID, ids[2])
	if err != nil {
		t.Fatalf("GetBooking: %v", err)
	}
	if third.Position != 3 || !third.EstimatedAt.Equal(f.at(10, 0)) {
		t.Fatalf("third booking changed: position %d at %s", third.Position, third.EstimatedAt)
	}

	// the freed 09:30 slot is not backfilled
	next, _, err := create.Execute(context.Background(), CreateCustomerBookingInput{
		CustomerID: f.customer.ID, ServiceID: f.beard.ID, Date: today,
	})
	if err != nil {
		t.Fatalf("create after cancel: %v", err)
	}
	if next.Position != 4 || !next.EstimatedAt.Equal(f.at(10, 30)) {
		t.Fatalf("next booking: position %d at %s", next.Position, next.EstimatedAt)
	}
}

func TestCreateCustomerBooking_RevertedBookingReentersQueue(t *testing.T) {
	f := newFixture(t)
	auditor, _ := newAudit(t)
	sched := f.scheduler(f.at(8, 0))
	create := NewCreateCustomerBooking(sched, auditor)
	update := NewUpdateBooking(f.store, auditor, nil, logger.Discard())

	var ids []uint
	for i := 0; i < 3; i++ {
		b, _, err := create.Execute(context.Background(), CreateCustomerBookingInput{
			CustomerID: f.customer.ID, ServiceID: f.haircut.ID, Date: today,
		})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		ids = append(ids, b.ID)
	}

	// cancel the 10:00 haircut; the next booking takes its start time
	if _, err := update.Execute(context.Background(), UpdateBookingInput{
		ProviderID: f.provider.ID, BookingID: ids[2], Status: ptr(string(domain.StatusCancelled)),
	}); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	beard, _, err := create.Execute(context.Background(), CreateCustomerBookingInput{
		CustomerID: f.customer.ID, ServiceID: f.beard.ID, Date: today,
	})
	if err != nil {
		t.Fatalf("create after cancel: %v", err)
	}
	if beard.Position != 4 || !beard.EstimatedAt.Equal(f.at(10, 0)) {
		t.Fatalf("beard booking: position %d at %s", beard.Position, beard.EstimatedAt)
	}

	reverted, err := update.Execute(context.Background(), UpdateBookingInput{
		ProviderID: f.provider.ID, BookingID: ids[2], Status: ptr(string(domain.StatusPending)),
	})
	if err != nil {
		t.Fatalf("revert: %v", err)
	}
	if reverted.Position != 3 || !reverted.EstimatedAt.Equal(f.at(10, 0)) {
		t.Fatalf("reverted booking: position %d at %s", reverted.Position, reverted.EstimatedAt)
	}

	// 10:00-10:30 is active again and outlasts the 10:00-10:20 beard
	d, err := NewEstimateBooking(sched).Execute(context.Background(), EstimateInput{
		ServiceID: f.haircut.ID, Date: today,
	})
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if d.Position != 5 || !d.EstimatedAt.Equal(f.at(10, 30)) {
		t.Fatalf("estimate after revert: position %d at %s", d.Position, d.EstimatedAt)
	}

	next, _, err := create.Execute(context.Background(), CreateCustomerBookingInput{
		CustomerID: f.customer.ID, ServiceID: f.haircut.ID, Date: today,
	})
	if err != nil {
		t.Fatalf("create after revert: %v", err)
	}
	if next.Position != 5 || !next.EstimatedAt.Equal(f.at(10, 30)) {
		t.Fatalf("next booking: position %d at %s", next.Position, next.EstimatedAt)
	}
}

func TestCreateCustomerBooking_QueuePastMidnightIsRejected(t *testing.T) {
	f := newFixture(t)
	f.seed(f.haircut.ID, "PENDING", f.at(23, 50), 30, 1)
	auditor, _ := newAudit(t)
	sched := f.scheduler(f.at(8, 0))

	if _, err := NewEstimateBooking(sched).Execute(context.Background(), EstimateInput{
		ServiceID: f.haircut.ID, Date: today,
	}); !httperr.IsBusiness(err, domain.CodeQueueFull) {
		t.Fatalf("estimate: expected queue_full, got %v", err)
	}

	create := NewCreateCustomerBooking(sched, auditor)
	for i := 0; i < 2; i++ {
		_, _, err := create.Execute(context.Background(), CreateCustomerBookingInput{
			CustomerID: f.customer.ID, ServiceID: f.beard.ID, Date: today,
		})
		if !httperr.IsBusiness(err, domain.CodeQueueFull) {
			t.Fatalf("create %d: expected queue_full, got %v", i, err)
		}
	}

	if n := len(f.store.Bookings()); n != 1 {
		t.Fatalf("bookings stored = %d, want 1", n)
	}
}

// ======================================================
// CONCURRENCY
// ======================================================

func TestCreateCustomerBooking_ConcurrentRequestsAreSerialized(t *testing.T) {
	f := newFixture(t)
	auditor, _ := newAudit(t)
	uc := NewCreateCustomerBooking(f.scheduler(f.at(8, 0)), auditor)

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := uc.Execute(context.Background(), CreateCustomerBookingInput{
				CustomerID: f.customer.ID, ServiceID: f.haircut.ID, Date: today,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
	}

	bookings, _ := f.store.ListBookingsForDay(context.Background(), f.provider.ID, f.at(0, 0), f.at(0, 0).AddDate(0, 0, 1))
	if len(bookings) != n {
		t.Fatalf("expected %d bookings, got %d", n, len(bookings))
	}
	for i, b := range bookings {
		if b.Position != i+1 {
			t.Fatalf("booking %d has position %d", i, b.Position)
		}
		if i > 0 && b.EstimatedAt.Before(bookings[i-1].EndsAt()) {
			t.Fatalf("booking %d overlaps the previous one", i)
		}
	}
}

// barrierRepo holds every queue transaction right after it read the queue
// until `parties` transactions got there.
type barrierRepo struct {
	*memory.Store
	arrived sync.WaitGroup
}

func (r *barrierRepo) WithQueueTx(ctx context.Context, providerID uint, day time.Time, fn func(q domain.QueueStore) error) error {
	return r.Store.WithQueueTx(ctx, providerID, day, func(q domain.QueueStore) error {
		return fn(barrierQueue{QueueStore: q, r: r})
	})
}

type barrierQueue struct {
	domain.QueueStore
	r *barrierRepo
}

func (q barrierQueue) ListActiveBookings(ctx context.Context, providerID uint, from, to time.Time) ([]models.Booking, error) {
	out, err := q.QueueStore.ListActiveBookings(ctx, providerID, from, to)
	q.r.arrived.Done()
	q.r.arrived.Wait()
	return out, err
}

// Without the queue lock both requests read the same empty queue. This pins
// down the race the lock exists for.
func TestCreateCustomerBooking_WithoutQueueLockPositionsCollide(t *testing.T) {
	f := newFixture(t)
	repo := &barrierRepo{Store: f.store}
	repo.arrived.Add(2)

	auditor, _ := newAudit(t)
	uc := NewCreateCustomerBooking(f.schedulerWith(repo, noLock{}, f.at(8, 0)), auditor)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := uc.Execute(context.Background(), CreateCustomerBookingInput{
				CustomerID: f.customer.ID, ServiceID: f.haircut.ID, Date: today,
			}); err != nil {
				t.Errorf("Execute: %v", err)
			}
		}()
	}
	wg.Wait()

	bookings := f.store.Bookings()
	if len(bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(bookings))
	}
	if bookings[0].Position != 1 || bookings[1].Position != 1 {
		t.Fatalf("expected colliding positions, got %d and %d", bookings[0].Position, bookings[1].Position)
	}
}

// conflictRepo fails the first `failures` queue transactions with ErrConflict.
type conflictRepo struct {
	*memory.Store

	mu       sync.Mutex
	failures int
	calls    int
}

func (r *conflictRepo) WithQueueTx(ctx context.Context, providerID uint, day time.Time, fn func(q domain.QueueStore) error) error {
	r.mu.Lock()
	r.calls++
	fail := r.calls <= r.failures
	r.mu.Unlock()

	if fail {
		return errors.Join(domain.ErrConflict, errors.New("could not serialize access"))
	}
	return r.Store.WithQueueTx(ctx, providerID, day, fn)
}

func TestCreateCustomerBooking_RetriesConflicts(t *testing.T) {
	f := newFixture(t)
	repo := &conflictRepo{Store: f.store, failures: 2}
	auditor, _ := newAudit(t)

	s := f.schedulerWith(repo, noLock{}, f.at(8, 0), WithAttempts(3))
	b, _, err := NewCreateCustomerBooking(s, auditor).Execute(context.Background(), CreateCustomerBookingInput{
		CustomerID: f.customer.ID, ServiceID: f.haircut.ID, Date: today,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if b.Position != 1 || repo.calls != 3 {
		t.Fatalf("position %d after %d calls", b.Position, repo.calls)
	}
}

func TestCreateCustomerBooking_ConflictsExhausted(t *testing.T) {
	f := newFixture(t)
	repo := &conflictRepo{Store: f.store, failures: 100}
	auditor, sink := newAudit(t)

	s := f.schedulerWith(repo, noLock{}, f.at(8, 0), WithAttempts(3))
	_, _, err := NewCreateCustomerBooking(s, auditor).Execute(context.Background(), CreateCustomerBookingInput{
		CustomerID: f.customer.ID, ServiceID: f.haircut.ID, Date: today,
	})
	if !httperr.IsBusiness(err, domain.CodeConcurrencyConflict) {
		t.Fatalf("expected concurrency_conflict, got %v", err)
	}
	if repo.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", repo.calls)
	}
	if n := len(f.store.Bookings()); n != 0 {
		t.Fatalf("bookings created: %d", n)
	}

	auditor.Close()
	if got := sink.actions(); len(got) != 1 || got[0] != audit.ActionBookingConflict {
		t.Fatalf("audit actions = %v", got)
	}
}

func TestCreateCustomerBooking_LockTimeout(t *testing.T) {
	f := newFixture(t)
	auditor, _ := newAudit(t)

	s := f.schedulerWith(f.store, timeoutLock{}, f.at(8, 0), WithAttempts(2))
	_, _, err := NewCreateCustomerBooking(s, auditor).Execute(context.Background(), CreateCustomerBookingInput{
		CustomerID: f.customer.ID, ServiceID: f.haircut.ID, Date: today,
	})
	if !httperr.IsBusiness(err, domain.CodeConcurrencyConflict) {
		t.Fatalf("expected concurrency_conflict, got %v", err)
	}
}

// ======================================================
// WALK-IN
// ======================================================

func TestCreateWalkInBooking_AfterFinishedBooking(t *testing.T) {
	f := newFixture(t)
	f.seed(f.haircut.ID, "DONE", f.at(9, 0), 30, 1)
	f.seed(f.beard.ID, "PENDING", f.at(9, 30), 20, 2)
	auditor, sink := newAudit(t)

	uc := NewCreateWalkInBooking(f.scheduler(f.at(9, 35)), auditor)
	b, d, err := uc.Execute(context.Background(), CreateWalkInInput{
		ProviderID: f.provider.ID,
		AdminID:    7,
		ServiceID:  f.haircut.ID,
		GuestName:  "  João  ",
		GuestPhone: "11999990000",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if d.Position != 3 || !d.EstimatedAt.Equal(f.at(9, 50)) {
		t.Fatalf("decision %+v", d)
	}
	if !b.IsWalkIn || b.CustomerID != nil || b.GuestName != "João" {
		t.Fatalf("walk-in fields %+v", b)
	}

	auditor.Close()
	if got := sink.actions(); len(got) != 1 || got[0] != audit.ActionWalkInCreated {
		t.Fatalf("audit actions = %v", got)
	}
}

func TestCreateWalkInBooking_Errors(t *testing.T) {
	f := newFixture(t)
	other := f.store.AddProvider(models.Provider{Name: "Outra", Slug: "outra", Timezone: "America/Sao_Paulo"})
	foreign := f.store.AddService(models.Service{ProviderID: other.ID, Name: "Corte", DurationMin: 30, Active: true})
	auditor, _ := newAudit(t)

	uc := NewCreateWalkInBooking(f.scheduler(f.at(10, 0)), auditor)

	cases := []struct {
		name string
		in   CreateWalkInInput
		code string
	}{
		{"service of another provider", CreateWalkInInput{ProviderID: f.provider.ID, ServiceID: foreign.ID, GuestName: "João"}, domain.CodeServiceNotFound},
		{"blank guest name", CreateWalkInInput{ProviderID: f.provider.ID, ServiceID: f.haircut.ID, GuestName: "   "}, domain.CodeInvalidRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := uc.Execute(context.Background(), tc.in)
			if !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("expected %s, got %v", tc.code, err)
			}
		})
	}

	if n := len(f.store.Bookings()); n != 0 {
		t.Fatalf("bookings created: %d", n)
	}
}
