package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Dispatcher hands events to a Notifier on a background worker so slow push
// providers never hold an HTTP request.
type Dispatcher struct {
	notifier Notifier
	queue    chan Event
	timeout  time.Duration
	log      *slog.Logger

	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(n Notifier, size int, log *slog.Logger) *Dispatcher {
	if size <= 0 {
		size = 100
	}
	d := &Dispatcher{
		notifier: n,
		queue:    make(chan Event, size),
		timeout:  10 * time.Second,
		log:      log,
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		if err := d.notifier.Notify(ctx, ev); err != nil {
			d.log.Warn("notification failed",
				"booking_id", ev.BookingID,
				"status", ev.Status,
				"err", err,
			)
		}
		cancel()
	}
}

// Dispatch never blocks; when the buffer is full or the dispatcher is closed
// the event is dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("notification dispatcher closed, dropping event", "booking_id", ev.BookingID)
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("notification queue full, dropping event", "booking_id", ev.BookingID)
	}
}

// Close drains queued events and stops the worker.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	d.wg.Wait()
}
